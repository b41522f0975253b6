package equity

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/othello/board"
)

func TestEvaluate(t *testing.T) {
	is := is.New(t)
	b := board.InitialBoard()
	is.Equal(Evaluate(&b), 0)

	b = b.WithMove(2, 4, board.Light)
	is.Equal(Evaluate(&b), 3)
	is.Equal(Evaluate(&b), b.CountOf(board.Light)-b.CountOf(board.Dark))
	is.Equal(MaterialCalculator{}.Evaluate(&b), 3)
}

func TestForSide(t *testing.T) {
	is := is.New(t)
	is.Equal(ForSide(5, board.Light), 5)
	is.Equal(ForSide(5, board.Dark), -5)
}
