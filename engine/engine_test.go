package engine

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/move"
)

func TestInitialPosition(t *testing.T) {
	is := is.New(t)
	b := InitialBoard()
	is.Equal(Score(b, board.Dark), 2)
	is.Equal(Score(b, board.Light), 2)
	is.Equal(EvaluateOutcome(b), game.Ongoing)
	assert.ElementsMatch(t, []move.Move{
		move.New(2, 4), move.New(4, 2), move.New(5, 3), move.New(3, 5),
	}, LegalMoves(b, board.Light))
}

func TestApplyOpeningMove(t *testing.T) {
	is := is.New(t)
	b := InitialBoard()
	nb, err := ApplyMove(b, move.New(2, 4), board.Light)
	is.NoErr(err)
	for _, c := range [][2]int{{2, 4}, {3, 4}, {3, 3}, {4, 4}} {
		col, err := nb.Get(c[0], c[1])
		is.NoErr(err)
		is.Equal(col, board.Light)
	}
	col, _ := nb.Get(4, 3)
	is.Equal(col, board.Dark)
	is.Equal(Score(nb, board.Light), 4)
	is.Equal(Score(nb, board.Dark), 1)
	// the input board is untouched
	is.Equal(b, InitialBoard())
}

func TestApplyIllegalMove(t *testing.T) {
	is := is.New(t)
	b := InitialBoard()
	nb, err := ApplyMove(b, move.New(0, 0), board.Light)
	is.True(errors.Is(err, ErrIllegalMove))
	is.Equal(nb, b)
	is.Equal(b, InitialBoard())

	_, err = ApplyMove(b, move.New(8, 0), board.Light)
	is.True(errors.Is(err, ErrIllegalMove))
	is.True(errors.Is(err, ErrOutOfBounds))
}

func TestChooseMove(t *testing.T) {
	is := is.New(t)
	m, err := ChooseMove(InitialBoard(), board.Light, 3)
	is.NoErr(err)
	is.Equal(m, move.New(2, 4))

	b, err := board.FromPlaintext(`
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOOOOO
		OOOOO.XO`)
	is.NoErr(err)
	_, err = ChooseMove(b, board.Dark, 2)
	is.True(errors.Is(err, ErrNoLegalMove))
	is.Equal(EvaluateOutcome(b), game.Ongoing)
}
