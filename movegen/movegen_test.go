package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/move"
)

func TestLegalMovesInitialBoard(t *testing.T) {
	b := board.InitialBoard()
	assert.ElementsMatch(t, []move.Move{
		move.New(2, 4), move.New(4, 2), move.New(5, 3), move.New(3, 5),
	}, LegalMoves(&b, board.Light))
	assert.ElementsMatch(t, []move.Move{
		move.New(2, 3), move.New(3, 2), move.New(4, 5), move.New(5, 4),
	}, LegalMoves(&b, board.Dark))
}

func TestLegalMovesOrder(t *testing.T) {
	is := is.New(t)
	b := board.InitialBoard()
	is.Equal(LegalMoves(&b, board.Light), []move.Move{
		move.New(2, 4), move.New(3, 5), move.New(4, 2), move.New(5, 3),
	})
}

func TestNoLegalMoves(t *testing.T) {
	is := is.New(t)
	b, err := board.FromPlaintext(`
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXXXXX
		XXXXX.OX`)
	is.NoErr(err)
	is.Equal(len(LegalMoves(&b, board.Light)), 0)
	is.True(!HasLegalMove(&b, board.Light))
	// Dark captures the lone light piece from f8.
	is.Equal(LegalMoves(&b, board.Dark), []move.Move{move.New(7, 5)})
	is.True(HasLegalMove(&b, board.Dark))
}

func TestIsLegal(t *testing.T) {
	is := is.New(t)
	b := board.InitialBoard()
	is.True(IsLegal(&b, move.New(2, 4), board.Light))
	is.True(!IsLegal(&b, move.New(2, 4), board.Dark))
	is.True(!IsLegal(&b, move.New(3, 3), board.Light))
	is.True(!IsLegal(&b, move.New(0, 0), board.Light))
}
