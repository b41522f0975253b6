package game

import (
	"errors"
	"fmt"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/move"
	"github.com/domino14/othello/movegen"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// ApplyMove plays m for side and returns the resulting board. Unlike
// board.WithMove it checks legality first; on error b is returned
// unchanged.
func ApplyMove(b board.Board, m move.Move, side board.Color) (board.Board, error) {
	if side != board.Dark && side != board.Light {
		return b, fmt.Errorf("%w: %v cannot move", ErrIllegalMove, side)
	}
	if _, err := b.Get(m.Row, m.Col); err != nil {
		return b, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	if !movegen.IsLegal(&b, m, side) {
		return b, fmt.Errorf("%w: %s for %v", ErrIllegalMove, m.BoardGameCoords(), side)
	}
	return b.WithMove(m.Row, m.Col, side), nil
}
