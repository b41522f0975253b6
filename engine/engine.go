// Package engine is the surface the interaction layer talks to: new
// games, legal moves, checked move application, computer moves, outcome
// and score.
package engine

import (
	"github.com/domino14/othello/ai/alphabeta"
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/move"
	"github.com/domino14/othello/movegen"
)

var (
	ErrOutOfBounds = board.ErrOutOfBounds
	ErrIllegalMove = game.ErrIllegalMove
	ErrNoLegalMove = alphabeta.ErrNoLegalMove
)

func InitialBoard() board.Board {
	return board.InitialBoard()
}

func LegalMoves(b board.Board, side board.Color) []move.Move {
	return movegen.LegalMoves(&b, side)
}

// ApplyMove fails with ErrIllegalMove if m is not legal for side. b is
// never modified.
func ApplyMove(b board.Board, m move.Move, side board.Color) (board.Board, error) {
	return game.ApplyMove(b, m, side)
}

// ChooseMove searches depth plies for side's best move. It fails with
// ErrNoLegalMove when side has to pass.
func ChooseMove(b board.Board, side board.Color, depth int) (move.Move, error) {
	m, _, err := alphabeta.NewSolver().ChooseMove(b, side, depth)
	return m, err
}

func EvaluateOutcome(b board.Board) game.Outcome {
	return game.EvaluateOutcome(&b)
}

// Score is the number of c's discs on b.
func Score(b board.Board, c board.Color) int {
	return b.CountOf(c)
}
