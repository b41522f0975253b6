// Package player is an automatic player of Othello, using various
// forms of AI.
package player

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/othello/ai/alphabeta"
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/move"
	"github.com/domino14/othello/movegen"
)

// AIPlayer describes an artificial player.
type AIPlayer interface {
	// ChooseMove picks a move for side. It returns an error wrapping
	// alphabeta.ErrNoLegalMove if side must pass.
	ChooseMove(b board.Board, side board.Color) (move.Move, error)
	Name() string
}

// MinimaxPlayer plays by searching a fixed number of plies ahead.
type MinimaxPlayer struct {
	solver *alphabeta.Solver
	depth  int
}

func NewMinimaxPlayer(depth, threads int) *MinimaxPlayer {
	s := alphabeta.NewSolver()
	s.SetThreads(threads)
	return &MinimaxPlayer{solver: s, depth: depth}
}

func (p *MinimaxPlayer) ChooseMove(b board.Board, side board.Color) (move.Move, error) {
	m, _, err := p.solver.ChooseMove(b, side, p.depth)
	return m, err
}

func (p *MinimaxPlayer) Name() string {
	return fmt.Sprintf("minimax-%d", p.depth)
}

func (p *MinimaxPlayer) Depth() int {
	return p.depth
}

func (p *MinimaxPlayer) SetDepth(d int) {
	p.depth = d
}

// Solver exposes the underlying search, mostly for node counts.
func (p *MinimaxPlayer) Solver() *alphabeta.Solver {
	return p.solver
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct{}

func (p *RandomPlayer) ChooseMove(b board.Board, side board.Color) (move.Move, error) {
	moves := movegen.LegalMoves(&b, side)
	if len(moves) == 0 {
		return move.Move{}, fmt.Errorf("%w (%v)", alphabeta.ErrNoLegalMove, side)
	}
	return moves[frand.Intn(len(moves))], nil
}

func (p *RandomPlayer) Name() string {
	return "random"
}
