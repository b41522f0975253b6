// Package alphabeta picks Othello moves using depth-limited minimax
// with alpha-beta pruning.
package alphabeta

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/equity"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/move"
	"github.com/domino14/othello/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            if value ≥ β then
                break (* β cut-off *)
            α := max(α, value)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            if value ≤ α then
                break (* α cut-off *)
            β := min(β, value)
        return value
**/

const (
	// WinValue scores a decided game. It must exceed any disc difference
	// (at most 64) so that a known result always beats a heuristic one.
	WinValue = 100
	// Infinity bounds the search window; no search value reaches it.
	Infinity = WinValue + 1
)

var ErrNoLegalMove = errors.New("no legal move for side to move")

// RankedMove is a root move with the value the search gave it, from the
// mover's point of view.
type RankedMove struct {
	Move  move.Move
	Value int
}

// Solver implements the minimax + alphabeta algorithm. A Solver holds no
// board state between calls, only settings and counters.
type Solver struct {
	calculator     equity.Calculator
	disablePruning bool
	threads        int
	nodes          atomic.Uint64
}

func NewSolver() *Solver {
	return &Solver{calculator: equity.MaterialCalculator{}, threads: 1}
}

// SetThreads splits root moves across n goroutines. Every root child is
// searched with a full window, so the result does not depend on n.
func (s *Solver) SetThreads(n int) {
	s.threads = max(1, n)
}

// SetPruningDisabled turns the search into plain minimax.
func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

func (s *Solver) SetCalculator(c equity.Calculator) {
	s.calculator = c
}

// Nodes is the number of positions visited since the last reset.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

func (s *Solver) ResetNodes() {
	s.nodes.Store(0)
}

// Search returns the value of b with stm to move, searching depth plies.
// Values are from maximizer's point of view: the maximizer takes the
// larger child value, its opponent the smaller. Pruning is fail-soft, so
// with the window (-Infinity, Infinity) the result equals full minimax.
func (s *Solver) Search(b *board.Board, stm, maximizer board.Color, depth, α, β int) int {
	s.nodes.Add(1)

	if game.IsTerminal(b) {
		switch game.Winner(b).WinnerColor() {
		case maximizer:
			return WinValue
		case maximizer.Opponent():
			return -WinValue
		}
		return 0
	}
	if depth == 0 {
		return equity.ForSide(s.calculator.Evaluate(b), maximizer)
	}

	moves := movegen.LegalMoves(b, stm)
	if len(moves) == 0 {
		// Forced pass. The game is not over, so the other side can move;
		// passing does not use up depth.
		return s.Search(b, stm.Opponent(), maximizer, depth, α, β)
	}

	if stm == maximizer {
		best := -Infinity
		for _, m := range moves {
			child := b.WithMove(m.Row, m.Col, stm)
			best = max(best, s.Search(&child, stm.Opponent(), maximizer, depth-1, α, β))
			if best >= β && !s.disablePruning {
				return best // beta cut-off
			}
			α = max(α, best)
		}
		return best
	}
	best := Infinity
	for _, m := range moves {
		child := b.WithMove(m.Row, m.Col, stm)
		best = min(best, s.Search(&child, stm.Opponent(), maximizer, depth-1, α, β))
		if best <= α && !s.disablePruning {
			return best // alpha cut-off
		}
		β = min(β, best)
	}
	return best
}

// RankMoves searches every legal move for side, in generator order. Each
// child is searched depth more plies with the opponent to move and side
// as the maximizer.
func (s *Solver) RankMoves(b board.Board, side board.Color, depth int) ([]RankedMove, error) {
	if depth < 0 {
		return nil, fmt.Errorf("search depth must not be negative, got %d", depth)
	}
	moves := movegen.LegalMoves(&b, side)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w (%v)", ErrNoLegalMove, side)
	}
	ranked := make([]RankedMove, len(moves))
	var g errgroup.Group
	g.SetLimit(s.threads)
	for i, m := range moves {
		g.Go(func() error {
			child := b.WithMove(m.Row, m.Col, side)
			ranked[i] = RankedMove{
				Move:  m,
				Value: s.Search(&child, side.Opponent(), side, depth, -Infinity, Infinity),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ranked, nil
}

// ChooseMove returns side's best move and its value. Ties go to the
// earliest move in generator order.
func (s *Solver) ChooseMove(b board.Board, side board.Color, depth int) (move.Move, int, error) {
	tstart := time.Now()
	s.ResetNodes()
	ranked, err := s.RankMoves(b, side, depth)
	if err != nil {
		return move.Move{}, 0, err
	}
	best := bestRanked(ranked)
	log.Debug().
		Stringer("side", side).
		Int("depth", depth).
		Int("threads", s.threads).
		Bool("pruning", !s.disablePruning).
		Uint64("nodes", s.Nodes()).
		Str("best", best.Move.ShortDescription()).
		Int("value", best.Value).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("search-returning")
	return best.Move, best.Value, nil
}
