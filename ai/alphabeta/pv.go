package alphabeta

import (
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/common"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/movegen"
)

// PrincipalVariation returns the line of best play the search expects
// after side moves with depth plies left, starting with ChooseMove's
// move. Passes appear in the line but use no depth.
func (s *Solver) PrincipalVariation(b board.Board, side board.Color, depth int) (common.PVLine, error) {
	var line common.PVLine
	ranked, err := s.RankMoves(b, side, depth)
	if err != nil {
		return line, err
	}
	best := bestRanked(ranked)
	child := b.WithMove(best.Move.Row, best.Move.Col, side)
	line.Update(common.PVEntry{Side: side, Move: best.Move},
		s.pv(child, side.Opponent(), depth), best.Value)
	return line, nil
}

func (s *Solver) pv(b board.Board, stm board.Color, depth int) common.PVLine {
	var line common.PVLine
	if game.IsTerminal(&b) {
		return line
	}
	if depth == 0 {
		return line
	}
	if !movegen.HasLegalMove(&b, stm) {
		line.Update(common.PVEntry{Side: stm, Pass: true}, s.pv(b, stm.Opponent(), depth), 0)
		return line
	}
	ranked, err := s.RankMoves(b, stm, depth-1)
	if err != nil {
		return line
	}
	best := bestRanked(ranked)
	child := b.WithMove(best.Move.Row, best.Move.Col, stm)
	line.Update(common.PVEntry{Side: stm, Move: best.Move},
		s.pv(child, stm.Opponent(), depth-1), best.Value)
	return line
}

// bestRanked keeps the first of equally valued moves.
func bestRanked(ranked []RankedMove) RankedMove {
	best := ranked[0]
	for _, r := range ranked[1:] {
		if r.Value > best.Value {
			best = r
		}
	}
	return best
}
