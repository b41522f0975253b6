package game

import (
	"fmt"
	"strings"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/movegen"
)

// ToDisplayText shows the board with the side on turn's legal moves
// marked, the players and their disc counts, and the last few turns.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	var highlight [][2]int
	if g.Playing() {
		highlight = movegen.Cells(g.LegalMoves())
	}
	sb.WriteString(g.board.ToDisplayText(highlight...))
	for _, side := range []board.Color{board.Dark, board.Light} {
		sb.WriteString(g.PlayerFor(side).stateString(side, g.PointsFor(side),
			g.Playing() && side == g.onturn))
		sb.WriteByte('\n')
	}
	if last, ok := g.LastTurn(); ok {
		fmt.Fprintf(&sb, "Last: %v %s (turn %d)\n", last.Side, last.ShortDescription(), g.Turn())
	}
	if o := g.Outcome(); o != Ongoing {
		fmt.Fprintf(&sb, "Game over: %v (%d-%d)\n", o,
			g.PointsFor(board.Dark), g.PointsFor(board.Light))
	}
	return sb.String()
}
