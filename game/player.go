package game

import (
	"fmt"

	"github.com/domino14/othello/board"
)

// PlayerInfo names whoever controls a side.
type PlayerInfo struct {
	Nickname string
	RealName string
}

// playerIndex maps a side to its slot: dark plays from slot 0.
func playerIndex(side board.Color) int {
	if side == board.Light {
		return 1
	}
	return 0
}

func (p PlayerInfo) stateString(side board.Color, discs int, myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	return fmt.Sprintf("%3s%-12s %c %-6v %2d", onturn, p.Nickname, side.Glyph(), side, discs)
}
