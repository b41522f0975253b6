package game

import (
	"github.com/domino14/othello/board"
	"github.com/domino14/othello/movegen"
)

// Outcome is derived from a board on demand; it is never stored.
type Outcome uint8

const (
	Ongoing Outcome = iota
	DarkWins
	LightWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case DarkWins:
		return "dark wins"
	case LightWins:
		return "light wins"
	case Tie:
		return "tie"
	}
	return "unknown outcome"
}

// IsTerminal is true iff neither side has a legal move on b.
func IsTerminal(b *board.Board) bool {
	return !movegen.HasLegalMove(b, board.Light) && !movegen.HasLegalMove(b, board.Dark)
}

// Winner compares disc counts. It is a pure function of the board and
// only meaningful once IsTerminal holds.
func Winner(b *board.Board) Outcome {
	light, dark := b.CountOf(board.Light), b.CountOf(board.Dark)
	switch {
	case light > dark:
		return LightWins
	case dark > light:
		return DarkWins
	}
	return Tie
}

// EvaluateOutcome is Ongoing while either side can still move, and the
// winner otherwise.
func EvaluateOutcome(b *board.Board) Outcome {
	if !IsTerminal(b) {
		return Ongoing
	}
	return Winner(b)
}

// WinnerColor maps a decided outcome to the winning side. Ties and
// unfinished games return board.Empty.
func (o Outcome) WinnerColor() board.Color {
	switch o {
	case DarkWins:
		return board.Dark
	case LightWins:
		return board.Light
	}
	return board.Empty
}
