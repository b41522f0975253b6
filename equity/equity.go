// Package equity holds static board evaluation. Values are always from
// Light's point of view: positive favours Light.
package equity

import "github.com/domino14/othello/board"

// Calculator statically scores a board.
type Calculator interface {
	Evaluate(b *board.Board) int
}

// MaterialCalculator scores a board by disc difference.
type MaterialCalculator struct{}

func (MaterialCalculator) Evaluate(b *board.Board) int {
	return Evaluate(b)
}

// Evaluate returns count(Light) - count(Dark).
func Evaluate(b *board.Board) int {
	light, dark := 0, 0
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			switch b[row][col] {
			case board.Light:
				light++
			case board.Dark:
				dark++
			}
		}
	}
	return light - dark
}

// ForSide converts a Light-relative value to side's point of view.
func ForSide(v int, side board.Color) int {
	if side == board.Dark {
		return -v
	}
	return v
}
