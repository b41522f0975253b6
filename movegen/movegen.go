// Package movegen enumerates legal Othello moves.
package movegen

import (
	"github.com/samber/lo"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/move"
)

// LegalMoves returns every empty cell where side captures at least one
// piece. Rows are scanned 0..7 and, within a row, columns 0..7; the
// search relies on this order to make pruning reproducible.
func LegalMoves(b *board.Board, side board.Color) []move.Move {
	var moves []move.Move
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			if b[row][col] != board.Empty {
				continue
			}
			if b.CanCapture(row, col, side) {
				moves = append(moves, move.New(row, col))
			}
		}
	}
	return moves
}

// HasLegalMove is LegalMoves without the allocation; it stops at the
// first legal cell.
func HasLegalMove(b *board.Board, side board.Color) bool {
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			if b[row][col] == board.Empty && b.CanCapture(row, col, side) {
				return true
			}
		}
	}
	return false
}

// IsLegal reports whether m is among side's legal moves on b.
func IsLegal(b *board.Board, m move.Move, side board.Color) bool {
	return lo.Contains(LegalMoves(b, side), m)
}

// Cells converts moves into board highlight cells.
func Cells(moves []move.Move) [][2]int {
	return lo.Map(moves, func(m move.Move, _ int) [2]int {
		return m.Cell()
	})
}
