// Package board holds the 8x8 Othello grid and the capture rules that
// operate on it. A Board is a plain value: copying it copies the whole
// grid, so every mutation here works on the caller's private copy.
package board

import (
	"errors"
	"fmt"
)

// Dim is the number of rows (and columns) on the board.
const Dim = 8

// Color is the contents of a single cell, and also doubles as the side
// whose turn is being evaluated (Dark or Light; never Empty).
type Color uint8

const (
	Empty Color = iota
	Dark
	Light
)

var ErrOutOfBounds = errors.New("coordinate out of bounds")

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Opponent returns the other side. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Dark:
		return Light
	case Light:
		return Dark
	}
	return Empty
}

// ColorFromString parses a side name as typed by a user.
func ColorFromString(s string) (Color, error) {
	switch s {
	case "dark", "black", "d", "b", "x":
		return Dark, nil
	case "light", "white", "l", "w", "o":
		return Light, nil
	}
	return Empty, fmt.Errorf("%q is not a side; use dark or light", s)
}

// Board is row-major: b[row][col].
type Board [Dim][Dim]Color

// InitialBoard returns the only legal starting configuration.
func InitialBoard() Board {
	var b Board
	mid := Dim / 2
	b[mid-1][mid-1], b[mid][mid] = Light, Light
	b[mid-1][mid], b[mid][mid-1] = Dark, Dark
	return b
}

// InBounds reports whether (row, col) addresses a cell.
func InBounds(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) (Color, error) {
	if !InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return b[row][col], nil
}

// Set places c at (row, col) without applying any capture.
func (b *Board) Set(row, col int, c Color) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	b[row][col] = c
	return nil
}

// WithMove returns a new board with side's piece at (row, col) and all
// resulting captures flipped. The move is not validated; the caller must
// already know it is legal.
func (b Board) WithMove(row, col int, side Color) Board {
	b[row][col] = side
	b.ApplyCaptures(row, col, side)
	return b
}

// CountOf counts cells equal to c.
func (b *Board) CountOf(c Color) int {
	n := 0
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if b[row][col] == c {
				n++
			}
		}
	}
	return n
}

// Occupied is the number of non-empty cells.
func (b *Board) Occupied() int {
	return Dim*Dim - b.CountOf(Empty)
}
