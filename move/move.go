// Package move describes a single placement on the Othello board.
package move

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/othello/board"
)

// Move is a (row, col) placement, 0-indexed and row-major.
type Move struct {
	Row int
	Col int
}

var reCoords = regexp.MustCompile(`^(?P<col>[a-h])(?P<row>[1-8])$`)

// New returns the move at (row, col).
func New(row, col int) Move {
	return Move{Row: row, Col: col}
}

// FromBoardGameCoords parses a coordinate like "d3": a column letter a-h
// followed by a 1-based row number. Upper case is accepted.
func FromBoardGameCoords(c string) (Move, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	m := reCoords.FindStringSubmatch(c)
	if m == nil {
		return Move{}, fmt.Errorf("%w: %q is not a coordinate like d3",
			board.ErrOutOfBounds, c)
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return Move{}, err
	}
	return Move{Row: row - 1, Col: int(m[1][0] - 'a')}, nil
}

// BoardGameCoords is the inverse of FromBoardGameCoords.
func (m Move) BoardGameCoords() string {
	if !board.InBounds(m.Row, m.Col) {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m Move) ShortDescription() string {
	return m.BoardGameCoords()
}

func (m Move) String() string {
	return fmt.Sprintf("<move %s (%d,%d)>", m.BoardGameCoords(), m.Row, m.Col)
}

// Cell returns the move as a [row, col] pair, the form board uses for
// highlights and flip lists.
func (m Move) Cell() [2]int {
	return [2]int{m.Row, m.Col}
}
