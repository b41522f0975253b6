package board

import (
	"fmt"
	"strings"
)

const (
	darkGlyph  = 'X'
	lightGlyph = 'O'
	emptyGlyph = '.'
)

// Glyph is the single character used for c in display text.
func (c Color) Glyph() rune {
	switch c {
	case Dark:
		return darkGlyph
	case Light:
		return lightGlyph
	}
	return emptyGlyph
}

// ToDisplayText renders the board with column letters and 1-based row
// numbers. Cells in highlight (e.g. legal moves) are shown as '*'.
func (b *Board) ToDisplayText(highlight ...[2]int) string {
	marked := map[[2]int]bool{}
	for _, h := range highlight {
		marked[h] = true
	}
	var sb strings.Builder
	sb.WriteString("\n   ")
	for i := 0; i < Dim; i++ {
		fmt.Fprintf(&sb, "%c ", 'a'+i)
	}
	sb.WriteString("\n   " + strings.Repeat("-", Dim*2) + "\n")
	for row := 0; row < Dim; row++ {
		fmt.Fprintf(&sb, "%2d|", row+1)
		for col := 0; col < Dim; col++ {
			g := b[row][col].Glyph()
			if b[row][col] == Empty && marked[[2]int{row, col}] {
				g = '*'
			}
			sb.WriteRune(g)
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return sb.String()
}

// FromPlaintext builds a board from Dim lines of Dim cells each, using
// X for dark, O for light and '.' (or '-') for empty. Whitespace inside
// a line is ignored, and blank lines are skipped.
func FromPlaintext(text string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(text, "\n") {
		cells := strings.Join(strings.Fields(line), "")
		if cells == "" {
			continue
		}
		if row >= Dim {
			return b, fmt.Errorf("too many rows; expected %d", Dim)
		}
		if len(cells) != Dim {
			return b, fmt.Errorf("row %d has %d cells; expected %d", row+1, len(cells), Dim)
		}
		for col, ch := range cells {
			switch ch {
			case darkGlyph, 'x', 'B', 'b':
				b[row][col] = Dark
			case lightGlyph, 'o', 'W', 'w':
				b[row][col] = Light
			case emptyGlyph, '-':
				b[row][col] = Empty
			default:
				return b, fmt.Errorf("row %d: unexpected cell %q", row+1, ch)
			}
		}
		row++
	}
	if row != Dim {
		return b, fmt.Errorf("got %d rows; expected %d", row, Dim)
	}
	return b, nil
}

// String is a compact one-line form, row by row.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Dim; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Dim; col++ {
			sb.WriteRune(b[row][col].Glyph())
		}
	}
	return sb.String()
}
