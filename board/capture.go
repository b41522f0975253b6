package board

// Directions lists the eight compass steps as (dRow, dCol).
var Directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CapturesInDirection reports whether placing side's piece at (row, col)
// would enclose an unbroken run of one or more opponent pieces, starting
// right next to (row, col) and stepping by (dRow, dCol), ended by one of
// side's own pieces.
func (b *Board) CapturesInDirection(row, col, dRow, dCol int, side Color) bool {
	r, c := row+dRow, col+dCol
	if !InBounds(r, c) || b[r][c] != side.Opponent() {
		return false
	}
	for r, c = r+dRow, c+dCol; InBounds(r, c); r, c = r+dRow, c+dCol {
		switch b[r][c] {
		case Empty:
			return false
		case side:
			return true
		}
	}
	return false
}

// CanCapture reports whether side captures in at least one direction
// from (row, col).
func (b *Board) CanCapture(row, col int, side Color) bool {
	for _, d := range Directions {
		if b.CapturesInDirection(row, col, d[0], d[1], side) {
			return true
		}
	}
	return false
}

// ApplyCaptures flips every opponent run enclosed by a move at (row, col).
// It mutates b in place.
func (b *Board) ApplyCaptures(row, col int, side Color) {
	opp := side.Opponent()
	for _, d := range Directions {
		if !b.CapturesInDirection(row, col, d[0], d[1], side) {
			continue
		}
		for r, c := row+d[0], col+d[1]; b[r][c] == opp; r, c = r+d[0], c+d[1] {
			b[r][c] = side
		}
	}
}

// Flips lists the cells a move by side at (row, col) would flip, grouped
// by direction in Directions order and nearest first.
func (b *Board) Flips(row, col int, side Color) [][2]int {
	var flips [][2]int
	opp := side.Opponent()
	for _, d := range Directions {
		if !b.CapturesInDirection(row, col, d[0], d[1], side) {
			continue
		}
		for r, c := row+d[0], col+d[1]; b[r][c] == opp; r, c = r+d[0], c+d[1] {
			flips = append(flips, [2]int{r, c})
		}
	}
	return flips
}
