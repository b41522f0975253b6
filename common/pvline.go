// Package common holds small types shared by the search and its callers.
package common

import (
	"fmt"
	"strings"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/move"
)

// PVEntry is one ply of a principal variation: a placement, or a forced
// pass when Pass is set.
type PVEntry struct {
	Side board.Color
	Move move.Move
	Pass bool
}

func (e PVEntry) String() string {
	if e.Pass {
		return fmt.Sprintf("%v pass", e.Side)
	}
	return fmt.Sprintf("%v %s", e.Side, e.Move.BoardGameCoords())
}

// Credit: MIT-licensed https://github.com/algerbrex/blunder/blob/main/engine/search.go
type PVLine struct {
	Moves []PVEntry
	score int
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
	pvLine.score = 0
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(e PVEntry, newPVLine PVLine, score int) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, e)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

// GetPVMove returns the first move of the line. The line must not be
// empty.
func (pvLine *PVLine) GetPVMove() PVEntry {
	return pvLine.Moves[0]
}

func (pvLine *PVLine) Score() int {
	return pvLine.score
}

// Convert the principal variation line to a string.
func (pvLine PVLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d\n", pvLine.score)
	for i, e := range pvLine.Moves {
		fmt.Fprintf(&sb, "%d: %v\n", i+1, e)
	}
	return sb.String()
}

// NLBString is String without line breaks.
func (pvLine PVLine) NLBString() string {
	parts := []string{fmt.Sprintf("PV; val %d", pvLine.score)}
	for i, e := range pvLine.Moves {
		parts = append(parts, fmt.Sprintf("%d: %v", i+1, e))
	}
	return strings.Join(parts, "; ")
}
