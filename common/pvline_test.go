package common

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/move"
)

func TestUpdate(t *testing.T) {
	is := is.New(t)
	var tail PVLine
	tail.Update(PVEntry{Side: board.Light, Pass: true}, PVLine{}, -3)

	var line PVLine
	line.Update(PVEntry{Side: board.Dark, Move: move.New(2, 3)}, tail, 3)
	is.Equal(len(line.Moves), 2)
	is.Equal(line.Score(), 3)
	is.Equal(line.GetPVMove().Move, move.New(2, 3))
	is.Equal(line.NLBString(), "PV; val 3; 1: dark d3; 2: light pass")
	is.Equal(line.String(), "PV; val 3\n1: dark d3\n2: light pass\n")

	line.Clear()
	is.Equal(len(line.Moves), 0)
}
