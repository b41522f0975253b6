package player

import (
	"fmt"
	"strconv"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

var difficultyNames = map[string]Difficulty{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
	"expert": Expert,
}

func (d Difficulty) String() string {
	for k, v := range difficultyNames {
		if v == d {
			return k
		}
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// DepthForDifficulty maps a named level to a search depth.
func DepthForDifficulty(d Difficulty) int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 3
	case Hard:
		return 5
	case Expert:
		return 7
	}
	return 3
}

func ParseDifficulty(s string) (Difficulty, error) {
	d, ok := difficultyNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// FromSpec builds a player from a short description:
//
//	random
//	easy | medium | hard | expert
//	minimax:<depth>
//
// A bare number is taken as a minimax depth.
func FromSpec(spec string, threads int) (AIPlayer, error) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "random" {
		return &RandomPlayer{}, nil
	}
	if d, err := ParseDifficulty(spec); err == nil {
		return NewMinimaxPlayer(DepthForDifficulty(d), threads), nil
	}
	ds := strings.TrimPrefix(spec, "minimax:")
	depth, err := strconv.Atoi(ds)
	if err != nil {
		return nil, fmt.Errorf("unrecognized player %q", spec)
	}
	if depth < 0 {
		return nil, fmt.Errorf("depth must not be negative: %d", depth)
	}
	return NewMinimaxPlayer(depth, threads), nil
}
