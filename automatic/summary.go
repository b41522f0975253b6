package automatic

import (
	"fmt"
	"strings"

	"github.com/domino14/othello/board"
	"github.com/domino14/othello/stats"
)

// Summary adds up game results between bot 1 and bot 2.
type Summary struct {
	Names  [2]string
	Games  int
	Wins   [2]int
	Ties   int
	P1Dark int
	// DarkWins counts games won by whoever had the dark discs.
	DarkWins int
	// Margin is bot 1's disc count minus bot 2's.
	Margin stats.Statistic
}

func NewSummary(p1, p2 string) *Summary {
	return &Summary{Names: [2]string{p1, p2}}
}

func (s *Summary) Add(r GameResult) {
	s.Games++
	if r.P1Side == board.Dark {
		s.P1Dark++
	}
	switch {
	case r.P1 > r.P2:
		s.Wins[0]++
		if r.P1Side == board.Dark {
			s.DarkWins++
		}
	case r.P2 > r.P1:
		s.Wins[1]++
		if r.P1Side == board.Light {
			s.DarkWins++
		}
	default:
		s.Ties++
	}
	s.Margin.Push(float64(r.Margin()))
}

func (s *Summary) pct(n int) float64 {
	if s.Games == 0 {
		return 0
	}
	return 100.0 * float64(n) / float64(s.Games)
}

func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", s.Games)
	for i, name := range s.Names {
		fmt.Fprintf(&sb, "%v (p%d) wins: %d (%.3f%%)\n", name, i+1, s.Wins[i], s.pct(s.Wins[i]))
	}
	fmt.Fprintf(&sb, "Ties: %d (%.3f%%)\n", s.Ties, s.pct(s.Ties))
	fmt.Fprintf(&sb, "%v played dark: %d (%.3f%%)\n", s.Names[0], s.P1Dark, s.pct(s.P1Dark))
	fmt.Fprintf(&sb, "Dark wins: %d (%.3f%%)\n", s.DarkWins, s.pct(s.DarkWins))
	fmt.Fprintf(&sb, "%v margin: %.3f ± %.3f (95%% CI)  Stdev: %.3f\n",
		s.Names[0], s.Margin.Mean(), s.Margin.Interval(95), s.Margin.Stdev())
	if s.Games > 1 {
		sb.WriteString(s.Margin.Histogram(15, 40))
	}
	return sb.String()
}
