package stats

import (
	"bytes"

	"github.com/aybabtme/uniplot/histogram"
)

// Histogram renders the pushed values as a text histogram with the given
// number of bins.
func (s *Statistic) Histogram(bins, width int) string {
	if s.n == 0 {
		return ""
	}
	h := histogram.Hist(bins, s.vals)
	var buf bytes.Buffer
	if err := histogram.Fprint(&buf, h, histogram.Linear(width)); err != nil {
		return ""
	}
	return buf.String()
}
