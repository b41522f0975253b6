package stats

import "gonum.org/v1/gonum/stat/distuv"

// ZVal is the two-tailed z score for a confidence given in percent, e.g.
// ZVal(95) is about 1.96.
func ZVal(confidence float64) float64 {
	return distuv.UnitNormal.Quantile(0.5 + confidence/200)
}
