package ftest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// FSurvival evaluates the survival function (complementary CDF) of the
// F-distribution with df1 and df2 degrees of freedom at x. Degenerate input
// (non-positive degrees of freedom, non-finite x) yields NaN so that a
// degenerate comparison surfaces as a non-finite p-value instead of a crash.
func FSurvival(df1, df2, x float64) float64 {
	if df1 <= 0 || df2 <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	if x <= 0 {
		return 1.0
	}

	fDist := distuv.F{D1: df1, D2: df2}
	return 1 - fDist.CDF(x)
}
