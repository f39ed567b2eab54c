package ftest

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"nestedlm/ports"
)

// IsSubmodel reports whether inner is a valid submodel of outer: both models
// must be fit to an elementwise-identical response, and every predictor
// column of inner must appear, elementwise-identical, somewhere in outer's
// design matrix.
//
// Matching is by exact floating-point equality, not symbolic term identity.
// Two columns with identical numeric content count as the same predictor no
// matter how they were constructed; mathematically equivalent columns that
// differ in the last bit do not. Predictor counts are small, so the
// O(p_inner * p_outer * rows) scan is fine.
func IsSubmodel(inner, outer ports.FittedLinearModel) bool {
	if !floats.Equal(inner.Response(), outer.Response()) {
		return false
	}

	innerRows, pInner := inner.Design().Dims()
	outerRows, pOuter := outer.Design().Dims()
	if pInner > pOuter || innerRows != outerRows {
		return false
	}

	for j := 0; j < pInner; j++ {
		col := mat.Col(nil, j, inner.Design())
		found := false
		for k := 0; k < pOuter; k++ {
			if floats.Equal(col, mat.Col(nil, k, outer.Design())) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
