// Package ftest compares a sequence of nested linear regression models via
// sequential F-tests. Models are supplied in order of decreasing complexity;
// each must be a true statistical submodel of its predecessor.
package ftest

import (
	"math"

	"nestedlm/domain/core"
	"nestedlm/domain/lm"
	"nestedlm/internal/algebra"
	"nestedlm/ports"
)

// FTest validates pairwise nesting across the whole sequence, then derives
// per-model summaries and per-pair comparison statistics. A failed nesting
// check aborts the entire computation with a core.ErrNestingViolation naming
// the offending 1-based model index; no partial result is ever returned.
//
// Degenerate comparisons (equal parameter counts, zero residual degrees of
// freedom) are not errors: the corresponding F-statistic and p-value come
// back non-finite.
func FTest(models []ports.FittedLinearModel) (*lm.FTestResult, error) {
	n := len(models)
	if n < 2 {
		return nil, core.NewInvalidArityError(n)
	}
	for i := 1; i < n; i++ {
		if !IsSubmodel(models[i], models[i-1]) {
			return nil, core.NewNestingViolationError(i+1, i)
		}
	}

	ssr := make([]float64, n)
	dof := make([]int, n)
	residualDOF := make([]int, n)
	r2 := make([]float64, n)
	for i, m := range models {
		ssr[i] = m.Deviance()
		dof[i] = m.DOF()
		residualDOF[i] = m.ResidualDOF()
		r2[i] = m.RSquared()
	}

	// Parameter counts shrink along the sequence, so the per-pair parameter
	// delta (later minus earlier) is negative for a strict submodel.
	deltaDOF := algebra.SuccessiveIncreasingDiff(dof)

	meanSqReduction := algebra.ElementwiseRatio(
		algebra.SuccessiveDecreasingDiff(ssr),
		intsToFloats(deltaDOF),
	)

	// Residual mean square of the larger (earlier) model of each pair.
	residualMeanSq := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		residualMeanSq[i] = ssr[i] / float64(residualDOF[i])
	}

	fstat := algebra.ElementwiseRatio(meanSqReduction, residualMeanSq)

	pval := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		// The magnitude of the parameter delta is the numerator dof; the
		// sign only encodes the supplied ordering.
		pval[i] = FSurvival(math.Abs(float64(deltaDOF[i])), float64(residualDOF[i+1]), fstat[i])
	}

	return lm.NewFTestResult(ssr, dof, residualDOF, r2, fstat, pval)
}

func intsToFloats(seq []int) []float64 {
	out := make([]float64, len(seq))
	for i, v := range seq {
		out[i] = float64(v)
	}
	return out
}
