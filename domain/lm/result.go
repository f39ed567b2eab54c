package lm

import (
	"fmt"

	"nestedlm/domain/core"
)

// FTestResult holds the outcome of a sequential F-test over N nested linear
// models. The four per-model slices have length N and the two per-pair slices
// have length N-1, all in the order the models were supplied. Values are
// copied on construction and must not be mutated afterward.
type FTestResult struct {
	SSR         []float64 // sum of squared residuals per model
	DOF         []int     // estimated parameters per model
	ResidualDOF []int     // residual degrees of freedom per model
	R2          []float64 // coefficient of determination per model
	FStat       []float64 // F-statistic per adjacent pair
	PValue      []float64 // p-value per adjacent pair, aligned with FStat
}

// NewFTestResult validates the arity invariant once and copies all inputs.
func NewFTestResult(ssr []float64, dof, residualDOF []int, r2, fstat, pval []float64) (*FTestResult, error) {
	n := len(ssr)
	if n < 2 {
		return nil, core.NewInvalidArityError(n)
	}
	if len(dof) != n || len(residualDOF) != n || len(r2) != n {
		return nil, fmt.Errorf("per-model slices must all have length %d: dof=%d residual_dof=%d r2=%d",
			n, len(dof), len(residualDOF), len(r2))
	}
	if len(fstat) != n-1 || len(pval) != n-1 {
		return nil, fmt.Errorf("per-pair slices must have length %d: fstat=%d pval=%d",
			n-1, len(fstat), len(pval))
	}

	return &FTestResult{
		SSR:         append([]float64(nil), ssr...),
		DOF:         append([]int(nil), dof...),
		ResidualDOF: append([]int(nil), residualDOF...),
		R2:          append([]float64(nil), r2...),
		FStat:       append([]float64(nil), fstat...),
		PValue:      append([]float64(nil), pval...),
	}, nil
}

// NumModels returns N, the number of compared models.
func (r *FTestResult) NumModels() int {
	return len(r.SSR)
}
