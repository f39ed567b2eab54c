// Package testkit provides deterministic fixtures for model-comparison tests.
package testkit

import (
	"gonum.org/v1/gonum/mat"
)

// TwoTreatmentData returns the 12-observation two-treatment reference
// dataset: a response measured under two treatments with clearly separated
// group means.
func TwoTreatmentData() (result, treatment []float64) {
	result = []float64{1.1, 1.2, 1, 2.2, 1.9, 2, 0.9, 1, 1, 2.2, 2, 2}
	treatment = []float64{1, 1, 1, 2, 2, 2, 1, 1, 1, 2, 2, 2}
	return result, treatment
}

// DesignWithIntercept builds a design matrix whose first column is the
// intercept (all ones) followed by the given predictor columns.
func DesignWithIntercept(rows int, predictors ...[]float64) *mat.Dense {
	cols := len(predictors) + 1
	x := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		x.Set(i, 0, 1)
	}
	for j, p := range predictors {
		for i := 0; i < rows; i++ {
			x.Set(i, j+1, p[i])
		}
	}
	return x
}

// InterceptOnly builds the null-model design matrix: a single column of ones.
func InterceptOnly(rows int) *mat.Dense {
	return DesignWithIntercept(rows)
}
