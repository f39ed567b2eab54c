package ports

import (
	"gonum.org/v1/gonum/mat"
)

// FittedLinearModel is the read-only view of an estimated regression model
// that the comparison engine consumes. Implementations own their data; the
// engine only reads it.
type FittedLinearModel interface {
	// Response returns the observed outcome values the model was fit to.
	Response() []float64
	// Design returns the predictor matrix, one column per predictor.
	Design() mat.Matrix
	// Deviance returns the sum of squared residuals.
	Deviance() float64
	// DOF returns the number of estimated parameters, including the
	// dispersion parameter (coefficient count + 1).
	DOF() int
	// ResidualDOF returns observation count minus coefficient count.
	ResidualDOF() int
	// RSquared returns the fraction of response variance explained.
	RSquared() float64
}
