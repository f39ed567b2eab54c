// Package ols fits ordinary-least-squares linear models. A fitted Model
// satisfies ports.FittedLinearModel, so it plugs straight into the sequential
// F-test engine.
package ols

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"

	"nestedlm/domain/core"
	"nestedlm/ports"
)

// Model is a fitted ordinary-least-squares regression.
type Model struct {
	response    []float64
	design      *mat.Dense
	coeffs      []float64
	fitted      []float64
	residuals   []float64
	deviance    float64
	r2          float64
	dof         int
	residualDOF int
}

// Fit estimates coefficients for y = X*beta + e by QR factorization.
// The design matrix x must already contain an intercept column if one is
// wanted; rows of x correspond to entries of y.
func Fit(y []float64, x *mat.Dense) (*Model, error) {
	rows, cols := x.Dims()
	if len(y) == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty response or design matrix", core.ErrInsufficientData)
	}
	if rows != len(y) {
		return nil, fmt.Errorf("design matrix has %d rows for %d observations", rows, len(y))
	}
	if rows < cols {
		return nil, fmt.Errorf("%w: %d observations for %d predictors", core.ErrInsufficientData, rows, cols)
	}

	var qr mat.QR
	qr.Factorize(x)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, mat.NewDense(len(y), 1, append([]float64(nil), y...))); err != nil {
		return nil, fmt.Errorf("least squares solve: %w", err)
	}

	coeffs := make([]float64, cols)
	for i := range coeffs {
		coeffs[i] = beta.At(i, 0)
	}

	var fittedVec mat.Dense
	fittedVec.Mul(x, &beta)

	fitted := make([]float64, rows)
	residuals := make([]float64, rows)
	deviance := 0.0
	for i := 0; i < rows; i++ {
		fitted[i] = fittedVec.At(i, 0)
		residuals[i] = y[i] - fitted[i]
		deviance += residuals[i] * residuals[i]
	}

	mean, err := stats.Mean(y)
	if err != nil {
		return nil, fmt.Errorf("response mean: %w", err)
	}
	tss := 0.0
	for _, v := range y {
		d := v - mean
		tss += d * d
	}
	r2 := 0.0
	if tss > 0 {
		r2 = 1 - deviance/tss
	}

	return &Model{
		response:  append([]float64(nil), y...),
		design:    x,
		coeffs:    coeffs,
		fitted:    fitted,
		residuals: residuals,
		deviance:  deviance,
		r2:        r2,
		// The dispersion parameter counts as estimated, alongside the
		// coefficients.
		dof:         cols + 1,
		residualDOF: rows - cols,
	}, nil
}

// Coefficients returns the estimated coefficients, one per design column.
func (m *Model) Coefficients() []float64 { return m.coeffs }

// Fitted returns the predicted response values.
func (m *Model) Fitted() []float64 { return m.fitted }

// Residuals returns observed minus fitted values.
func (m *Model) Residuals() []float64 { return m.residuals }

func (m *Model) Response() []float64 { return m.response }
func (m *Model) Design() mat.Matrix  { return m.design }
func (m *Model) Deviance() float64   { return m.deviance }
func (m *Model) DOF() int            { return m.dof }
func (m *Model) ResidualDOF() int    { return m.residualDOF }
func (m *Model) RSquared() float64   { return m.r2 }

var _ ports.FittedLinearModel = (*Model)(nil)
