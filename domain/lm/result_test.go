package lm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestedlm/domain/core"
)

func TestNewFTestResultCopiesInputs(t *testing.T) {
	ssr := []float64{1, 2}
	res, err := NewFTestResult(ssr, []int{3, 2}, []int{10, 11}, []float64{0.9, 0}, []float64{5}, []float64{0.03})
	require.NoError(t, err)

	ssr[0] = 99
	assert.Equal(t, 1.0, res.SSR[0], "constructor must copy, not alias")
	assert.Equal(t, 2, res.NumModels())
}

func TestNewFTestResultRejectsTooFewModels(t *testing.T) {
	_, err := NewFTestResult([]float64{1}, []int{3}, []int{10}, []float64{0.9}, nil, nil)
	require.Error(t, err)
	assert.True(t, core.IsInvalidArity(err))
}

func TestNewFTestResultRejectsMismatchedPerModelLengths(t *testing.T) {
	_, err := NewFTestResult([]float64{1, 2}, []int{3}, []int{10, 11}, []float64{0.9, 0}, []float64{5}, []float64{0.03})
	require.Error(t, err)
}

func TestNewFTestResultRejectsMismatchedPerPairLengths(t *testing.T) {
	_, err := NewFTestResult([]float64{1, 2}, []int{3, 2}, []int{10, 11}, []float64{0.9, 0}, []float64{5, 6}, []float64{0.03})
	require.Error(t, err)

	_, err = NewFTestResult([]float64{1, 2}, []int{3, 2}, []int{10, 11}, []float64{0.9, 0}, []float64{5}, nil)
	require.Error(t, err)
}
