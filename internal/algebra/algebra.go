// Package algebra provides pure helpers over fixed-length ordered numeric
// sequences: successive differences and elementwise ratios.
package algebra

import (
	"fmt"
)

// Number covers the element types the comparison pipeline diffs over.
type Number interface {
	~int | ~float64
}

// SuccessiveDecreasingDiff returns out[i] = seq[i] - seq[i+1], for quantities
// expected to decrease along the sequence. The result has length len(seq)-1.
func SuccessiveDecreasingDiff[T Number](seq []T) []T {
	if len(seq) < 2 {
		return nil
	}
	out := make([]T, len(seq)-1)
	for i := range out {
		out[i] = seq[i] - seq[i+1]
	}
	return out
}

// SuccessiveIncreasingDiff returns out[i] = seq[i+1] - seq[i], for quantities
// whose natural direction is later minus earlier.
func SuccessiveIncreasingDiff[T Number](seq []T) []T {
	if len(seq) < 2 {
		return nil
	}
	out := make([]T, len(seq)-1)
	for i := range out {
		out[i] = seq[i+1] - seq[i]
	}
	return out
}

// ElementwiseRatio returns the termwise quotient a[i] / b[i]. A zero divisor
// yields a non-finite value per IEEE-754 rather than an error; callers treat
// that as the signal of a degenerate comparison. Mismatched lengths are a
// programmer error and panic.
func ElementwiseRatio(a, b []float64) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("algebra: elementwise ratio over mismatched lengths %d and %d", len(a), len(b)))
	}
	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] / b[i]
	}
	return out
}
