package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrNestingViolation = errors.New("model is not nested in its predecessor")
	ErrInvalidArity     = errors.New("at least two models are required")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// Dataset errors
	ErrColumnNotFound = errors.New("column not found")
)

// Error constructors with context

// NewNestingViolationError reports which model failed the submodel check and
// against which predecessor. Indices are 1-based, matching table row labels.
func NewNestingViolationError(index, predecessor int) error {
	return fmt.Errorf("%w: model %d is not a submodel of model %d", ErrNestingViolation, index, predecessor)
}

func NewInvalidArityError(got int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidArity, got)
}

func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// Error checking helpers
func IsNestingViolation(err error) bool {
	return errors.Is(err, ErrNestingViolation)
}

func IsInvalidArity(err error) bool {
	return errors.Is(err, ErrInvalidArity)
}

func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}
