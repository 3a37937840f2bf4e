package fit

import (
	"errors"
	"fmt"
)

// Domain errors for parameter estimation.
var (
	// ErrInvalidSample indicates malformed input data; the fit does not
	// proceed.
	ErrInvalidSample = errors.New("fit: invalid light-curve sample")

	// ErrSingular indicates an ill-conditioned normal-equations system.
	ErrSingular = errors.New("fit: singular system")

	// ErrNoFreeParams indicates every parameter was fixed.
	ErrNoFreeParams = errors.New("fit: no free parameters")

	// ErrUnknownParam indicates a fixed-parameter name that does not
	// exist.
	ErrUnknownParam = errors.New("fit: unknown parameter name")
)

// InvalidSampleError reports the first offending sample index.
type InvalidSampleError struct {
	Index  int
	Reason string
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("fit: sample %d rejected: %s", e.Index, e.Reason)
}

func (e *InvalidSampleError) Unwrap() error {
	return ErrInvalidSample
}

// SingularSystemError carries a conditioning diagnostic: the ratio of
// the largest to smallest pivot met during elimination, or +Inf when a
// pivot vanished outright (rank deficiency).
type SingularSystemError struct {
	Condition float64
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("fit: normal equations singular or near-singular (pivot ratio %.3e)", e.Condition)
}

func (e *SingularSystemError) Unwrap() error {
	return ErrSingular
}
