// SPDX-License-Identifier: MIT
// Package simulate: sentinel error set (unified, consistent).

package simulate

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCount indicates a sample count that is not a positive number
	// (non-numeric input, NaN/Inf, or a value below 1).
	ErrBadCount = errors.New("simulate: sample count must be a positive number")

	// ErrCovarianceNil indicates a nil covariance matrix.
	ErrCovarianceNil = errors.New("simulate: covariance matrix is nil")

	// ErrLabelMismatch indicates that the node label count does not match
	// the covariance dimension.
	ErrLabelMismatch = errors.New("simulate: node labels do not match covariance dimension")

	// ErrNotPositiveDefinite indicates a covariance matrix the sampler
	// cannot factorize. Run it through sigma.ValidateAndCorrect first.
	ErrNotPositiveDefinite = errors.New("simulate: covariance matrix is not positive definite")

	// ErrRowNotFound indicates a row label lookup for an unknown node.
	ErrRowNotFound = errors.New("simulate: row label not found")
)

// simulateErrorf wraps an underlying error with sampler context.
func simulateErrorf(op string, err error) error {
	return fmt.Errorf("simulate.%s: %w", op, err)
}
