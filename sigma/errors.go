// SPDX-License-Identifier: MIT
// Package sigma: sentinel error set (unified, consistent).
// All pipeline stages return these sentinels and tests match them via
// errors.Is. Panics are reserved for programmer errors in option
// constructors.

package sigma

import (
	"errors"
	"fmt"
)

// sigmaErrorf wraps an underlying error with pipeline context.
func sigmaErrorf(op string, err error) error {
	return fmt.Errorf("sigma.%s: %w", op, err)
}

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("sigma: graph is nil")

	// ErrMatrixNil indicates that a nil matrix was passed where one is required.
	ErrMatrixNil = errors.New("sigma: matrix is nil")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("sigma: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between the
	// structural matrix, the sign matrix, or a per-node parameter vector.
	ErrDimensionMismatch = errors.New("sigma: dimension mismatch")

	// ErrNotDistance signals that the distance variant received a matrix
	// violating the distance contract (diagonal exactly 1, entries in [0,1]).
	// The usual cause is passing a raw adjacency matrix instead of a
	// distance matrix.
	ErrNotDistance = errors.New("sigma: not a distance matrix (unit diagonal and entries in [0,1] required)")

	// ErrNoPositiveEntries indicates the structural matrix has no positive
	// off-diagonal entry, leaving max-normalization undefined. The graph has
	// no connectivity to derive correlations from.
	ErrNoPositiveEntries = errors.New("sigma: no positive off-diagonal entries to normalize")

	// ErrNegativeSD indicates a negative standard deviation was supplied.
	ErrNegativeSD = errors.New("sigma: standard deviation must be non-negative")

	// ErrStateLength indicates a per-edge state vector whose length does not
	// match the graph's edge count.
	ErrStateLength = errors.New("sigma: state vector length does not match edge count")

	// ErrEigenFailed indicates the symmetric eigendecomposition used by the
	// nearest-correlation repair did not converge.
	ErrEigenFailed = errors.New("sigma: eigendecomposition failed")
)
