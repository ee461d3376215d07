// Package sigma converts a structural topology matrix and per-pair polarity
// information into a covariance matrix suitable for multivariate-normal
// sampling.
//
// The pipeline has three stages, each deterministic and side-effect free:
//
//   - Synthesis (FromGraph / FromMatrix): normalize a structural matrix into
//     a correlation-scale matrix with unit diagonal and off-diagonal
//     magnitude bounded by the configured maximum correlation, apply the
//     resolved polarity signs, then rescale by per-node standard deviations.
//   - Sign resolution (BuildStateMatrix): collapse per-edge polarities into
//     an n×n sign matrix; conflicting contributors resolve to inhibiting.
//   - Validation and repair (ValidateAndCorrect): verify symmetry and
//     positive-semidefiniteness; on failure substitute the nearest valid
//     correlation matrix (alternating projections, diagonal preserved) and
//     report the substitution as a warning-level event, never an error.
//
// Normalization can produce an asymmetric candidate when the structural
// matrix has asymmetric row scales (Laplacian and common-neighbor variants
// on graphs with uneven degrees); ValidateAndCorrect is the mandatory last
// step before sampling for exactly this reason.
//
// All heavy numerics run on gonum/mat: dense storage, Cholesky
// factorization for the positive-semidefiniteness check and symmetric
// eigendecomposition for the repair projections.
package sigma
