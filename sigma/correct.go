// SPDX-License-Identifier: MIT

// Package sigma: covariance validation and repair.
// ValidateAndCorrect is the gate every candidate passes before sampling:
// invalid candidates are repaired (with a logged warning), never rejected.

package sigma

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

const opValidateAndCorrect = "ValidateAndCorrect"

// ValidateAndCorrect checks a covariance candidate and repairs it when it
// is asymmetric or not positive definite. Repairs are warnings, not errors:
// the returned matrix is always usable by the sampler.
//
// Implementation:
//   - Stage 1 (Shape): reject nil and non-square inputs outright.
//   - Stage 2 (Symmetry): if any |m[i][j]-m[j][i]| exceeds the tolerance,
//     average the matrix with its transpose and log a warning.
//   - Stage 3 (Definiteness): attempt a Cholesky factorization. Success
//     means the candidate is positive definite and is returned as-is.
//   - Stage 4 (Repair): rescale to correlation form, project onto the
//     nearest correlation matrix (Higham alternating projections with a
//     small positive eigenvalue floor), rescale back, and log a warning.
//
// Returns the validated (or repaired) matrix, whether any repair was
// applied, and an error for shape violations or a failed
// eigendecomposition.
//
// Idempotence: feeding the returned matrix back in reports no repair.
// Complexity: O(n³) per Cholesky/eigendecomposition.
func ValidateAndCorrect(m *mat.Dense, opts ...Option) (*mat.SymDense, bool, error) {
	if m == nil {
		return nil, false, sigmaErrorf(opValidateAndCorrect, ErrMatrixNil)
	}
	r, c := m.Dims()
	if r != c {
		return nil, false, sigmaErrorf(opValidateAndCorrect, ErrNonSquare)
	}
	o := gatherOptions(opts...)
	n := r

	sym, symmetrized := symmetrize(m, n, o.eps)
	if symmetrized {
		o.logger.Warn("covariance candidate was asymmetric; averaged with its transpose",
			zap.Int("dim", n))
	}

	var chol mat.Cholesky
	if chol.Factorize(sym) {
		return sym, symmetrized, nil
	}

	repaired, err := nearestCorrelation(sym, n)
	if err != nil {
		return nil, false, sigmaErrorf(opValidateAndCorrect, err)
	}
	o.logger.Warn("covariance candidate was not positive definite; projected to the nearest correlation matrix",
		zap.Int("dim", n))

	return repaired, true, nil
}

// symmetrize returns (M+Mᵀ)/2 as a SymDense, reporting whether any pair of
// mirrored entries disagreed beyond eps.
func symmetrize(m *mat.Dense, n int, eps float64) (*mat.SymDense, bool) {
	asymmetric := false
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a, b := m.At(i, j), m.At(j, i)
			if math.Abs(a-b) > eps {
				asymmetric = true
			}
			sym.SetSym(i, j, (a+b)/2.0)
		}
	}

	return sym, asymmetric
}

// nearestCorrelation projects sym onto the nearest correlation matrix and
// restores the original diagonal scale.
//
// Stage 1 rescales to correlation form (unit diagonal). Stage 2 runs
// Higham's alternating projections with a Dykstra correction: project onto
// the positive-semidefinite cone (eigenvalues clamped to a small positive
// floor), then onto the unit-diagonal set. Stage 3 takes one final cone
// projection and renormalizes its diagonal, which preserves positive
// definiteness while restoring the unit diagonal exactly. Stage 4 rescales
// back by the original standard deviations.
func nearestCorrelation(sym *mat.SymDense, n int) (*mat.SymDense, error) {
	// Stage 1: correlation form. A non-positive diagonal entry has no
	// usable scale; its row/column is left unscaled.
	std := make([]float64, n)
	for i := 0; i < n; i++ {
		if d := sym.At(i, i); d > 0 {
			std[i] = math.Sqrt(d)
		} else {
			std[i] = 1.0
		}
	}
	y := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			y.SetSym(i, j, sym.At(i, j)/(std[i]*std[j]))
		}
	}

	// Stage 2: alternating projections.
	ds := mat.NewSymDense(n, nil)
	r := mat.NewSymDense(n, nil)
	for iter := 0; iter < correctionMaxIter; iter++ {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				r.SetSym(i, j, y.At(i, j)-ds.At(i, j))
			}
		}
		x, err := projectPSD(r, n)
		if err != nil {
			return nil, err
		}
		delta := 0.0
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				ds.SetSym(i, j, x.At(i, j)-r.At(i, j))
				next := x.At(i, j)
				if i == j {
					next = 1.0
				}
				if d := math.Abs(next - y.At(i, j)); d > delta {
					delta = d
				}
				y.SetSym(i, j, next)
			}
		}
		if delta < correctionTol {
			break
		}
	}

	// Stage 3: final cone projection plus diagonal renormalization.
	x, err := projectPSD(y, n)
	if err != nil {
		return nil, err
	}
	scale := make([]float64, n)
	for i := 0; i < n; i++ {
		scale[i] = math.Sqrt(x.At(i, i))
	}

	// Stage 4: restore the covariance scale.
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			corr := x.At(i, j) / (scale[i] * scale[j])
			out.SetSym(i, j, std[i]*std[j]*corr)
		}
	}

	return out, nil
}

// projectPSD clamps the eigenvalues of s to at least eigenFloor and
// reconstructs. The strictly positive floor keeps the projection inside
// the positive-definite cone, not just on its boundary.
func projectPSD(s *mat.SymDense, n int) (*mat.SymDense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(s, true); !ok {
		return nil, ErrEigenFailed
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	for k := range vals {
		if vals[k] < eigenFloor {
			vals[k] = eigenFloor
		}
	}

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += vecs.At(i, k) * vals[k] * vecs.At(j, k)
			}
			out.SetSym(i, j, sum)
		}
	}

	return out, nil
}
