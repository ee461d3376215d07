// SPDX-License-Identifier: MIT

// Package sigma: covariance synthesis kernels.
// FromGraph and FromMatrix turn a structural matrix plus a sign matrix into
// a covariance candidate: variant-specific max-normalization, sign
// application off the diagonal, then standard-deviation rescale.

package sigma

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/structural"
)

// Operation names used in wrapped errors.
const (
	opFromGraph  = "FromGraph"
	opFromMatrix = "FromMatrix"
)

// Sigma is a covariance candidate aligned with a node order. The candidate
// may be asymmetric (row-wise normalization is not symmetric for uneven
// degrees) and is not guaranteed positive semidefinite; pass Mat through
// ValidateAndCorrect before sampling.
type Sigma struct {
	// Mat is the covariance candidate, Nodes-aligned on both axes.
	Mat *mat.Dense

	// Nodes is the canonical node order (ascending vertex IDs).
	Nodes []string
}

// FromGraph synthesizes a covariance candidate directly from a graph.
//
// Implementation:
//   - Stage 1 (Structure): build the requested structural matrix via
//     structural.Build, forwarding the direction and distance-transform
//     options.
//   - Stage 2 (Signs): resolve the StateSpec into a ±1 sign matrix aligned
//     with the same node order.
//   - Stage 3 (Synthesis): hand both matrices to the variant kernel
//     (see FromMatrix).
//
// Errors: structural.Build errors, BuildStateMatrix errors, and the
// synthesis sentinels (ErrNoPositiveEntries, ErrNegativeSD, ...).
// Determinism: output depends only on the graph content and options.
// Complexity: dominated by the structural build (O(n³) for distance,
// O(n²·n) for common-neighbor, O(n²) otherwise).
func FromGraph(g *core.Graph, kind structural.Kind, state StateSpec, opts ...Option) (*Sigma, error) {
	if g == nil {
		return nil, sigmaErrorf(opFromGraph, ErrGraphNil)
	}
	o := gatherOptions(opts...)

	sopts := make([]structural.Option, 0, 2)
	if o.directed {
		sopts = append(sopts, structural.WithDirected())
	}
	if o.absolute {
		sopts = append(sopts, structural.WithAbsolute())
	}
	sm, err := structural.Build(g, kind, sopts...)
	if err != nil {
		return nil, sigmaErrorf(opFromGraph, err)
	}

	sign, err := BuildStateMatrix(g, state, opts...)
	if err != nil {
		return nil, sigmaErrorf(opFromGraph, err)
	}

	cov, err := synthesize(sm.Mat, kind, sign, o)
	if err != nil {
		return nil, sigmaErrorf(opFromGraph, err)
	}

	return &Sigma{Mat: cov, Nodes: sm.Nodes()}, nil
}

// FromMatrix synthesizes a covariance candidate from a precomputed
// structural matrix. kind selects the normalization the matrix was built
// for; sign is an n×n ±1 matrix (nil means all activating).
//
// Errors: ErrMatrixNil, ErrNonSquare, ErrDimensionMismatch, ErrNotDistance
// (distance variant fed a non-distance matrix), ErrNoPositiveEntries,
// ErrNegativeSD, structural.ErrUnknownKind.
// Complexity: O(n²).
func FromMatrix(m *mat.Dense, kind structural.Kind, sign *mat.Dense, opts ...Option) (*mat.Dense, error) {
	if m == nil {
		return nil, sigmaErrorf(opFromMatrix, ErrMatrixNil)
	}
	r, c := m.Dims()
	if r != c {
		return nil, sigmaErrorf(opFromMatrix, ErrNonSquare)
	}
	if sign != nil {
		sr, sc := sign.Dims()
		if sr != r || sc != c {
			return nil, sigmaErrorf(opFromMatrix, ErrDimensionMismatch)
		}
	}
	o := gatherOptions(opts...)

	cov, err := synthesize(m, kind, sign, o)
	if err != nil {
		return nil, sigmaErrorf(opFromMatrix, err)
	}

	return cov, nil
}

// synthesize runs the three synthesis stages shared by FromGraph and
// FromMatrix: variant normalization, sign application, sd rescale.
// m is never mutated.
func synthesize(m *mat.Dense, kind structural.Kind, sign *mat.Dense, o Options) (*mat.Dense, error) {
	var (
		out *mat.Dense
		err error
	)
	switch kind {
	case structural.Adjacency:
		out = normalizeAdjacency(m, o.cor)
	case structural.Laplacian:
		out, err = normalizeTwoPass(m, o.cor, true)
	case structural.CommonNeighbor:
		out, err = normalizeTwoPass(m, o.cor, false)
	case structural.Distance:
		out, err = normalizeDistance(m, o.cor, o.eps)
	default:
		err = structural.ErrUnknownKind
	}
	if err != nil {
		return nil, err
	}

	applySigns(out, sign)

	if err = rescaleSD(out, o.sd); err != nil {
		return nil, err
	}

	return out, nil
}

// normalizeAdjacency maps connectivity straight to correlation: every
// positive off-diagonal entry becomes cor, everything else 0, diagonal 1.
func normalizeAdjacency(m *mat.Dense, cor float64) *mat.Dense {
	n, _ := m.Dims()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && m.At(i, j) > 0 {
				out.Set(i, j, cor)
			}
		}
		out.Set(i, i, 1.0)
	}

	return out
}

// normalizeTwoPass is the shared kernel for the Laplacian and
// common-neighbor variants:
//
//	Stage 1 (Pre): copy m; for the Laplacian take |m| and replace zero
//	        diagonal entries with 1 (isolated nodes must not zero a row
//	        max). The degree diagonal stays in: it participates in the
//	        scaling below, so rows of high-degree nodes are divided by
//	        their degree.
//	Stage 2 (Rows): divide each row by its maximum (rows of zeros pass
//	        through).
//	Stage 3 (Columns): divide each column of the row-scaled matrix by its
//	        maximum.
//	Stage 4 (Global): divide by the global maximum, then multiply by cor,
//	        so the strongest relationship lands exactly at cor.
//	Stage 5 (Diagonal): force 1.
//
// Row scaling before column scaling makes the result order-dependent and
// generally asymmetric for uneven degrees; ValidateAndCorrect restores
// symmetry afterwards.
func normalizeTwoPass(m *mat.Dense, cor float64, laplacian bool) (*mat.Dense, error) {
	n, _ := m.Dims()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if laplacian {
				v = math.Abs(v)
				if i == j && v == 0 {
					v = 1
				}
			}
			out.Set(i, j, v)
		}
	}

	if !hasPositiveOffDiagonal(out) {
		return nil, ErrNoPositiveEntries
	}

	for i := 0; i < n; i++ {
		rowMax := 0.0
		for j := 0; j < n; j++ {
			if v := out.At(i, j); v > rowMax {
				rowMax = v
			}
		}
		if rowMax <= 0 {
			continue
		}
		for j := 0; j < n; j++ {
			out.Set(i, j, out.At(i, j)/rowMax)
		}
	}

	for j := 0; j < n; j++ {
		colMax := 0.0
		for i := 0; i < n; i++ {
			if v := out.At(i, j); v > colMax {
				colMax = v
			}
		}
		if colMax <= 0 {
			continue
		}
		for i := 0; i < n; i++ {
			out.Set(i, j, out.At(i, j)/colMax)
		}
	}

	globalMax := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := out.At(i, j); v > globalMax {
				globalMax = v
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, cor*out.At(i, j)/globalMax)
		}
		out.Set(i, i, 1.0)
	}

	return out, nil
}

// normalizeDistance scales a relation-transformed distance matrix so that
// the closest pair lands at cor. The input must already satisfy the
// distance contract (unit diagonal, entries in [0,1]); a raw adjacency or
// Laplacian matrix here is a caller mistake worth a loud ErrNotDistance.
func normalizeDistance(m *mat.Dense, cor, eps float64) (*mat.Dense, error) {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		if math.Abs(m.At(i, i)-1.0) > eps {
			return nil, ErrNotDistance
		}
		for j := 0; j < n; j++ {
			if v := m.At(i, j); v < -eps || v > 1.0+eps {
				return nil, ErrNotDistance
			}
		}
	}

	maxOff := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && m.At(i, j) > maxOff {
				maxOff = m.At(i, j)
			}
		}
	}
	if maxOff <= 0 {
		return nil, ErrNoPositiveEntries
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := cor * m.At(i, j) / maxOff
			if v < 0 {
				v = 0
			}
			out.Set(i, j, v)
		}
		out.Set(i, i, 1.0)
	}

	return out, nil
}

// applySigns multiplies off-diagonal entries by the sign matrix.
// A nil sign means all activating (no-op). The diagonal stays positive.
func applySigns(out, sign *mat.Dense) {
	if sign == nil {
		return
	}
	n, _ := out.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if sign.At(i, j) < 0 {
				out.Set(i, j, -out.At(i, j))
			}
		}
	}
}

// rescaleSD converts the correlation-scaled candidate into a covariance by
// entry-wise sd[i]*sd[j] scaling. The uniform-1 case is the identity and
// is skipped.
func rescaleSD(out *mat.Dense, sd Param) error {
	n, _ := out.Dims()
	vec, err := sd.Broadcast(n)
	if err != nil {
		return err
	}

	uniform := true
	for _, v := range vec {
		if v < 0 {
			return ErrNegativeSD
		}
		if v != 1.0 {
			uniform = false
		}
	}
	if uniform {
		return nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, vec[i]*vec[j]*out.At(i, j))
		}
	}

	return nil
}

// hasPositiveOffDiagonal reports whether any off-diagonal entry is > 0.
func hasPositiveOffDiagonal(m *mat.Dense) bool {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && m.At(i, j) > 0 {
				return true
			}
		}
	}

	return false
}
