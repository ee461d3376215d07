// SPDX-License-Identifier: MIT

// Package structural: the matrix builders.
// Build is the single public entry; per-kind kernels below it share the
// adjacency ingestion and the canonical node order.

package structural

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphsim/core"
)

// Operation name constants for unified error wrapping.
const (
	opBuild = "Build"
)

// structuralErrorf wraps an underlying error with builder context.
func structuralErrorf(op string, err error) error {
	return fmt.Errorf("structural.%s: %w", op, err)
}

// Build constructs the requested structural matrix from g.
// Implementation:
//   - Stage 1 (Validate): non-nil graph, non-empty vertex set, at least one
//     edge between distinct vertices, known kind.
//   - Stage 2 (Execute): dispatch to the per-kind kernel; every kernel starts
//     from the same adjacency ingestion so node indexing cannot drift.
//
// Inputs:
//   - g: source graph; read-only.
//   - kind: matrix family (Adjacency, Laplacian, CommonNeighbor, Distance).
//   - opts: WithDirected/WithAbsolute; see option docs.
//
// Returns:
//   - *Matrix indexed by g.Nodes() order.
//
// Errors:
//   - ErrGraphNil, ErrNoVertices, ErrNoEdges, ErrUnknownKind.
//
// Complexity:
//   - Adjacency/Laplacian O(V² + E); CommonNeighbor and Distance O(V³).
func Build(g *core.Graph, kind Kind, opts ...Option) (*Matrix, error) {
	if g == nil {
		return nil, structuralErrorf(opBuild, ErrGraphNil)
	}
	o := gatherOptions(opts...)

	m, err := newMatrix(g)
	if err != nil {
		return nil, structuralErrorf(opBuild, err)
	}

	// Direction only shapes the raw adjacency; the other kinds seed a
	// symmetric covariance and always use the undirected collapse.
	directed := o.directed && kind == Adjacency
	pairs := g.PairPolarities(directed)
	if len(pairs) == 0 {
		return nil, structuralErrorf(opBuild, ErrNoEdges)
	}

	// Shared ingestion: binary adjacency in canonical node order.
	fillAdjacency(m, pairs, directed)

	switch kind {
	case Adjacency:
		return m, nil
	case Laplacian:
		toLaplacian(m)

		return m, nil
	case CommonNeighbor:
		toCommonNeighbor(m)

		return m, nil
	case Distance:
		toDistance(m, o.absolute)

		return m, nil
	default:
		return nil, structuralErrorf(opBuild, ErrUnknownKind)
	}
}

// fillAdjacency writes 1 into each connected cell, mirroring when undirected.
// Loops never appear: PairPolarities excludes them.
// Complexity: O(E).
func fillAdjacency(m *Matrix, pairs map[core.Pair]core.Polarity, directed bool) {
	for p := range pairs {
		i := m.indexOf[p.A]
		j := m.indexOf[p.B]
		m.Mat.Set(i, j, 1)
		if !directed {
			m.Mat.Set(j, i, 1)
		}
	}
}

// toLaplacian rewrites the adjacency in place as L = D − A:
// diagonal = degree, off-diagonal = −1 for edges.
// Complexity: O(V²).
func toLaplacian(m *Matrix) {
	n := m.Dim()
	for i := 0; i < n; i++ {
		degree := 0.0
		for j := 0; j < n; j++ {
			degree += m.Mat.At(i, j)
		}
		for j := 0; j < n; j++ {
			m.Mat.Set(i, j, -m.Mat.At(i, j))
		}
		m.Mat.Set(i, i, degree)
	}
}

// toCommonNeighbor rewrites the adjacency as the shared-neighbor count
// matrix N = A·Aᵀ with a zeroed diagonal: N[i,j] counts vertices adjacent to
// both i and j. A is symmetric here, so the product is symmetric too.
// Complexity: O(V³) via the dense product.
func toCommonNeighbor(m *Matrix) {
	n := m.Dim()
	var prod mat.Dense
	prod.Mul(m.Mat, m.Mat.T())
	for i := 0; i < n; i++ {
		prod.Set(i, i, 0) // self-counts carry no pairwise information
	}
	m.Mat.Copy(&prod)
}

// toDistance rewrites the adjacency as an inverse-distance matrix:
// shortest hop counts via Floyd–Warshall (fixed k→i→j order), then each
// distance d mapped into (0,1] by the selected decay profile. The diagonal
// (d = 0) maps to exactly 1; unreachable pairs map to 0.
// Complexity: O(V³).
func toDistance(m *Matrix, absolute bool) {
	n := m.Dim()

	// Seed hop distances: 0 on the diagonal, 1 for edges, +Inf otherwise.
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				dist[i*n+j] = 0
			case m.Mat.At(i, j) > 0:
				dist[i*n+j] = 1
			default:
				dist[i*n+j] = math.Inf(1)
			}
		}
	}

	// Floyd–Warshall relaxation; deterministic k→i→j loop order.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if via := ik + dist[k*n+j]; via < dist[i*n+j] {
					dist[i*n+j] = via
				}
			}
		}
	}

	// Map distances into (0,1]; the profile keeps the diagonal at exactly 1.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := dist[i*n+j]
			switch {
			case math.IsInf(d, 1):
				m.Mat.Set(i, j, 0)
			case absolute:
				m.Mat.Set(i, j, 1/(1+d))
			default:
				m.Mat.Set(i, j, math.Pow(2, -d))
			}
		}
	}
}
