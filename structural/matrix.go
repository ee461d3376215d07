// SPDX-License-Identifier: MIT

package structural

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphsim/core"
)

// Matrix is a square topology matrix together with the node index it is
// written in. Row i and column i refer to Nodes()[i]; the index is immutable
// after construction.
type Matrix struct {
	// Mat is the dense n×n payload.
	Mat *mat.Dense

	nodes   []string       // canonical ID-ascending node order
	indexOf map[string]int // reverse lookup: ID → row/column
}

// newMatrix allocates an n×n zero matrix indexed by the graph's node order.
// Fails with ErrNoVertices on an empty graph.
func newMatrix(g *core.Graph) (*Matrix, error) {
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return nil, ErrNoVertices
	}

	idx := make(map[string]int, n)
	for i, id := range nodes {
		idx[id] = i
	}

	return &Matrix{
		Mat:     mat.NewDense(n, n, nil),
		nodes:   nodes,
		indexOf: idx,
	}, nil
}

// Dim returns the node count n (the matrix is n×n).
func (m *Matrix) Dim() int { return len(m.nodes) }

// Nodes returns the node IDs in matrix order. The returned slice is a copy.
func (m *Matrix) Nodes() []string {
	out := make([]string, len(m.nodes))
	copy(out, m.nodes)

	return out
}

// Index returns the row/column of the given node ID.
func (m *Matrix) Index(id string) (int, bool) {
	i, ok := m.indexOf[id]

	return i, ok
}
