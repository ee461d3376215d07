// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsim/core"
)

func TestAddVertex_Validation(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent re-add
	require.Equal(t, 1, g.NodeCount())
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("B"))
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.NoError(t, g.AddEdge("B", "A", core.Activating))
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())

	// Node order is ascending by ID regardless of insertion order.
	require.Equal(t, []string{"A", "B"}, g.Nodes())
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.ErrorIs(t, g.AddEdge("A", "A", core.Activating), core.ErrLoopNotAllowed)

	gl := core.New(core.WithLoops())
	require.NoError(t, gl.AddEdge("A", "A", core.Activating))
	require.Equal(t, 1, gl.EdgeCount())
}

func TestEdges_InsertionOrderCopy(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", core.Activating))
	require.NoError(t, g.AddEdge("B", "C", core.Inhibiting))

	es := g.Edges()
	require.Len(t, es, 2)
	require.Equal(t, core.Edge{From: "A", To: "B", State: core.Activating}, es[0])
	require.Equal(t, core.Edge{From: "B", To: "C", State: core.Inhibiting}, es[1])

	// Mutating the returned slice must not alias internal state.
	es[0].State = core.Inhibiting
	require.Equal(t, core.Activating, g.Edges()[0].State)
}

func TestParsePolarity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want core.Polarity
		ok   bool
	}{
		{"activating", core.Activating, true},
		{"Inhibiting", core.Inhibiting, true},
		{"  ACTIVATING ", core.Activating, true},
		{"repressing", core.Activating, false},
		{"", core.Activating, false},
	}
	for _, tc := range cases {
		p, err := core.ParsePolarity(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			require.Equal(t, tc.want, p, tc.in)
		} else {
			require.ErrorIs(t, err, core.ErrBadPolarity, tc.in)
		}
	}
}

func TestPolarity_Sign(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, core.Activating.Sign())
	require.Equal(t, -1.0, core.Inhibiting.Sign())
}

func TestNeighborIDs(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.NoError(t, g.AddEdge("B", "A", core.Activating))
	require.NoError(t, g.AddEdge("B", "C", core.Inhibiting))
	require.NoError(t, g.AddEdge("C", "B", core.Activating))

	require.Equal(t, []string{"A", "C"}, g.NeighborIDs("B"))
	require.Equal(t, []string{"B"}, g.NeighborIDs("A"))
	require.Empty(t, g.NeighborIDs("Z"))
}
