// SPDX-License-Identifier: MIT

package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/sigma"
	"github.com/katalvlaran/graphsim/simulate"
	"github.com/katalvlaran/graphsim/structural"
)

// repressilator builds the three-gene inhibition cycle A ⊣ B ⊣ C ⊣ A.
func repressilator(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", core.Inhibiting))
	require.NoError(t, g.AddEdge("B", "C", core.Inhibiting))
	require.NoError(t, g.AddEdge("C", "A", core.Inhibiting))

	return g
}

func TestGenerateFromGraph_EndToEnd(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", core.Activating))
	require.NoError(t, g.AddEdge("B", "C", core.Inhibiting))

	out, err := simulate.GenerateFromGraph(2000, g, structural.Adjacency, sigma.EdgeStates(),
		simulate.WithSeed(11))
	require.NoError(t, err)

	n, k := out.Dims()
	require.Equal(t, 3, n)
	require.Equal(t, 2000, k)
	require.Equal(t, []string{"A", "B", "C"}, out.RowNames)

	a, err := out.Row("A")
	require.NoError(t, err)
	b, err := out.Row("B")
	require.NoError(t, err)
	c, err := out.Row("C")
	require.NoError(t, err)

	require.InDelta(t, 0.8, stat.Correlation(a, b, nil), 0.1)
	require.InDelta(t, -0.8, stat.Correlation(b, c, nil), 0.1)
}

func TestGenerateFromGraph_RepairsAndWarns(t *testing.T) {
	t.Parallel()

	// An all-inhibiting cycle yields a frustrated (indefinite) candidate:
	// three pairwise correlations of -0.8 cannot coexist. The pipeline must
	// repair it, warn, and still produce samples.
	obs, logs := observer.New(zap.WarnLevel)
	out, err := simulate.GenerateFromGraph(500, repressilator(t), structural.Adjacency,
		sigma.EdgeStates(),
		simulate.WithSeed(13),
		simulate.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	require.GreaterOrEqual(t, logs.Len(), 1)

	a, err := out.Row("A")
	require.NoError(t, err)
	b, err := out.Row("B")
	require.NoError(t, err)
	require.Less(t, stat.Correlation(a, b, nil), 0.0)
}

func TestGenerateFromGraph_CountCoercion(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", core.Activating))

	obs, logs := observer.New(zap.WarnLevel)
	out, err := simulate.GenerateFromGraph("10.7", g, structural.Adjacency, sigma.DefaultState(),
		simulate.WithSeed(17),
		simulate.WithLogger(zap.New(obs)))
	require.NoError(t, err)
	_, k := out.Dims()
	require.Equal(t, 10, k)
	require.Equal(t, 1, logs.Len())

	_, err = simulate.GenerateFromGraph("zero", g, structural.Adjacency, sigma.DefaultState())
	require.ErrorIs(t, err, simulate.ErrBadCount)

	_, err = simulate.GenerateFromGraph(0, g, structural.Adjacency, sigma.DefaultState())
	require.ErrorIs(t, err, simulate.ErrBadCount)
}

func TestGenerateFromGraph_SigmaOptionsForwarded(t *testing.T) {
	t.Parallel()

	g := core.New()
	require.NoError(t, g.AddEdge("A", "B", core.Activating))

	out, err := simulate.GenerateFromGraph(2000, g, structural.Adjacency, sigma.DefaultState(),
		simulate.WithSeed(19),
		simulate.WithSigmaOptions(sigma.WithCorrelation(0.3)))
	require.NoError(t, err)

	a, err := out.Row("A")
	require.NoError(t, err)
	b, err := out.Row("B")
	require.NoError(t, err)
	require.InDelta(t, 0.3, stat.Correlation(a, b, nil), 0.1)
}
