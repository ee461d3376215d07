// SPDX-License-Identifier: MIT

// Package sigma: sign-matrix construction.
// A StateSpec describes where edge polarities come from; BuildStateMatrix
// resolves a StateSpec against a graph into an n×n matrix of ±1 signs aligned
// with the graph's canonical node order.

package sigma

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphsim/core"
)

// StateSpec declares the source of edge polarities for sign-matrix
// construction. Construct values only through the provided constructors
// (DefaultState, ScalarState, LabelStates, VectorState, EdgeStates,
// MatrixState); the zero value behaves like DefaultState.
type StateSpec struct {
	mode stateMode

	scalar core.Polarity   // ScalarState
	labels []core.Polarity // LabelStates (parsed eagerly)
	values []float64       // VectorState
	matrix *mat.Dense      // MatrixState
	labErr error           // deferred LabelStates parse failure
}

type stateMode uint8

const (
	stateDefault stateMode = iota
	stateScalar
	stateLabels
	stateVector
	stateEdges
	stateMatrix
)

// DefaultState treats every edge as activating, regardless of the polarity
// stored on the graph.
func DefaultState() StateSpec {
	return StateSpec{mode: stateDefault}
}

// ScalarState applies one polarity uniformly to every edge.
func ScalarState(p core.Polarity) StateSpec {
	return StateSpec{mode: stateScalar, scalar: p}
}

// LabelStates supplies one textual polarity per edge, in edge insertion
// order. Labels are parsed eagerly; an unrecognized label surfaces as
// ErrBadPolarity when the state spec is resolved, a length mismatch as
// ErrStateLength.
func LabelStates(labels ...string) StateSpec {
	parsed := make([]core.Polarity, len(labels))
	for i, s := range labels {
		p, err := core.ParsePolarity(s)
		if err != nil {
			return StateSpec{mode: stateLabels, labErr: fmt.Errorf("LabelStates: %q: %w", s, err)}
		}
		parsed[i] = p
	}

	return StateSpec{mode: stateLabels, labels: parsed}
}

// VectorState supplies one numeric sign per edge, in edge insertion order.
// Negative values mean inhibiting, positive (and zero) mean activating.
// The slice is copied.
func VectorState(values ...float64) StateSpec {
	vec := make([]float64, len(values))
	copy(vec, values)

	return StateSpec{mode: stateVector, values: vec}
}

// EdgeStates reads the polarity stored on each graph edge.
func EdgeStates() StateSpec {
	return StateSpec{mode: stateEdges}
}

// MatrixState supplies a precomputed n×n sign matrix. Only the sign of each
// entry is used (negative → -1, otherwise +1) and the diagonal is forced
// to +1 during resolution.
func MatrixState(m *mat.Dense) StateSpec {
	return StateSpec{mode: stateMatrix, matrix: m}
}

// BuildStateMatrix resolves spec against g into an n×n sign matrix aligned
// with g.Nodes() order.
//
// Implementation (stage by stage):
//
//	Stage 1. Validate the graph and resolve per-edge polarities per the
//	         state spec.
//	Stage 2. Collapse parallel edges per endpoint pair. A pair is inhibiting
//	         if ANY contributing edge resolved inhibiting (order-independent,
//	         matching core.PairPolarities).
//	Stage 3. Fill the matrix: +1 everywhere as the baseline, -1 on both
//	         triangles for inhibiting pairs, +1 forced on the diagonal.
//
// The +1 baseline (rather than 0 for non-adjacent pairs) matters for the
// common-neighbor and distance variants, where structurally distant pairs
// still carry nonzero correlation that must keep its sign.
//
// Errors: ErrGraphNil, ErrStateLength, core.ErrBadPolarity (via LabelStates),
// ErrDimensionMismatch, ErrMatrixNil.
// Complexity: O(n² + E).
func BuildStateMatrix(g *core.Graph, spec StateSpec, opts ...Option) (*mat.Dense, error) {
	if g == nil {
		return nil, sigmaErrorf("BuildStateMatrix", ErrGraphNil)
	}
	o := gatherOptions(opts...)

	nodes := g.Nodes()
	n := len(nodes)

	if spec.mode == stateMatrix {
		return resolveMatrixState(spec.matrix, n)
	}

	negative, err := resolveNegativePairs(g, spec, o.directed)
	if err != nil {
		return nil, sigmaErrorf("BuildStateMatrix", err)
	}

	indexOf := make(map[string]int, n)
	for i, id := range nodes {
		indexOf[id] = i
	}

	s := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.Set(i, j, 1.0)
		}
	}
	for pair := range negative {
		i, j := indexOf[pair.A], indexOf[pair.B]
		s.Set(i, j, -1.0)
		s.Set(j, i, -1.0)
	}
	for i := 0; i < n; i++ {
		s.Set(i, i, 1.0)
	}

	return s, nil
}

// resolveNegativePairs returns the set of endpoint pairs whose collapsed
// polarity is inhibiting under spec.
func resolveNegativePairs(g *core.Graph, spec StateSpec, directed bool) (map[core.Pair]struct{}, error) {
	negative := make(map[core.Pair]struct{})

	switch spec.mode {
	case stateDefault:
		// All activating: nothing negative.
		return negative, nil

	case stateScalar:
		if spec.scalar != core.Inhibiting {
			return negative, nil
		}
		for pair := range g.PairPolarities(directed) {
			negative[pair] = struct{}{}
		}

		return negative, nil

	case stateEdges:
		for pair, pol := range g.PairPolarities(directed) {
			if pol == core.Inhibiting {
				negative[pair] = struct{}{}
			}
		}

		return negative, nil

	case stateLabels:
		if spec.labErr != nil {
			return nil, spec.labErr
		}
		return collapsePerEdge(g, spec.labels, directed)

	case stateVector:
		polarities := make([]core.Polarity, len(spec.values))
		for i, v := range spec.values {
			if v < 0 {
				polarities[i] = core.Inhibiting
			}
		}

		return collapsePerEdge(g, polarities, directed)

	default:
		return negative, nil
	}
}

// collapsePerEdge collapses an explicit per-edge polarity vector (aligned
// with edge insertion order) into the negative-pair set. Any inhibiting
// contributor makes the pair inhibiting; self-loops are skipped.
func collapsePerEdge(g *core.Graph, polarities []core.Polarity, directed bool) (map[core.Pair]struct{}, error) {
	edges := g.Edges()
	if len(polarities) != len(edges) {
		return nil, ErrStateLength
	}

	negative := make(map[core.Pair]struct{})
	for i, e := range edges {
		if e.From == e.To || polarities[i] != core.Inhibiting {
			continue
		}
		pair := core.Pair{A: e.From, B: e.To}
		if !directed && pair.B < pair.A {
			pair.A, pair.B = pair.B, pair.A
		}
		negative[pair] = struct{}{}
	}

	return negative, nil
}

// resolveMatrixState reduces a user-supplied matrix to pure ±1 signs with a
// unit diagonal.
func resolveMatrixState(m *mat.Dense, n int) (*mat.Dense, error) {
	if m == nil {
		return nil, sigmaErrorf("BuildStateMatrix", ErrMatrixNil)
	}
	r, c := m.Dims()
	if r != n || c != n {
		return nil, sigmaErrorf("BuildStateMatrix", ErrDimensionMismatch)
	}

	s := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.At(i, j) < 0 {
				s.Set(i, j, -1.0)
			} else {
				s.Set(i, j, 1.0)
			}
		}
		s.Set(i, i, 1.0)
	}

	return s, nil
}
