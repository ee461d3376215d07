// SPDX-License-Identifier: MIT

// Package core: central type declarations.
// This file declares Polarity, Edge, Graph, GraphOption, sentinel errors,
// and the New constructor.

package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadPolarity indicates a polarity label outside the recognized set.
	ErrBadPolarity = errors.New("core: unrecognized polarity")
)

// Polarity is the regulatory direction attached to an edge: an activating
// edge implies positive correlation between its endpoints, an inhibiting
// edge implies negative correlation.
//
// The zero value is Activating, so unannotated edges behave as activating.
type Polarity int8

const (
	// Activating marks a positive (activating) regulatory relationship.
	Activating Polarity = iota

	// Inhibiting marks a negative (inhibiting) regulatory relationship.
	Inhibiting
)

// Textual polarity labels accepted by ParsePolarity.
const (
	labelActivating = "activating"
	labelInhibiting = "inhibiting"
)

// Sign returns +1 for Activating and -1 for Inhibiting.
// Complexity: O(1).
func (p Polarity) Sign() float64 {
	if p == Inhibiting {
		return -1.0
	}

	return 1.0
}

// String implements fmt.Stringer.
func (p Polarity) String() string {
	if p == Inhibiting {
		return labelInhibiting
	}

	return labelActivating
}

// ParsePolarity maps a textual label onto a Polarity value.
// Accepted (case-insensitive): "activating", "inhibiting".
// Returns ErrBadPolarity for anything else.
// Complexity: O(len(s)).
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case labelActivating:
		return Activating, nil
	case labelInhibiting:
		return Inhibiting, nil
	default:
		return Activating, ErrBadPolarity
	}
}

// Edge is a regulatory relationship between two vertices.
// From and To are vertex IDs; State is the edge polarity.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// State is the regulatory polarity of the relationship.
	State Polarity
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*Graph)

// WithDirected sets whether edge direction is honored by derived matrices
// (true = directed, false = undirected collapse; the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
// Loops are excluded by default: a variable is always fully correlated
// with itself, so a loop carries no extra information for simulation.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory signed regulatory graph.
//
// mu guards vertices and edges; reads take the shared lock so concurrent
// builders and readers do not race.
type Graph struct {
	mu sync.RWMutex

	directed   bool // whether direction is honored downstream
	allowLoops bool // whether self-loops may be added

	vertices map[string]struct{} // vertex ID set
	edges    []Edge              // insertion-ordered edge list
}

// New creates an empty Graph with the given options.
// By default the graph is undirected and loop-free.
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{vertices: make(map[string]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
