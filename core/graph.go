// SPDX-License-Identifier: MIT

// Package core: Graph mutation and query methods.
// All methods are safe for concurrent use; accessors return copies so callers
// can never alias internal state.

package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing vertex is
// a no-op, so repeated ingestion of the same node set is idempotent.
// Returns ErrEmptyVertexID when id is "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	g.vertices[id] = struct{}{}
	g.mu.Unlock()

	return nil
}

// AddEdge inserts an edge from→to with the given polarity, creating missing
// endpoint vertices on the fly. Parallel edges are kept: the undirected
// collapse in PairPolarities resolves them deterministically.
// Returns ErrEmptyVertexID for blank endpoints and ErrLoopNotAllowed for a
// self-loop on a loop-free graph.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, state Polarity) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.edges = append(g.edges, Edge{From: from, To: to, State: state})
	g.mu.Unlock()

	return nil
}

// Directed reports whether edge direction is honored by derived matrices.
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges (parallel edges counted individually).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether id names a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Nodes returns all vertex IDs in ascending order.
// This ordering is the canonical node index for every derived matrix: row i
// and column i of any structural or covariance matrix refer to Nodes()[i].
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// NeighborIDs returns the IDs adjacent to id, ascending, ignoring edge
// direction. Unknown IDs yield an empty slice.
// Complexity: O(E + D log D) for D neighbors.
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	set := make(map[string]struct{})
	for _, e := range g.edges {
		switch id {
		case e.From:
			if e.To != id {
				set[e.To] = struct{}{}
			}
		case e.To:
			if e.From != id {
				set[e.From] = struct{}{}
			}
		}
	}
	g.mu.RUnlock()

	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Edges returns a copy of the edge list in insertion order.
// Insertion order is the canonical edge index for per-edge parameter vectors.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
