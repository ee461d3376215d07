// SPDX-License-Identifier: MIT

// Package core: deterministic collapse of the edge multiset into per-pair
// polarities. Both the structural matrix builders and the sign-matrix builder
// consume this single collapse, so the two can never disagree on which pairs
// are connected or on their resolved polarity.

package core

// Pair is an endpoint pair in the collapsed edge set. For an undirected
// collapse A ≤ B lexicographically; for a directed collapse (A, B) is the
// ordered (from, to) pair.
type Pair struct {
	A, B string
}

// orient normalizes an endpoint pair under the requested direction policy.
func orient(from, to string, directed bool) Pair {
	if !directed && to < from {
		return Pair{A: to, B: from}
	}

	return Pair{A: from, B: to}
}

// PairPolarities collapses parallel (and, when directed is false,
// anti-parallel) edges into a single polarity per endpoint pair.
//
// Resolution rule: a pair is Inhibiting if ANY contributing edge is
// inhibiting, otherwise Activating. The rule is order-independent, so the
// result does not depend on edge insertion order.
//
// Inputs:
//   - directed: honor edge direction (ordered pairs) or fold both
//     orientations of a pair together.
//
// Returns:
//   - map[Pair]Polarity with one entry per connected pair. Self-loops are
//     excluded: the diagonal of every derived matrix is forced separately.
//
// Complexity: O(E).
func (g *Graph) PairPolarities(directed bool) map[Pair]Polarity {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pairs := make(map[Pair]Polarity, len(g.edges))
	for _, e := range g.edges {
		if e.From == e.To {
			continue // diagonal handled by matrix builders
		}
		key := orient(e.From, e.To, directed)
		if prev, seen := pairs[key]; seen {
			if prev == Inhibiting || e.State == Inhibiting {
				pairs[key] = Inhibiting
			}

			continue
		}
		pairs[key] = e.State
	}

	return pairs
}
