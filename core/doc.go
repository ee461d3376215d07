// Package core defines the signed regulatory graph used throughout graphsim:
// labeled vertices, directed edges carrying an activating/inhibiting polarity,
// and the deterministic node ordering every derived matrix is indexed by.
//
// All core APIs guard internal state with a sync.RWMutex, so a Graph may be
// built from multiple goroutines; the matrix pipelines downstream are
// single-threaded and treat a Graph as read-only input.
//
// Determinism:
//   - Nodes() returns vertex IDs in ascending order; this is the canonical
//     node order for every matrix derived from the graph.
//   - Edges() returns edges in insertion order, which is the canonical edge
//     order for per-edge parameter vectors.
//
// Errors:
//
//	ErrEmptyVertexID - vertex ID is the empty string.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrBadPolarity - polarity label outside {activating, inhibiting}.
package core
