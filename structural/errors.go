// SPDX-License-Identifier: MIT
// Package structural: sentinel error set.
// All builders return these sentinels (possibly wrapped with call-site
// context via fmt.Errorf("Op: %w", ...)); tests match them with errors.Is.

package structural

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to a builder.
	ErrGraphNil = errors.New("structural: graph is nil")

	// ErrNoVertices indicates the graph has an empty vertex set; every
	// structural matrix needs at least one node.
	ErrNoVertices = errors.New("structural: graph has no vertices")

	// ErrNoEdges indicates the graph has no edges between distinct vertices,
	// leaving the normalization steps downstream with no positive entries.
	ErrNoEdges = errors.New("structural: graph has no edges")

	// ErrUnknownKind indicates a Kind value outside the declared enum.
	ErrUnknownKind = errors.New("structural: unknown structural kind")
)
