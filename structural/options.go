// SPDX-License-Identifier: MIT

// Package structural: functional configuration for the matrix builders.
// Defaults live in documented constants (single source of truth); public
// entry points accept ...Option and resolve them via gatherOptions.

package structural

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDirected controls whether edge direction is honored.
	// false ⇒ undirected collapse (mirror [u,v] into [v,u]).
	DefaultDirected = false

	// DefaultAbsolute selects the distance-decay profile for Kind Distance.
	// false ⇒ geometric decay 2^−d; true ⇒ absolute decay 1/(1+d).
	DefaultAbsolute = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public APIs consume ...Option.
type Options struct {
	directed bool // DefaultDirected
	absolute bool // DefaultAbsolute
}

// WithDirected honors edge direction: adjacency rows follow edge orientation
// instead of being mirrored. Laplacian, common-neighbor and distance kinds
// always work on the undirected collapse, since the covariance they seed is
// symmetric by construction.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected folds both orientations of a pair together (the default).
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithAbsolute selects absolute distance decay 1/(1+d) for Kind Distance.
// The default geometric profile 2^−d discounts long paths more aggressively.
func WithAbsolute() Option {
	return func(o *Options) { o.absolute = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; pure function. Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		directed: DefaultDirected,
		absolute: DefaultAbsolute,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
