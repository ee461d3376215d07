// SPDX-License-Identifier: MIT

// Package sigma: functional configuration for synthesis and correction.
// Defaults live in documented constants (single source of truth); public
// entry points accept ...Option and resolve them via gatherOptions.
// Constructors panic only on nonsensical values (programmer error).

package sigma

import (
	"math"

	"go.uber.org/zap"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultCorrelation is the maximum correlation magnitude assigned to
	// the most strongly related pair. Must lie in (0, 1].
	DefaultCorrelation = 0.8

	// DefaultSD is the per-node standard deviation when none is supplied.
	DefaultSD = 1.0

	// DefaultEpsilon is the non-negative tolerance used by symmetry and
	// distance-contract checks.
	DefaultEpsilon = 1e-9
)

// Repair policy constants for the nearest-correlation projection.
const (
	// correctionMaxIter caps the alternating-projection sweeps.
	correctionMaxIter = 100

	// correctionTol stops the projections once successive iterates agree
	// elementwise within this tolerance.
	correctionTol = 1e-7

	// eigenFloor is the eigenvalue floor applied by the projection. A small
	// positive floor (rather than exactly zero) keeps the repaired matrix
	// strictly positive-definite so the sampler's Cholesky always succeeds.
	eigenFloor = 1e-8
)

// Internal panic messages (no magic strings).
const (
	panicCorrelationInvalid = "sigma: WithCorrelation: cor must lie in (0, 1]"
	panicEpsilonInvalid     = "sigma: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public APIs consume ...Option.
type Options struct {
	cor      float64     // DefaultCorrelation; (0,1]
	sd       Param       // DefaultSD broadcast; ≥ 0 per entry
	eps      float64     // DefaultEpsilon
	directed bool        // honor edge direction in graph-driven builds
	absolute bool        // absolute distance transform in graph-driven builds
	logger   *zap.Logger // warning side-channel; zap.NewNop() by default
}

// WithCorrelation sets the maximum correlation magnitude.
// Panics with a stable message unless cor ∈ (0, 1].
func WithCorrelation(cor float64) Option {
	if math.IsNaN(cor) || cor <= 0 || cor > 1 {
		panic(panicCorrelationInvalid)
	}

	return func(o *Options) { o.cor = cor }
}

// WithSD sets the per-node standard deviation, scalar or per node.
// Negative entries surface as ErrNegativeSD at synthesis time (caller input
// error, not a programmer error, hence no panic here).
func WithSD(sd Param) Option {
	return func(o *Options) { o.sd = sd }
}

// WithEpsilon sets the numeric tolerance used by symmetry and
// distance-contract checks. Panics on NaN/Inf or negative values.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithDirected honors edge direction when a graph (rather than a
// precomputed matrix) drives synthesis.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithAbsolute selects the absolute distance transform 1/(1+d) instead of
// the geometric 2^(-d) when a graph drives a distance-variant build.
func WithAbsolute() Option {
	return func(o *Options) { o.absolute = true }
}

// WithLogger routes correction warnings to the given logger.
// A nil logger restores the default no-op sink.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; pure function. Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		cor:    DefaultCorrelation,
		sd:     Scalar(DefaultSD),
		eps:    DefaultEpsilon,
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
