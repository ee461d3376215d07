// SPDX-License-Identifier: MIT

// Package simulate: functional configuration for sampling.
// Defaults live in documented constants; entry points accept ...Option and
// resolve them via gatherOptions.

package simulate

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/graphsim/sigma"
)

// DefaultMean is the per-node expression mean when none is supplied.
const DefaultMean = 0.0

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	mean      sigma.Param    // DefaultMean broadcast
	seed      uint64         // meaningful only when seeded
	seeded    bool           // WithSeed pins the random stream
	logger    *zap.Logger    // warning side-channel; zap.NewNop() by default
	sigmaOpts []sigma.Option // forwarded by GenerateFromGraph
}

// WithMean sets the per-node expression mean, scalar or per node.
func WithMean(mean sigma.Param) Option {
	return func(o *Options) { o.mean = mean }
}

// WithSeed pins the random stream for reproducible draws.
// Without it each run seeds from the wall clock.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger routes truncation and repair warnings to the given logger.
// A nil logger restores the default no-op sink.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithSigmaOptions forwards synthesis options (correlation, sd, direction,
// tolerance) to the covariance stages of GenerateFromGraph. Generate
// ignores them: an explicit covariance matrix is already synthesized.
func WithSigmaOptions(opts ...sigma.Option) Option {
	return func(o *Options) { o.sigmaOpts = append(o.sigmaOpts, opts...) }
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		mean:   sigma.Scalar(DefaultMean),
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
