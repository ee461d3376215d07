// SPDX-License-Identifier: MIT

// Package simulate: the end-to-end pipeline.

package simulate

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/graphsim/core"
	"github.com/katalvlaran/graphsim/sigma"
	"github.com/katalvlaran/graphsim/structural"
)

const opGenerateFromGraph = "GenerateFromGraph"

// GenerateFromGraph runs the whole pipeline: coerce the sample count, build
// the structural matrix and sign matrix for kind and state, synthesize the
// covariance candidate, repair it if needed, and draw the samples.
//
// count accepts whatever shape the caller's config produced (see
// ParseCount); a truncated fractional count and any covariance repair are
// logged as warnings, never returned as errors.
//
// Errors: ErrBadCount, plus everything sigma.FromGraph,
// sigma.ValidateAndCorrect, and Generate can return.
func GenerateFromGraph(count any, g *core.Graph, kind structural.Kind, state sigma.StateSpec, opts ...Option) (*SampleMatrix, error) {
	o := gatherOptions(opts...)

	k, truncated, err := ParseCount(count)
	if err != nil {
		return nil, simulateErrorf(opGenerateFromGraph, err)
	}
	if truncated {
		o.logger.Warn("fractional sample count truncated", zap.Int("count", k))
	}
	if k < 1 {
		return nil, simulateErrorf(opGenerateFromGraph, ErrBadCount)
	}

	sopts := append([]sigma.Option{}, o.sigmaOpts...)
	sopts = append(sopts, sigma.WithLogger(o.logger))

	s, err := sigma.FromGraph(g, kind, state, sopts...)
	if err != nil {
		return nil, simulateErrorf(opGenerateFromGraph, err)
	}
	cov, _, err := sigma.ValidateAndCorrect(s.Mat, sopts...)
	if err != nil {
		return nil, simulateErrorf(opGenerateFromGraph, err)
	}

	return Generate(k, cov, s.Nodes, opts...)
}
