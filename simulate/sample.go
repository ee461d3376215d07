// SPDX-License-Identifier: MIT

// Package simulate: the multivariate-normal draw.

package simulate

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

const opGenerate = "Generate"

// Generate draws k multivariate-normal samples from cov.
//
// Implementation:
//   - Stage 1 (Validate): k ≥ 1, non-nil covariance, one node label per
//     covariance row, broadcastable mean.
//   - Stage 2 (Sampler): build the gonum distmv normal over cov; a failed
//     Cholesky inside the sampler surfaces as ErrNotPositiveDefinite.
//   - Stage 3 (Draw): draw k vectors (one per sample) and lay them out as
//     a variables × samples matrix, so each column is one sample.
//
// Inputs:
//   - k: number of samples to draw.
//   - cov: validated covariance (sigma.ValidateAndCorrect output).
//   - nodes: row labels in the covariance's node order.
//
// Determinism: with WithSeed the draw is reproducible; without it the
// stream seeds from the wall clock.
// Complexity: O(n³) for the factorization plus O(k·n²) for the draws.
func Generate(k int, cov *mat.SymDense, nodes []string, opts ...Option) (*SampleMatrix, error) {
	if k < 1 {
		return nil, simulateErrorf(opGenerate, ErrBadCount)
	}
	if cov == nil {
		return nil, simulateErrorf(opGenerate, ErrCovarianceNil)
	}
	n, _ := cov.Dims()
	if len(nodes) != n {
		return nil, simulateErrorf(opGenerate, ErrLabelMismatch)
	}
	o := gatherOptions(opts...)

	mu, err := o.mean.Broadcast(n)
	if err != nil {
		return nil, simulateErrorf(opGenerate, err)
	}

	seed := o.seed
	if !o.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	normal, ok := distmv.NewNormal(mu, cov, rand.NewSource(seed))
	if !ok {
		return nil, simulateErrorf(opGenerate, ErrNotPositiveDefinite)
	}

	data := mat.NewDense(n, k, nil)
	draw := make([]float64, n)
	for j := 0; j < k; j++ {
		normal.Rand(draw)
		for i := 0; i < n; i++ {
			data.Set(i, j, draw[i])
		}
	}

	rows := make([]string, n)
	copy(rows, nodes)

	return &SampleMatrix{Data: data, RowNames: rows, ColNames: sampleLabels(k)}, nil
}
