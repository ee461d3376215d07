// SPDX-License-Identifier: MIT

// Package simulate draws multivariate-normal expression samples from a
// validated covariance matrix.
//
// The package wraps gonum's distmv sampler behind two entry points:
//
//   - Generate draws from an explicit covariance matrix (typically the
//     output of sigma.ValidateAndCorrect).
//   - GenerateFromGraph runs the full pipeline: structural matrix, sign
//     resolution, covariance synthesis, validity repair, sampling.
//
// Results come back as a SampleMatrix laid out variables × samples: one row
// per graph node (row labels are the node IDs in canonical order), one
// column per sample (labels "sample_1" .. "sample_k").
//
// Sampling is seeded from the wall clock unless WithSeed pins the stream;
// a pinned seed makes a run bit-for-bit reproducible.
package simulate
