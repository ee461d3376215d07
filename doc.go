// Package graphsim simulates gene-expression data from signed regulatory
// graphs: edges annotated as activating or inhibiting become positive or
// negative correlations, and samples are drawn from the resulting
// multivariate-normal distribution.
//
// 🚀 What is graphsim?
//
//	A pipeline from graph topology to labeled expression matrices:
//		• Signed graphs: vertices & edges with activating/inhibiting polarity
//		• Structural matrices: adjacency, Laplacian, common-neighbor, distance
//		• Covariance synthesis: variant normalization, sign application, sd scaling
//		• Validity repair: nearest-correlation projection (warn, never reject)
//		• Sampling: seeded multivariate-normal draws, variables × samples
//
// Everything is organized under four subpackages plus a CLI:
//
//	core/         — the signed Graph, Polarity, and the per-pair edge collapse
//	structural/   — graph → structural matrix builders (all four variants)
//	sigma/        — covariance synthesis, validation, and repair
//	simulate/     — multivariate-normal sampling and the end-to-end pipeline
//	cmd/graphsim/ — YAML-in, CSV-out command line front end
//
// Quick example, the A—B—C path with an inhibiting second edge:
//
//	g := core.New()
//	_ = g.AddEdge("A", "B", core.Activating)
//	_ = g.AddEdge("B", "C", core.Inhibiting)
//
//	out, err := simulate.GenerateFromGraph(100, g,
//	        structural.Adjacency, sigma.EdgeStates(),
//	        simulate.WithSeed(42))
//	// out.RowNames == ["A", "B", "C"], columns "sample_1".."sample_100";
//	// A and B correlate near +0.8, B and C near -0.8.
//
//	go get github.com/katalvlaran/graphsim
package graphsim
