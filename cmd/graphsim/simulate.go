// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphsim/sigma"
	"github.com/katalvlaran/graphsim/simulate"
	"github.com/katalvlaran/graphsim/structural"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Draw expression samples from a graph",
	Long: `Builds the covariance matrix for the graph, repairs it if needed, draws
multivariate-normal samples, and writes them as CSV (variables in rows,
samples in columns).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := readSharedFlags(cmd)
		if err != nil {
			return err
		}
		samples, _ := cmd.Flags().GetInt("samples")
		mean, _ := cmd.Flags().GetFloat64("mean")

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		g, err := loadGraph(flags.graphPath, flags.directed)
		if err != nil {
			return err
		}

		opts := []simulate.Option{
			simulate.WithMean(sigma.Scalar(mean)),
			simulate.WithLogger(logger),
			simulate.WithSigmaOptions(flags.sigmaOpts()...),
		}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			opts = append(opts, simulate.WithSeed(seed))
		}

		out, err := simulate.GenerateFromGraph(samples, g, flags.kind, sigma.EdgeStates(), opts...)
		if err != nil {
			return err
		}

		w, closeFn, err := openOutput(flags.outPath)
		if err != nil {
			return err
		}
		defer closeFn()

		return out.WriteCSV(w)
	},
}

func init() {
	simulateCmd.Flags().Int("samples", 100, "number of samples to draw")
	simulateCmd.Flags().Float64("mean", 0.0, "per-node expression mean")
	simulateCmd.Flags().Uint64("seed", 0, "random seed (wall clock when unset)")
	rootCmd.AddCommand(simulateCmd)
}

// sharedFlags collects the persistent flags used by every subcommand.
type sharedFlags struct {
	graphPath string
	outPath   string
	kind      structural.Kind
	cor       float64
	sd        float64
	directed  bool
	absolute  bool
}

// readSharedFlags parses and validates the persistent flags.
func readSharedFlags(cmd *cobra.Command) (sharedFlags, error) {
	var f sharedFlags
	f.graphPath, _ = cmd.Flags().GetString("graph")
	f.outPath, _ = cmd.Flags().GetString("out")
	f.cor, _ = cmd.Flags().GetFloat64("cor")
	f.sd, _ = cmd.Flags().GetFloat64("sd")
	f.directed, _ = cmd.Flags().GetBool("directed")
	f.absolute, _ = cmd.Flags().GetBool("absolute")

	variant, _ := cmd.Flags().GetString("variant")
	kind, err := structural.ParseKind(variant)
	if err != nil {
		return f, fmt.Errorf("--variant %q: %w", variant, err)
	}
	f.kind = kind

	if f.cor <= 0 || f.cor > 1 {
		return f, fmt.Errorf("--cor %v: must lie in (0, 1]", f.cor)
	}
	if f.sd < 0 {
		return f, fmt.Errorf("--sd %v: must be non-negative", f.sd)
	}

	return f, nil
}

// sigmaOpts translates the shared flags into synthesis options.
func (f sharedFlags) sigmaOpts() []sigma.Option {
	opts := []sigma.Option{
		sigma.WithCorrelation(f.cor),
		sigma.WithSD(sigma.Scalar(f.sd)),
	}
	if f.directed {
		opts = append(opts, sigma.WithDirected())
	}
	if f.absolute {
		opts = append(opts, sigma.WithAbsolute())
	}

	return opts
}

// openOutput returns the destination writer for --out ("" means stdout).
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}
