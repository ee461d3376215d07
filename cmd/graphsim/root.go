// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graphsim",
	Short: "graphsim simulates expression data from signed regulatory graphs",
	Long: `graphsim turns a signed regulatory graph (activating and inhibiting
edges) into a covariance matrix and draws multivariate-normal expression
samples from it. Invalid covariance candidates are repaired automatically
and the repair is reported on stderr.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("graph", "graph.yaml", "YAML graph description")
	rootCmd.PersistentFlags().String("variant", "adjacency", "structural variant: adjacency, laplacian, common, distance")
	rootCmd.PersistentFlags().Float64("cor", 0.8, "maximum correlation magnitude, in (0, 1]")
	rootCmd.PersistentFlags().Float64("sd", 1.0, "per-node standard deviation")
	rootCmd.PersistentFlags().Bool("directed", false, "honor edge direction (adjacency variant only)")
	rootCmd.PersistentFlags().Bool("absolute", false, "use the absolute distance transform 1/(1+d)")
	rootCmd.PersistentFlags().String("out", "", "output file (default stdout)")
}
