// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphsim/sigma"
)

var sigmaCmd = &cobra.Command{
	Use:   "sigma",
	Short: "Print the covariance matrix for a graph",
	Long: `Builds and validates the covariance matrix for the graph without
drawing any samples, and writes it as CSV with node labels on both axes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := readSharedFlags(cmd)
		if err != nil {
			return err
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		g, err := loadGraph(flags.graphPath, flags.directed)
		if err != nil {
			return err
		}

		opts := append(flags.sigmaOpts(), sigma.WithLogger(logger))
		s, err := sigma.FromGraph(g, flags.kind, sigma.EdgeStates(), opts...)
		if err != nil {
			return err
		}
		cov, _, err := sigma.ValidateAndCorrect(s.Mat, opts...)
		if err != nil {
			return err
		}

		w, closeFn, err := openOutput(flags.outPath)
		if err != nil {
			return err
		}
		defer closeFn()

		cw := csv.NewWriter(w)
		header := append([]string{""}, s.Nodes...)
		if err = cw.Write(header); err != nil {
			return err
		}
		n := len(s.Nodes)
		record := make([]string, n+1)
		for i := 0; i < n; i++ {
			record[0] = s.Nodes[i]
			for j := 0; j < n; j++ {
				record[j+1] = strconv.FormatFloat(cov.At(i, j), 'g', -1, 64)
			}
			if err = cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()

		return cw.Error()
	},
}

func init() {
	rootCmd.AddCommand(sigmaCmd)
}
