// SPDX-License-Identifier: MIT

// Package simulate: the labeled result container.

package simulate

import (
	"encoding/csv"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Label prefix for generated sample columns.
const sampleLabelPrefix = "sample_"

// SampleMatrix is a labeled expression matrix, variables × samples.
// Rows follow the canonical node order of the graph the covariance came
// from; columns are the generated samples.
type SampleMatrix struct {
	// Data holds one row per variable and one column per sample.
	Data *mat.Dense

	// RowNames are the node IDs, one per row.
	RowNames []string

	// ColNames are the sample labels ("sample_1" .. "sample_k").
	ColNames []string
}

// sampleLabels builds the canonical column labels for k samples.
func sampleLabels(k int) []string {
	labels := make([]string, k)
	for i := range labels {
		labels[i] = sampleLabelPrefix + strconv.Itoa(i+1)
	}

	return labels
}

// Dims returns (variables, samples).
func (s *SampleMatrix) Dims() (int, int) { return s.Data.Dims() }

// At returns the value for variable row i in sample column j.
func (s *SampleMatrix) At(i, j int) float64 { return s.Data.At(i, j) }

// Row returns the sample vector for the named variable.
// Returns ErrRowNotFound for unknown labels.
// Complexity: O(n + k).
func (s *SampleMatrix) Row(name string) ([]float64, error) {
	for i, label := range s.RowNames {
		if label != name {
			continue
		}
		_, k := s.Data.Dims()
		out := make([]float64, k)
		for j := 0; j < k; j++ {
			out[j] = s.Data.At(i, j)
		}

		return out, nil
	}

	return nil, simulateErrorf("Row", ErrRowNotFound)
}

// WriteCSV streams the matrix as CSV: a header row of sample labels (with
// an empty leading cell), then one row per variable, label first.
// Complexity: O(n·k).
func (s *SampleMatrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(s.ColNames)+1)
	header = append(header, "")
	header = append(header, s.ColNames...)
	if err := cw.Write(header); err != nil {
		return err
	}

	n, k := s.Data.Dims()
	record := make([]string, k+1)
	for i := 0; i < n; i++ {
		record[0] = s.RowNames[i]
		for j := 0; j < k; j++ {
			record[j+1] = strconv.FormatFloat(s.Data.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
