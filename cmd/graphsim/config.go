// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsim/core"
)

// graphFile is the on-disk YAML description of a signed graph.
//
//	nodes:            # optional, for isolated vertices
//	  - D
//	edges:
//	  - {from: A, to: B}                    # state defaults to activating
//	  - {from: B, to: C, state: inhibiting}
type graphFile struct {
	Nodes []string   `yaml:"nodes"`
	Edges []edgeSpec `yaml:"edges"`
}

type edgeSpec struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	State string `yaml:"state"`
}

// loadGraph reads a YAML graph description into a core.Graph.
func loadGraph(path string, directed bool) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	var spec graphFile
	if err = yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse graph file: %w", err)
	}

	g := core.New(core.WithDirected(directed))
	for _, id := range spec.Nodes {
		if err = g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
	}
	for i, e := range spec.Edges {
		state := core.Activating
		if e.State != "" {
			if state, err = core.ParsePolarity(e.State); err != nil {
				return nil, fmt.Errorf("edge %d (%s-%s): %w", i, e.From, e.To, err)
			}
		}
		if err = g.AddEdge(e.From, e.To, state); err != nil {
			return nil, fmt.Errorf("edge %d (%s-%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}
