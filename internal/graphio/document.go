package graphio

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// Document is the format-independent description of a graph.
type Document struct {
	Directed bool        `toml:"directed"`
	Weighted bool        `toml:"weighted"`
	Multi    bool        `toml:"multi"`
	Loops    bool        `toml:"loops"`
	Vertices []string    `toml:"vertices"`
	Edges    []EdgeSpec  `toml:"edges"`
	Filter   FilterSpec  `toml:"filter"`
	Options  OptionsSpec `toml:"options"`
}

// EdgeSpec is one edge. Weight must be 0 unless the document is weighted.
type EdgeSpec struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// FilterSpec restricts the materialized graph to a vertex subset.
// An empty list installs no filter.
type FilterSpec struct {
	Vertices []string `toml:"vertices"`
}

// OptionsSpec carries builder defaults stored alongside the graph.
// Nil pointers and empty strings mean "not set".
type OptionsSpec struct {
	Sparse      *bool  `toml:"sparse"`
	Deg         string `toml:"deg"`
	Normalized  *bool  `toml:"normalized"`
	EdgeWeights *bool  `toml:"weighted"`
}

// Graph materializes d. Declared vertices are inserted first, then edge
// endpoints in edge order; the filter, if any, is installed last.
func (d *Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if d.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", id, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge #%d %q→%q: %w", i, e.From, e.To, err)
		}
	}
	if len(d.Filter.Vertices) > 0 {
		for _, id := range d.Filter.Vertices {
			if !g.HasVertex(id) {
				return nil, fmt.Errorf("graphio: filter vertex %q: %w", id, core.ErrVertexNotFound)
			}
		}
		g.SetVertexFilter(core.KeepVertices(d.Filter.Vertices...))
	}

	return g, nil
}
