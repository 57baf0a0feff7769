// SPDX-License-Identifier: MIT
// Package spectral: the read-only graph contract consumed by the builders.

package spectral

import "github.com/katalvlaran/spectral/core"

// Graph is the read-only view the builders need. *core.Graph satisfies it.
//
// Contract:
//   - Vertices and Edges enumerate ACTIVE elements in a stable order.
//   - VertexOrdinal is dense over [0, len(Vertices())) whenever
//     HasVertexFilter reports false.
//   - OutEdges/InEdges/AllEdges follow the core traversal policy: for
//     undirected graphs all three list every incident edge, self-loops twice.
//   - The graph must not be mutated while a builder runs.
type Graph interface {
	Directed() bool
	HasVertexFilter() bool
	VertexOrdinal(id string) (int, error)
	Vertices() []string
	Edges() []*core.Edge
	OutEdges(id string) ([]*core.Edge, error)
	InEdges(id string) ([]*core.Edge, error)
	AllEdges(id string) ([]*core.Edge, error)
}

var _ Graph = (*core.Graph)(nil)

// WeightFunc maps an edge to its numeric weight.
type WeightFunc func(e *core.Edge) float64

// EdgeWeight is the stock WeightFunc reading core.Edge.Weight.
func EdgeWeight(e *core.Edge) float64 { return e.Weight }

// unitWeight is used when no WeightFunc is configured.
const unitWeight = 1.0

// of evaluates w on e, or returns the unit weight when w is nil.
func (w WeightFunc) of(e *core.Edge) float64 {
	if w == nil {
		return unitWeight
	}

	return w(e)
}

// isNilGraph reports a nil interface or a typed-nil *core.Graph.
func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	if cg, ok := g.(*core.Graph); ok {
		return cg == nil
	}

	return false
}
