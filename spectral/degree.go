// SPDX-License-Identifier: MIT
// Package spectral: weighted vertex degree.

package spectral

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// DegreeMode selects which incident edges count toward a vertex's degree.
type DegreeMode string

const (
	// DegreeTotal counts in- and out-edges (directed) or incident edges (undirected).
	DegreeTotal DegreeMode = "total"

	// DegreeIn counts in-edges.
	DegreeIn DegreeMode = "in"

	// DegreeOut counts out-edges.
	DegreeOut DegreeMode = "out"
)

// Valid reports whether m is one of total, in, out.
func (m DegreeMode) Valid() bool {
	switch m {
	case DegreeTotal, DegreeIn, DegreeOut:
		return true
	}

	return false
}

// String implements fmt.Stringer.
func (m DegreeMode) String() string { return string(m) }

// ParseDegreeMode converts "total", "in" or "out" into a DegreeMode.
// Any other input yields ErrInvalidArgument.
func ParseDegreeMode(s string) (DegreeMode, error) {
	m := DegreeMode(s)
	if !m.Valid() {
		return "", invalidDegree(m)
	}

	return m, nil
}

func invalidDegree(m DegreeMode) error {
	return fmt.Errorf("deg must be one of total, in, out; got %q: %w", string(m), ErrInvalidArgument)
}

// Degree returns the weighted degree of vertex id under mode.
//
// Semantics (w = WeightFunc, unit weight when nil):
//   - DegreeOut:   Σ w(e) over OutEdges(id).
//   - DegreeIn:    Σ w(e) over InEdges(id).
//   - DegreeTotal: Σ w(e) over AllEdges(id). For directed graphs this is
//     in + out, so a self-loop counts twice. For undirected graphs it is the
//     sum over incident half-edges, again counting a self-loop twice.
//
// Errors:
//   - ErrInvalidArgument for an unknown mode.
//   - traversal errors from the graph (e.g. core.ErrVertexNotFound).
func Degree(g Graph, id string, mode DegreeMode, w WeightFunc) (float64, error) {
	if isNilGraph(g) {
		return 0, fmt.Errorf("Degree: %w", ErrGraphNil)
	}
	edges, err := degreeEdges(g, id, mode)
	if err != nil {
		return 0, fmt.Errorf("Degree(%q): %w", id, err)
	}

	return sumWeights(edges, w), nil
}

// degreeEdges picks the traversal that matches mode.
func degreeEdges(g Graph, id string, mode DegreeMode) ([]*core.Edge, error) {
	switch mode {
	case DegreeOut:
		return g.OutEdges(id)
	case DegreeIn:
		return g.InEdges(id)
	case DegreeTotal:
		return g.AllEdges(id)
	}

	return nil, invalidDegree(mode)
}

func sumWeights(edges []*core.Edge, w WeightFunc) float64 {
	var d float64
	for _, e := range edges {
		d += w.of(e)
	}

	return d
}
