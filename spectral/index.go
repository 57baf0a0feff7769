// SPDX-License-Identifier: MIT
// Package spectral: vertex and edge indexing.
//
// Purpose:
//   - VertexIndex maps active vertices onto rows 0..N-1.
//   - EdgeIndex maps active edges onto columns 0..E-1.
//
// Determinism:
//   - Both follow the graph's natural enumeration order, so the same graph
//     always yields the same numbering.

package spectral

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// VertexIndex is a bijection from the active vertices of a graph to [0, N).
//
// Two code paths hide behind one type:
//   - native: no vertex filter, rows are the graph's own ordinals and no
//     map is materialized;
//   - rebuilt: a filter is installed, so rows are assigned by enumerating
//     the active vertices in order.
type VertexIndex struct {
	ids []string       // row → vertex ID
	g   Graph          // ordinal source on the native path
	pos map[string]int // vertex ID → row on the rebuilt path
}

// IndexVertices builds the VertexIndex for g.
//
// Implementation:
//   - Stage 1: Reject nil graphs.
//   - Stage 2: Enumerate active vertices (row order).
//   - Stage 3: Without a vertex filter, delegate lookups to VertexOrdinal;
//     otherwise number the enumeration 0..N-1 in a map.
//
// Complexity: O(N) time; O(N) extra space only on the rebuilt path.
func IndexVertices(g Graph) (*VertexIndex, error) {
	if isNilGraph(g) {
		return nil, fmt.Errorf("IndexVertices: %w", ErrGraphNil)
	}
	idx := &VertexIndex{ids: g.Vertices()}
	if !g.HasVertexFilter() {
		idx.g = g
		return idx, nil
	}
	idx.pos = make(map[string]int, len(idx.ids))
	for i, id := range idx.ids {
		idx.pos[id] = i
	}

	return idx, nil
}

// Of returns the row of vertex id.
func (x *VertexIndex) Of(id string) (int, error) {
	if x.pos != nil {
		if i, ok := x.pos[id]; ok {
			return i, nil
		}
		return 0, fmt.Errorf("VertexIndex.Of(%q): %w", id, ErrUnknownVertex)
	}
	i, err := x.g.VertexOrdinal(id)
	if err != nil {
		return 0, fmt.Errorf("VertexIndex.Of(%q): %w: %w", id, ErrUnknownVertex, err)
	}
	if i >= len(x.ids) {
		return 0, fmt.Errorf("VertexIndex.Of(%q): ordinal %d >= %d: %w", id, i, len(x.ids), ErrUnknownVertex)
	}

	return i, nil
}

// Len returns the number of indexed vertices (N).
func (x *VertexIndex) Len() int { return len(x.ids) }

// IDs returns the vertex IDs in row order (a copy).
func (x *VertexIndex) IDs() []string {
	return append([]string(nil), x.ids...)
}

// Native reports whether lookups use the graph's intrinsic ordinals.
func (x *VertexIndex) Native() bool { return x.pos == nil }

// EdgeIndex is a bijection from the active edges of a graph to [0, E),
// assigned by the graph's edge enumeration order.
type EdgeIndex struct {
	edges []*core.Edge
	pos   map[string]int
}

// IndexEdges builds the EdgeIndex for g.
// Complexity: O(E).
func IndexEdges(g Graph) (*EdgeIndex, error) {
	if isNilGraph(g) {
		return nil, fmt.Errorf("IndexEdges: %w", ErrGraphNil)
	}
	edges := g.Edges()
	idx := &EdgeIndex{edges: edges, pos: make(map[string]int, len(edges))}
	for i, e := range edges {
		idx.pos[e.ID] = i
	}

	return idx, nil
}

// Of returns the column of the edge with the given ID.
func (x *EdgeIndex) Of(eid string) (int, error) {
	if j, ok := x.pos[eid]; ok {
		return j, nil
	}

	return 0, fmt.Errorf("EdgeIndex.Of(%q): %w", eid, ErrUnknownEdge)
}

// Len returns the number of indexed edges (E).
func (x *EdgeIndex) Len() int { return len(x.edges) }

// Edges returns the edges in column order (a copy of the slice).
func (x *EdgeIndex) Edges() []*core.Edge {
	return append([]*core.Edge(nil), x.edges...)
}
