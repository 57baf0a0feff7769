// File: view.go
// Role: Filtered views (vertex/edge predicates) and materialized induced subgraphs.
// Determinism:
//   - Filters never reorder anything; they only hide elements.
// Concurrency:
//   - Setting a filter takes the corresponding write lock.
//   - Predicates run under read locks and must not call back into the Graph.

package core

import "sync/atomic"

// SetVertexFilter hides every vertex for which keep returns false.
// A nil predicate clears the vertex filter.
func (g *Graph) SetVertexFilter(keep func(id string) bool) {
	g.muVert.Lock()
	g.vertexFilter = keep
	g.muVert.Unlock()
}

// SetEdgeFilter hides every edge for which keep returns false.
// A nil predicate clears the edge filter.
func (g *Graph) SetEdgeFilter(keep func(e *Edge) bool) {
	g.muEdgeAdj.Lock()
	g.edgeFilter = keep
	g.muEdgeAdj.Unlock()
}

// ClearFilters restores the unfiltered view.
func (g *Graph) ClearFilters() {
	g.SetVertexFilter(nil)
	g.SetEdgeFilter(nil)
}

// HasVertexFilter reports whether a vertex filter is installed.
// When it is, intrinsic ordinals may have gaps over the active vertices.
func (g *Graph) HasVertexFilter() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertexFilter != nil
}

// HasEdgeFilter reports whether an edge filter is installed.
func (g *Graph) HasEdgeFilter() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeFilter != nil
}

// KeepVertices is a convenience vertex filter over a fixed ID set.
func KeepVertices(ids ...string) func(id string) bool {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return func(id string) bool {
		_, ok := set[id]
		return ok
	}
}

// InducedSubgraph returns a new unfiltered Graph holding only the active
// vertices of g for which keep[id] is true, plus every active edge whose
// endpoints are both kept. Vertex order and edge order follow g; edge IDs
// are preserved. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, id := range g.order {
		if keep[id] && g.vertexActiveLocked(id) {
			out.vertices[id] = &Vertex{ID: id, Metadata: g.vertices[id].Metadata}
			out.ordinal[id] = len(out.order)
			out.order = append(out.order, id)
		}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for _, e := range g.edgeSeq {
		if !keep[e.From] || !keep[e.To] || !g.edgeActiveLocked(e) {
			continue
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		out.edges[ne.ID] = ne
		out.edgeSeq = append(out.edgeSeq, ne)
		out.linkEdgeLocked(ne)
	}

	return out
}
