// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID() and the adjacency link/unlink helpers.
// Determinism:
//   - Edges() returns active edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries take muVert then muEdgeAdj read locks (filters need both).

package core

import (
	"math"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Implementation:
//   - Stage 1: Validate IDs, weight and loop policy.
//   - Stage 2: Ensure both endpoints exist via AddVertex.
//   - Stage 3: Under muEdgeAdj, enforce the multi-edge policy.
//   - Stage 4: Generate the edge ID, store the edge, link adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// Stage 1: input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// Stage 2: endpoints
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// Stage 3: multi-edge policy
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// Stage 4: store and link
	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: weight}
	g.edges[e.ID] = e
	g.edgeSeq = append(g.edgeSeq, e)
	g.linkEdgeLocked(e)

	return e.ID, nil
}

// RemoveEdge deletes one edge by ID.
// Complexity: O(E) to keep insertion order compact.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkEdgeLocked(e)

	return nil
}

// HasEdge reports whether at least one stored edge joins from→to
// (either orientation for undirected graphs). Filters are ignored.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all active edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeSeq))
	for _, e := range g.edgeSeq {
		if g.edgeActiveLocked(e) {
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of active edges.
// Without filters this is O(1), otherwise O(E).
func (g *Graph) EdgeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if g.vertexFilter == nil && g.edgeFilter == nil {
		return len(g.edgeSeq)
	}
	n := 0
	for _, e := range g.edgeSeq {
		if g.edgeActiveLocked(e) {
			n++
		}
	}

	return n
}

// hasEdgeLocked scans out[from] for an edge reaching to. Caller holds muEdgeAdj.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.out[from] {
		if e.From == from && e.To == to {
			return true
		}
		if !g.directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// linkEdgeLocked records e in the per-vertex adjacency. Caller holds muEdgeAdj.
//
// Directed: out[From] and in[To] (a loop lands in both lists of the same vertex).
// Undirected: out[From] and out[To]; a loop is appended twice to out[From].
func (g *Graph) linkEdgeLocked(e *Edge) {
	g.out[e.From] = append(g.out[e.From], e)
	if g.directed {
		g.in[e.To] = append(g.in[e.To], e)
		return
	}
	g.out[e.To] = append(g.out[e.To], e)
}

// unlinkEdgeLocked removes e from the catalog, insertion order and adjacency.
// Caller holds muEdgeAdj.
func (g *Graph) unlinkEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	g.edgeSeq = dropEdge(g.edgeSeq, e)
	g.out[e.From] = dropEdge(g.out[e.From], e)
	if g.directed {
		g.in[e.To] = dropEdge(g.in[e.To], e)
		return
	}
	g.out[e.To] = dropEdge(g.out[e.To], e)
}

// dropEdge removes every occurrence of e from list, preserving order.
func dropEdge(list []*Edge, e *Edge) []*Edge {
	kept := list[:0]
	for _, x := range list {
		if x != e {
			kept = append(kept, x)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}

	return kept
}

// edgeActiveLocked reports whether e passes the edge filter and both of its
// endpoints are active. Caller holds muVert and muEdgeAdj.
func (g *Graph) edgeActiveLocked(e *Edge) bool {
	if !g.vertexActiveLocked(e.From) || !g.vertexActiveLocked(e.To) {
		return false
	}

	return g.edgeFilter == nil || g.edgeFilter(e)
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal digits).
// Safe for concurrent callers; the counter is advanced atomically.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
