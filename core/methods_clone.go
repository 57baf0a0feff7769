// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID and vertex ordinals.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration, vertices,
// ordinals and filters, but no edges. Future AddEdge calls on the clone
// continue the source's edge-ID sequence.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.cloneEmptyLocked()
}

func (g *Graph) cloneEmptyLocked() *Graph {
	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	for i, id := range clone.order {
		clone.vertices[id] = &Vertex{ID: id, Metadata: g.vertices[id].Metadata}
		clone.ordinal[id] = i
	}
	clone.vertexFilter = g.vertexFilter
	clone.edgeFilter = g.edgeFilter

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// adjacency and filters. Edge IDs and insertion order are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := g.cloneEmptyLocked()
	for _, e := range g.edgeSeq {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		clone.edges[ne.ID] = ne
		clone.edgeSeq = append(clone.edgeSeq, ne)
		clone.linkEdgeLocked(ne)
	}

	return clone
}

// Clear removes all vertices, edges and filters but keeps configuration flags.
// The edge-ID counter restarts at zero.
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.ordinal = make(map[string]int)
	g.order = nil
	g.edges = make(map[string]*Edge)
	g.edgeSeq = nil
	g.out = make(map[string][]*Edge)
	g.in = make(map[string][]*Edge)
	g.vertexFilter = nil
	g.edgeFilter = nil
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
