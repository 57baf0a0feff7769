// File: methods_adjacent.go
// Role: Per-vertex traversal (OutEdges, InEdges, AllEdges), Degree and NeighborIDs.
// Determinism:
//   - Every traversal returns edges in the order they were linked (insertion order).
// Concurrency:
//   - muVert then muEdgeAdj read locks; results are fresh slices.

package core

// OutEdges returns the active edges leaving id.
//
// Neighborhood policy:
//   - Directed: edges with From == id; a self-loop appears once.
//   - Undirected: every incident edge; a self-loop appears twice (one per half-edge).
//
// Errors:
//   - ErrEmptyVertexID: id == "".
//   - ErrVertexNotFound: id missing or hidden by the vertex filter.
//
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	return g.traverse(id, true, false)
}

// InEdges returns the active edges entering id.
// For undirected graphs it is identical to OutEdges.
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	return g.traverse(id, false, true)
}

// AllEdges returns every active edge touching id.
//
// Directed: OutEdges followed by InEdges, so a self-loop is listed twice.
// Undirected: identical to OutEdges.
func (g *Graph) AllEdges(id string) ([]*Edge, error) {
	return g.traverse(id, true, true)
}

// traverse collects out- and/or in-lists of id, applying filters.
func (g *Graph) traverse(id string, wantOut, wantIn bool) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if !g.vertexActiveLocked(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if !g.directed {
		// incident list serves every mode
		return g.collectLocked(nil, g.out[id]), nil
	}

	var res []*Edge
	if wantOut {
		res = g.collectLocked(res, g.out[id])
	}
	if wantIn {
		res = g.collectLocked(res, g.in[id])
	}

	return res, nil
}

// collectLocked appends the active members of src to dst.
func (g *Graph) collectLocked(dst, src []*Edge) []*Edge {
	if dst == nil {
		dst = make([]*Edge, 0, len(src))
	}
	for _, e := range src {
		if g.edgeActiveLocked(e) {
			dst = append(dst, e)
		}
	}

	return dst
}

// Degree returns the active in- and out-degree of id, counting edges.
//
// Directed: in = |InEdges|, out = |OutEdges| (a loop adds one to each).
// Undirected: in == out == |incident half-edges| (a loop adds two).
func (g *Graph) Degree(id string) (in, out int, err error) {
	outs, err := g.OutEdges(id)
	if err != nil {
		return 0, 0, err
	}
	if !g.directed {
		return len(outs), len(outs), nil
	}
	ins, err := g.InEdges(id)
	if err != nil {
		return 0, 0, err
	}

	return len(ins), len(outs), nil
}

// NeighborIDs returns the distinct vertex IDs reachable from id by one
// OutEdges step, in first-seen order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	outs, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(outs))
	ids := make([]string, 0, len(outs))
	for _, e := range outs {
		nb := e.Other(id)
		if _, ok := seen[nb]; ok {
			continue
		}
		seen[nb] = struct{}{}
		ids = append(ids, nb)
	}

	return ids, nil
}
