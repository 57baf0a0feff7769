// File: methods_vertices.go
// Role: Vertex lifecycle, intrinsic ordinals and active-vertex queries.
//
// Determinism:
//   - Vertices() returns IDs in ordinal (insertion) order.
//   - Ordinals are dense: RemoveVertex shifts every later vertex down by one.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - RemoveVertex takes muVert then muEdgeAdj to drop incident edges atomically.
package core

// AddVertex inserts a vertex with the given id.
//
// Implementation:
//   - Stage 1: Reject empty id (ErrEmptyVertexID).
//   - Stage 2: Under muVert, return nil if id already exists (idempotent).
//   - Stage 3: Append id to the ordinal order and record its position.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.ordinal[id] = len(g.order)
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether the vertex exists, ignoring filters.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// GetVertex returns the stored Vertex for id, ignoring filters.
func (g *Graph) GetVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Implementation:
//   - Stage 1: Validate id; lock muVert then muEdgeAdj.
//   - Stage 2: Drop every incident edge from the catalog and adjacency.
//   - Stage 3: Remove id from the ordinal order and renumber the tail.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	pos, ok := g.ordinal[id]
	if !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	incident := make(map[string]*Edge)
	for _, e := range g.out[id] {
		incident[e.ID] = e
	}
	for _, e := range g.in[id] {
		incident[e.ID] = e
	}
	for _, e := range incident {
		g.unlinkEdgeLocked(e)
	}
	delete(g.out, id)
	delete(g.in, id)
	g.muEdgeAdj.Unlock()

	delete(g.vertices, id)
	delete(g.ordinal, id)
	copy(g.order[pos:], g.order[pos+1:])
	g.order = g.order[:len(g.order)-1]
	for i := pos; i < len(g.order); i++ {
		g.ordinal[g.order[i]] = i
	}

	return nil
}

// VertexOrdinal returns the intrinsic ordinal of id in [0, total vertex count).
// The ordinal ignores filters; it is the position of id among all stored vertices.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) VertexOrdinal(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	pos, ok := g.ordinal[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return pos, nil
}

// Vertices returns the IDs of all active vertices in ordinal order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if g.vertexFilter == nil || g.vertexFilter(id) {
			ids = append(ids, id)
		}
	}

	return ids
}

// VertexCount returns the number of active vertices.
// Without a vertex filter this is O(1), otherwise O(V).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if g.vertexFilter == nil {
		return len(g.order)
	}
	n := 0
	for _, id := range g.order {
		if g.vertexFilter(id) {
			n++
		}
	}

	return n
}

// vertexActiveLocked reports whether id exists and passes the vertex filter.
// Caller must hold muVert (read or write).
func (g *Graph) vertexActiveLocked(id string) bool {
	if _, ok := g.vertices[id]; !ok {
		return false
	}

	return g.vertexFilter == nil || g.vertexFilter(id)
}
