// Package core provides the thread-safe in-memory Graph that the spectral
// builders read from.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Collision-free Edge.ID generation ("e1", "e2", ...)
//   - Optional vertex and edge filters that hide elements without removing them
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Vertex ordinals:
//
//	Every vertex carries an intrinsic ordinal: its position in insertion order.
//	RemoveVertex compacts the ordinals so they always form the dense range
//	[0, VertexCount) of the unfiltered graph. Callers that need a dense index
//	over a filtered view must build one themselves (spectral.IndexVertices does).
//
// Enumeration (all results reflect the active view only):
//
//	Vertices()    IDs in ordinal order.
//	Edges()       edges in insertion order.
//	OutEdges(id)  directed: edges leaving id; undirected: every incident edge.
//	InEdges(id)   directed: edges entering id; undirected: same as OutEdges.
//	AllEdges(id)  directed: OutEdges followed by InEdges; undirected: same as OutEdges.
//
//	In an undirected graph a self-loop is listed twice by OutEdges, once per
//	half-edge. In a directed graph a self-loop is listed once by OutEdges and
//	once by InEdges.
//
// Filters:
//
//	SetVertexFilter(pred) hides every vertex for which pred returns false.
//	SetEdgeFilter(pred) hides every edge for which pred returns false.
//	An edge is active only when it passes the edge filter and both endpoints
//	are active. ClearFilters restores the full view. Predicates run under the
//	graph's read locks and must not call back into the same Graph.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - vertex does not exist (or is hidden by a filter).
//	ErrEdgeNotFound        - edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or a non-finite weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("a", "b", 2.5)
//	out, _ := g.OutEdges("a") // [e1: a→b (2.5)]
package core
