// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards vertices, ordinals and the vertex filter.
//   - muEdgeAdj guards the edge catalog, per-vertex adjacency and the edge filter.
//   - Lock order is always muVert before muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent or hidden vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph or a NaN/Inf weight.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Orientation is a property of the whole Graph: in a directed graph the edge
// runs From→To, in an undirected graph From and To are interchangeable.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the numeric label of the edge (0 on unweighted graphs).
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// For a self-loop both endpoints are id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of every edge in the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges), self-loops and filtered views.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order, ordinal, vertexFilter
	muEdgeAdj sync.RWMutex // guards edges, edgeSeq, out, in, edgeFilter

	// Configuration flags
	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	// Vertex storage
	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // vertex IDs by intrinsic ordinal
	ordinal  map[string]int     // vertex ID → position in order

	// Edge storage
	nextEdgeID uint64           // monotonic edge ID generator
	edges      map[string]*Edge // edge ID → Edge
	edgeSeq    []*Edge          // edges in insertion order

	// out[id]: directed → edges with From==id; undirected → incident edges (loops twice).
	// in[id]: directed → edges with To==id; unused for undirected graphs.
	out map[string][]*Edge
	in  map[string][]*Edge

	// Filters; nil means "everything active".
	vertexFilter func(id string) bool
	edgeFilter   func(e *Edge) bool
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		ordinal:  make(map[string]int),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether every edge in the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// options reconstructs the GraphOption list that reproduces g's configuration.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
