// Package spectral builds the classical matrix representations of a graph:
// the adjacency matrix, the (optionally normalized) Laplacian and the
// vertex×edge incidence matrix.
//
// Every builder follows the same three stages:
//
//  1. Index   – map the active vertices onto rows 0..N-1 (IndexVertices) and,
//     for incidence, the active edges onto columns 0..E-1 (IndexEdges).
//  2. Degree  – Laplacian only: per-vertex weighted degree under the chosen
//     DegreeMode (DegreeTotal, DegreeIn, DegreeOut).
//  3. Assemble – walk each vertex's out-edges and accumulate into a dense or
//     sparse (CSR) matrix.
//
// Conventions:
//
//	Adjacency   A[v][u] += w(e) for every out-edge e = v→u. Parallel edges sum;
//	            an undirected edge is seen from both endpoints, so A is symmetric;
//	            an undirected self-loop contributes 2·w to the diagonal.
//	Laplacian   L = D − A (row-wise, diagonal overwritten with the degree), or
//	            ℒ[v][u] = −w/√(d(v)·d(u)) with ℒ[v][v] = 1 when d(v) > 0.
//	Incidence   directed: −1 at the source row, +1 at the target row (a self-loop
//	            nets to 0); undirected: +1 at each endpoint (a self-loop gives 2).
//
// Indexing:
//
//	Without a vertex filter the row of a vertex is its intrinsic ordinal
//	(core.Graph.VertexOrdinal). With a filter installed, ordinals may have gaps,
//	so a dense index is rebuilt by enumerating the active vertices in order.
//
// Options (functional, see options.go):
//
//	WithWeight(fn) / WithEdgeWeights()   edge weights (default: every edge counts 1)
//	WithSparse() / WithDense()           output representation (default: sparse)
//	WithDegree(mode)                     Laplacian degree mode (default: total)
//	WithNormalized(bool)                 normalized Laplacian (default: true)
//	WithWorkers(n)                       parallel row assembly (default: 1)
//
// Numerical notes:
//
//	The normalized Laplacian divides by √(d(v)·d(u)) without guarding against a
//	zero neighbor degree; such entries become ±Inf or NaN and are returned as-is.
//
// Errors:
//
//	ErrInvalidArgument  – unknown DegreeMode; raised before any matrix work.
//	ErrGraphNil         – nil graph.
//	ErrUnknownVertex    – an edge endpoint is missing from the vertex index.
//	ErrUnknownEdge      – an edge is missing from the edge index.
//
// Graph traversal errors are wrapped with the builder name, e.g.
// "Laplacian: out-edges of \"v\": core: vertex not found".
package spectral
