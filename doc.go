// Package spectral is the module root of a small toolkit that turns graphs
// into the matrices of spectral graph theory.
//
// Subpackages:
//
//	core/     - thread-safe Graph, Vertex and Edge with vertex/edge filters
//	matrix/   - Dense and CSR storage, accumulators, gonum and sparse bridges
//	spectral/ - Adjacency, Laplacian and Incidence builders
//	builder/  - deterministic topology fixtures (path, cycle, grid, G(n,p), …)
//
// The command-line front end lives in cmd/spectral:
//
//	spectral laplacian -t grid --rows 3 --cols 3 --deg total --dense
//	spectral incidence -i graph.toml
//
// Guarantees:
//   - Row i of every matrix is the i-th active vertex in insertion order;
//     column j of an incidence matrix is the j-th active edge.
//   - Dense and sparse outputs agree entry for entry.
//   - Builders never mutate the graph and may fill rows in parallel.
package spectral
