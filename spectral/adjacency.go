// SPDX-License-Identifier: MIT
// Package spectral: adjacency matrix builder.

package spectral

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// Adjacency returns the N×N adjacency matrix of g.
//
// Implementation:
//   - Stage 1: Resolve options; index the active vertices.
//   - Stage 2: Allocate a dense or sparse accumulator (N×N).
//   - Stage 3: For each vertex v and each out-edge e = v→u,
//     A[idx(v)][idx(u)] += w(e).
//   - Stage 4: Finalize the accumulator.
//
// Behavior highlights:
//   - Parallel edges accumulate; self-loops land on the diagonal.
//   - Undirected edges are seen from both endpoints, so A is symmetric and an
//     undirected self-loop contributes 2·w(e) to its diagonal entry.
//   - An empty graph yields a 0×0 matrix.
//
// Options: WithWeight/WithEdgeWeights, WithSparse/WithDense, WithWorkers.
//
// Complexity: O(N + E) visits; O(N²) memory dense, O(N + nnz) sparse.
func Adjacency(g Graph, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: index
	idx, err := IndexVertices(g)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	n := idx.Len()

	// Stage 2: storage
	acc, err := matrix.NewAccumulator(n, n, o.Sparse)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: allocate %dx%d: %w", n, n, err)
	}

	// Stage 3: out-edge sweep
	err = forEachVertex(idx, o.Workers, func(row int, v string) error {
		outs, err := g.OutEdges(v)
		if err != nil {
			return fmt.Errorf("out-edges of %q: %w", v, err)
		}
		for _, e := range outs {
			col, err := idx.Of(e.Other(v))
			if err != nil {
				return err
			}
			if err = acc.Add(row, col, o.Weight.of(e)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}

	// Stage 4: finalize
	return acc.Matrix(), nil
}
