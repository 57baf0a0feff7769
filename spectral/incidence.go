// SPDX-License-Identifier: MIT
// Package spectral: vertex×edge incidence matrix builder.

package spectral

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/matrix"
)

// Incidence marks. A directed self-loop receives both srcMark and dstMark in
// the same cell and nets to zero; an undirected self-loop is traversed twice
// and accumulates 2·undirectedMark.
const (
	srcMark        = -1.0
	dstMark        = +1.0
	undirectedMark = +1.0
)

// Incidence returns the N×E incidence matrix of g.
//
// Implementation:
//   - Stage 1: Index active vertices (rows) and active edges (columns).
//   - Stage 2: Allocate a dense or sparse N×E accumulator.
//   - Stage 3: For each vertex v:
//     directed:   B[v][e] += −1 for each out-edge, += +1 for each in-edge;
//     undirected: B[v][e] += +1 for each incident half-edge.
//   - Stage 4: Finalize.
//
// Behavior highlights:
//   - Weights are ignored; entries are structural.
//   - Directed columns sum to 0; undirected columns sum to 2.
//   - A graph without edges yields an N×0 matrix.
//
// Options: WithSparse/WithDense, WithWorkers.
//
// Complexity: O(N + E) visits; O(N·E) memory dense, O(N + E) sparse.
func Incidence(g Graph, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: index
	vidx, err := IndexVertices(g)
	if err != nil {
		return nil, fmt.Errorf("Incidence: %w", err)
	}
	eidx, err := IndexEdges(g)
	if err != nil {
		return nil, fmt.Errorf("Incidence: %w", err)
	}

	// Stage 2: storage
	acc, err := matrix.NewAccumulator(vidx.Len(), eidx.Len(), o.Sparse)
	if err != nil {
		return nil, fmt.Errorf("Incidence: allocate %dx%d: %w", vidx.Len(), eidx.Len(), err)
	}

	// Stage 3: marks
	directed := g.Directed()
	err = forEachVertex(vidx, o.Workers, func(row int, v string) error {
		outs, err := g.OutEdges(v)
		if err != nil {
			return fmt.Errorf("out-edges of %q: %w", v, err)
		}
		outMark := undirectedMark
		if directed {
			outMark = srcMark
		}
		if err = markEdges(acc, eidx, row, outs, outMark); err != nil {
			return err
		}
		if !directed {
			return nil
		}

		ins, err := g.InEdges(v)
		if err != nil {
			return fmt.Errorf("in-edges of %q: %w", v, err)
		}

		return markEdges(acc, eidx, row, ins, dstMark)
	})
	if err != nil {
		return nil, fmt.Errorf("Incidence: %w", err)
	}

	// Stage 4: finalize
	return acc.Matrix(), nil
}

// markEdges adds mark to B[row][col(e)] for every edge in edges.
func markEdges(acc matrix.Accumulator, eidx *EdgeIndex, row int, edges []*core.Edge, mark float64) error {
	for _, e := range edges {
		col, err := eidx.Of(e.ID)
		if err != nil {
			return err
		}
		if err = acc.Add(row, col, mark); err != nil {
			return err
		}
	}

	return nil
}
