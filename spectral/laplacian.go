// SPDX-License-Identifier: MIT
// Package spectral: Laplacian matrix builder.

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// Laplacian returns the N×N Laplacian of g.
//
// Unnormalized (WithNormalized(false)):
//
//	L[v][u] += −w(e) for every out-edge e = v→u, then L[v][v] = d(v).
//	The diagonal is overwritten, so self-loop contributions do not survive.
//
// Normalized (default):
//
//	ℒ[v][u] += −w(e) / √(d(v)·d(u)); ℒ[v][v] = 1 when d(v) > 0, otherwise the
//	diagonal keeps whatever the sweep wrote (0 for an isolated vertex).
//	A zero d(v) or d(u) next to an existing edge makes the entry ±Inf or NaN;
//	the value is returned as computed.
//
// d(·) is Degree under the configured DegreeMode and WeightFunc.
//
// Implementation:
//   - Stage 1: Resolve options; reject an unknown DegreeMode with
//     ErrInvalidArgument before any allocation.
//   - Stage 2: Index the active vertices; allocate the accumulator.
//   - Stage 3: Compute every d(v) once into a row-indexed slice.
//   - Stage 4: Sweep out-edges, then set the diagonal of the visited row.
//   - Stage 5: Finalize.
//
// Options: WithDegree, WithNormalized, WithWeight/WithEdgeWeights,
// WithSparse/WithDense, WithWorkers.
//
// Complexity: O(N + E) visits (degrees add one more O(N + E) pass).
func Laplacian(g Graph, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate enumerated input first
	if !o.Degree.Valid() {
		return nil, fmt.Errorf("Laplacian: %w", invalidDegree(o.Degree))
	}

	// Stage 2: index + storage
	idx, err := IndexVertices(g)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	n := idx.Len()
	acc, err := matrix.NewAccumulator(n, n, o.Sparse)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: allocate %dx%d: %w", n, n, err)
	}

	// Stage 3: degrees
	deg := make([]float64, n)
	err = forEachVertex(idx, o.Workers, func(row int, v string) error {
		edges, err := degreeEdges(g, v, o.Degree)
		if err != nil {
			return fmt.Errorf("degree of %q: %w", v, err)
		}
		deg[row] = sumWeights(edges, o.Weight)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}

	// Stage 4: off-diagonal sweep, then the diagonal of the same row
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
			w := o.Weight.of(e)
			if o.Normalized {
				w /= math.Sqrt(deg[row] * deg[col])
			}
			if err = acc.Add(row, col, -w); err != nil {
				return err
			}
		}

		switch {
		case !o.Normalized:
			return acc.Set(row, row, deg[row])
		case deg[row] > 0:
			return acc.Set(row, row, 1)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}

	// Stage 5: finalize
	return acc.Matrix(), nil
}
