// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/spectral"
)

// A filtered view and its materialized induced subgraph must produce the
// same matrices, for every builder and both storage kinds.
func TestFilteredViewMatchesInducedSubgraph(t *testing.T) {
	t.Parallel()

	keepIDs := []string{"0", "2", "3", "5", "8", "9"}
	keep := make(map[string]bool, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = true
	}

	for _, directed := range []bool{false, true} {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(directed), core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(5), builder.WithWeightFn(builder.UniformWeightFn(1, 3))},
			builder.RandomSparse(10, 0.5))
		require.NoError(t, err)

		g.SetVertexFilter(core.KeepVertices(keepIDs...))
		sub := core.InducedSubgraph(g, keep)
		require.Equal(t, sub.Vertices(), g.Vertices())

		for name, fn := range map[string]builderFn{
			"Adjacency": spectral.Adjacency,
			"Laplacian": spectral.Laplacian,
			"Incidence": spectral.Incidence,
		} {
			for _, storage := range []spectral.Option{spectral.WithDense(), spectral.WithSparse()} {
				opts := []spectral.Option{storage, spectral.WithEdgeWeights(), spectral.WithNormalized(false)}
				viewM := mustBuild(t, fn, g, opts...)
				subM := mustBuild(t, fn, sub, opts...)
				assert.Equal(t, len(keepIDs), viewM.Rows(), "%s directed=%v", name, directed)
				requireSameMatrix(t, subM, viewM)
			}
		}
	}
}

func TestEdgeFilterDropsEdges(t *testing.T) {
	t.Parallel()
	g := directedPath(t)
	g.SetEdgeFilter(func(e *core.Edge) bool { return e.From != "1" })

	a := mustBuild(t, spectral.Adjacency, g, spectral.WithDense())
	assert.Equal(t, [][]float64{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}, toRows(t, a))

	b := mustBuild(t, spectral.Incidence, g, spectral.WithDense())
	assert.Equal(t, [][]float64{{-1}, {1}, {0}}, toRows(t, b))
}
