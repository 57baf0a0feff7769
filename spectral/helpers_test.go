// SPDX-License-Identifier: MIT
// Package spectral_test: shared fixtures and assertions.

package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
)

// eps is the tolerance for normalized (irrational) entries.
const eps = 1e-12

// builderFn is the common signature of Adjacency, Laplacian and Incidence.
type builderFn func(spectral.Graph, ...spectral.Option) (matrix.Matrix, error)

// toRows reads any Matrix back into row slices.
func toRows(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// directedPath returns 0→1→2.
func directedPath(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

// mustBuild runs fn and fails the test on error.
func mustBuild(t testing.TB, fn builderFn, g spectral.Graph, opts ...spectral.Option) matrix.Matrix {
	t.Helper()
	m, err := fn(g, opts...)
	require.NoError(t, err)

	return m
}

// requireSameMatrix asserts shape and entrywise equality within eps.
func requireSameMatrix(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(want, got, eps)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", toRows(t, want), toRows(t, got))
}
