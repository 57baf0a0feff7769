// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/spectral"
)

func TestParseDegreeMode(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"total", "in", "out"} {
		m, err := spectral.ParseDegreeMode(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
		assert.True(t, m.Valid())
	}
	for _, s := range []string{"", "TOTAL", "both"} {
		_, err := spectral.ParseDegreeMode(s)
		assert.ErrorIs(t, err, spectral.ErrInvalidArgument, "input %q", s)
	}
}

func TestDegree(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("a", "b", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "a", 0.5)
	require.NoError(t, err)

	tests := []struct {
		mode spectral.DegreeMode
		w    spectral.WeightFunc
		want float64
	}{
		{spectral.DegreeOut, nil, 2},
		{spectral.DegreeIn, nil, 2},
		{spectral.DegreeTotal, nil, 4}, // loop counted as in and out
		{spectral.DegreeOut, spectral.EdgeWeight, 2.5},
		{spectral.DegreeIn, spectral.EdgeWeight, 3.5},
		{spectral.DegreeTotal, spectral.EdgeWeight, 6},
	}
	for _, tc := range tests {
		got, err := spectral.Degree(g, "a", tc.mode, tc.w)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "mode=%s weighted=%v", tc.mode, tc.w != nil)
	}

	_, err = spectral.Degree(g, "a", "diagonal", nil)
	assert.ErrorIs(t, err, spectral.ErrInvalidArgument)
	_, err = spectral.Degree(g, "missing", spectral.DegreeOut, nil)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = spectral.Degree(nil, "a", spectral.DegreeOut, nil)
	assert.ErrorIs(t, err, spectral.ErrGraphNil)
}

func TestDegree_UndirectedLoopCountsTwice(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("a", "a", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	for _, mode := range []spectral.DegreeMode{spectral.DegreeTotal, spectral.DegreeIn, spectral.DegreeOut} {
		d, err := spectral.Degree(g, "a", mode, nil)
		require.NoError(t, err)
		assert.Equal(t, 3.0, d, mode.String())
	}
}
