// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/spectral"
)

func TestIndexVertices_NativeAndRebuilt(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(id))
	}

	native, err := spectral.IndexVertices(g)
	require.NoError(t, err)
	assert.True(t, native.Native())
	assert.Equal(t, 4, native.Len())
	row, err := native.Of("c")
	require.NoError(t, err)
	assert.Equal(t, 2, row)

	g.SetVertexFilter(core.KeepVertices("b", "d"))
	rebuilt, err := spectral.IndexVertices(g)
	require.NoError(t, err)
	assert.False(t, rebuilt.Native())
	assert.Equal(t, []string{"b", "d"}, rebuilt.IDs())
	row, err = rebuilt.Of("d")
	require.NoError(t, err)
	assert.Equal(t, 1, row)

	_, err = rebuilt.Of("a")
	assert.ErrorIs(t, err, spectral.ErrUnknownVertex)
	_, err = native.Of("zz")
	assert.ErrorIs(t, err, spectral.ErrUnknownVertex)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIndexVertices_IDsIsCopy(t *testing.T) {
	t.Parallel()
	idx, err := spectral.IndexVertices(directedPath(t))
	require.NoError(t, err)
	ids := idx.IDs()
	ids[0] = "mutated"
	assert.Equal(t, []string{"0", "1", "2"}, idx.IDs())
}

func TestIndexEdges(t *testing.T) {
	t.Parallel()
	g := directedPath(t)
	idx, err := spectral.IndexEdges(g)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	for j, e := range idx.Edges() {
		col, err := idx.Of(e.ID)
		require.NoError(t, err)
		assert.Equal(t, j, col)
	}
	_, err = idx.Of("nope")
	assert.ErrorIs(t, err, spectral.ErrUnknownEdge)

	_, err = spectral.IndexEdges(nil)
	assert.ErrorIs(t, err, spectral.ErrGraphNil)
}
