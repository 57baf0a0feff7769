// SPDX-License-Identifier: MIT
// Package matrix_test verifies gonum interop.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/matrix"
)

// TestAsGonum exposes a CSR through gonum and checks reads, transpose and panics.
func TestAsGonum(t *testing.T) {
	t.Parallel()
	s := csrFrom(t, [][]float64{{0, 2, 0}, {1, 0, 0}})
	g, err := matrix.AsGonum(s)
	require.NoError(t, err)

	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2.0, g.At(0, 1))
	assert.Equal(t, 1.0, g.T().At(0, 1))
	assert.Panics(t, func() { g.At(5, 0) })

	_, err = matrix.AsGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestToGonumDenseRoundTrip copies into gonum, runs a gonum op, and comes back.
func TestToGonumDenseRoundTrip(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{2, -1}, {-1, 2}}
	gd, err := matrix.ToGonumDense(csrFrom(t, rows))
	require.NoError(t, err)
	assert.True(t, mat.Equal(gd, gd.T()))

	var sum mat.Dense
	sum.Add(gd, gd)
	back, err := matrix.FromGonum(&sum)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, -2}, {-2, 4}}, toRows(t, back))

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	_, err = matrix.ToGonumDense(empty)
	require.ErrorIs(t, err, matrix.ErrEmptyGonum)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestToSparseCSR hands every representation to james-bowman/sparse and
// multiplies through gonum.
func TestToSparseCSR(t *testing.T) {
	t.Parallel()
	rows := [][]float64{
		{1, 0, -1},
		{0, 0, 0},
		{-1, 2, 0},
	}
	tests := []struct {
		name string
		m    matrix.Matrix
	}{
		{"csr", csrFrom(t, rows)},
		{"dense", denseFrom(t, rows)},
		{"hidden", hide{csrFrom(t, rows)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sp, err := matrix.ToSparseCSR(tc.m)
			require.NoError(t, err)

			r, c := sp.Dims()
			assert.Equal(t, 3, r)
			assert.Equal(t, 3, c)
			assert.Equal(t, 4, sp.NNZ())
			back, err := matrix.FromGonum(sp)
			require.NoError(t, err)
			assert.Equal(t, rows, toRows(t, back))

			var gram mat.Dense
			gram.Mul(sp, sp.T())
			assert.Equal(t, 2.0, gram.At(0, 0))
			assert.Equal(t, -1.0, gram.At(0, 2))
			assert.Equal(t, 5.0, gram.At(2, 2))
		})
	}
}

func TestToSparseCSR_NonFiniteAndEdges(t *testing.T) {
	t.Parallel()
	s := csrFrom(t, [][]float64{{math.Inf(-1), 0}, {0, math.NaN()}})
	sp, err := matrix.ToSparseCSR(s)
	require.NoError(t, err)
	assert.Equal(t, 2, sp.NNZ())
	assert.True(t, math.IsInf(sp.At(0, 0), -1))
	assert.True(t, math.IsNaN(sp.At(1, 1)))

	// The copy is detached from the source.
	require.NoError(t, s.Set(0, 1, 7))
	assert.Equal(t, 0.0, sp.At(0, 1))

	noCols, err := matrix.NewCSR(4, 0)
	require.NoError(t, err)
	_, err = matrix.ToSparseCSR(noCols)
	require.ErrorIs(t, err, matrix.ErrEmptyGonum)
	_, err = matrix.ToSparseCSR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
