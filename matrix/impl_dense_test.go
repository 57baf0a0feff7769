// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Dimensions ensures negative shapes fail and zero shapes are legal.
func TestNewDense_Dimensions(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	for _, shape := range [][2]int{{0, 0}, {3, 0}, {0, 2}} {
		m, err := matrix.NewDense(shape[0], shape[1])
		require.NoError(t, err)
		r, c := m.Shape()
		assert.Equal(t, shape[0], r)
		assert.Equal(t, shape[1], c)
	}
}

// TestDense_AtSetAdd validates read/write, accumulate and bounds errors.
func TestDense_AtSetAdd(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	require.NoError(t, m.Add(1, 2, 0.5))
	require.NoError(t, m.Add(0, 0, -1))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
	assert.Equal(t, []float64{-1, 0, 0}, m.RawRow(0))
	assert.Nil(t, m.RawRow(5))

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Add(0, 3, 1), matrix.ErrOutOfRange)
	assert.Contains(t, m.Set(2, 0, 1).Error(), "Dense.Set(2,0)")
}

// TestDense_NonFiniteStored verifies NaN/Inf are stored without complaint.
func TestDense_NonFiniteStored(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN()))
	require.NoError(t, m.Set(0, 1, math.Inf(-1)))

	v, _ := m.At(0, 0)
	assert.True(t, math.IsNaN(v))
	v, _ = m.At(0, 1)
	assert.True(t, math.IsInf(v, -1))
}

// TestDense_CloneIndependence ensures Clone is a deep copy.
func TestDense_CloneIndependence(t *testing.T) {
	t.Parallel()
	m := denseFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 100))

	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestDense_DoAndString verifies traversal order, early stop and rendering.
func TestDense_DoAndString(t *testing.T) {
	t.Parallel()
	m := denseFrom(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	assert.Equal(t, []float64{1, 2, 3}, seen)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
