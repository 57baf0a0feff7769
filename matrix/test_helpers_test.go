// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type, forcing generic
// (non-*Dense, non-*CSR) code paths in helpers under test.
type hide struct{ matrix.Matrix }

// denseFrom builds a Dense from row slices; all rows must share a length.
func denseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	m, err := matrix.NewDense(len(rows), c)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// csrFrom builds a CSR from row slices via Set.
func csrFrom(t testing.TB, rows [][]float64) *matrix.CSR {
	t.Helper()
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	m, err := matrix.NewCSR(len(rows), c)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

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
