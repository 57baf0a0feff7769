// SPDX-License-Identifier: MIT
// Package matrix: CSR (compressed sparse row) implementation.
//
// Layout:
//   - indptr has r+1 entries; row i owns indices/data in [indptr[i], indptr[i+1]).
//   - Column indices within a row are strictly increasing.
//   - Exact zeros are never stored; NaN and ±Inf are stored like any non-zero.
//
// Complexity:
//   - At: O(log nnz(row)) by binary search.
//   - Set: O(log nnz(row)) to update, O(nnz) to insert or delete (slices shift).

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// csrErrorf wraps err with method name and coordinates.
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is a compressed sparse row matrix.
type CSR struct {
	r, c    int
	indptr  []int
	indices []int
	data    []float64
}

var (
	_ Matrix       = (*CSR)(nil)
	_ fmt.Stringer = (*CSR)(nil)
)

// NewCSR returns an all-zero rows×cols sparse matrix.
func NewCSR(rows, cols int) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &CSR{r: rows, c: cols, indptr: make([]int, rows+1)}, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.c }

// NNZ returns the number of stored (non-zero) entries.
func (m *CSR) NNZ() int { return len(m.data) }

// find locates (row,col) in storage. It returns the position where the entry
// is or would be inserted, and whether it is present.
func (m *CSR) find(row, col int) (int, bool) {
	lo, hi := m.indptr[row], m.indptr[row+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], col)

	return k, k < hi && m.indices[k] == col
}

func (m *CSR) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the element at (row, col); absent entries read as 0.
func (m *CSR) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, csrErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	if k, ok := m.find(row, col); ok {
		return m.data[k], nil
	}

	return 0, nil
}

// Set overwrites (row, col). Writing 0 removes a stored entry.
//
// Implementation:
//   - Stage 1: Validate bounds.
//   - Stage 2: Binary-search the row span.
//   - Stage 3: Update in place, delete (v == 0) or insert and shift indptr.
func (m *CSR) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return csrErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	k, ok := m.find(row, col)
	switch {
	case ok && v != 0:
		m.data[k] = v
		return nil
	case ok: // v == 0: drop the stored entry
		m.indices = append(m.indices[:k], m.indices[k+1:]...)
		m.data = append(m.data[:k], m.data[k+1:]...)
		m.shiftIndptr(row, -1)
		return nil
	case v == 0:
		return nil
	}

	m.indices = append(m.indices, 0)
	copy(m.indices[k+1:], m.indices[k:])
	m.indices[k] = col
	m.data = append(m.data, 0)
	copy(m.data[k+1:], m.data[k:])
	m.data[k] = v
	m.shiftIndptr(row, +1)

	return nil
}

// shiftIndptr adds delta to every row boundary after row.
func (m *CSR) shiftIndptr(row, delta int) {
	for i := row + 1; i <= m.r; i++ {
		m.indptr[i] += delta
	}
}

// Clone returns a deep copy.
func (m *CSR) Clone() Matrix {
	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
		data:    append([]float64(nil), m.data...),
	}
}

// Row returns copies of the column indices and values stored in row i.
func (m *CSR) Row(i int) (cols []int, vals []float64) {
	if i < 0 || i >= m.r {
		return nil, nil
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return append([]int(nil), m.indices[lo:hi]...), append([]float64(nil), m.data[lo:hi]...)
}

// Do visits every stored entry in row-major order; it stops when f returns false.
func (m *CSR) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if !f(i, m.indices[k], m.data[k]) {
				return
			}
		}
	}
}

// ToDense expands m into a freshly allocated Dense.
func (m *CSR) ToDense() *Dense {
	d := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	m.Do(func(i, j int, v float64) bool {
		d.data[i*m.c+j] = v
		return true
	})

	return d
}

// String renders stored entries as "(i, j)\tv" lines, one per entry.
func (m *CSR) String() string {
	var b strings.Builder
	m.Do(func(i, j int, v float64) bool {
		fmt.Fprintf(&b, "  (%d, %d)\t%g\n", i, j, v)
		return true
	})

	return b.String()
}
