// SPDX-License-Identifier: MIT
// Package matrix: assembly accumulators.
//
// Purpose:
//   - Give graph builders one write surface (Add / Set) regardless of the
//     output representation, then finalize into a Matrix.
//   - Dense: writes go straight into a *Dense.
//   - Sparse: list-of-lists assembly, one ordered tree per row
//     (column → value), compressed into a *CSR by Matrix().
//
// Concurrency:
//   - Writes to distinct rows never share state, so callers may fill
//     disjoint row ranges from separate goroutines. Writes to the same
//     row must be serialized by the caller. Matrix() must run alone.

package matrix

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// Accumulator collects entries for a rows×cols matrix under construction.
type Accumulator interface {
	// Rows returns the row count of the matrix under construction.
	Rows() int

	// Cols returns the column count of the matrix under construction.
	Cols() int

	// Add performs entry(i,j) += v.
	Add(i, j int, v float64) error

	// Set overwrites entry(i,j) with v.
	Set(i, j int, v float64) error

	// Matrix finalizes and returns the assembled matrix.
	// The accumulator must not be used afterwards.
	Matrix() Matrix
}

// NewAccumulator returns a sparse (CSR-producing) or dense accumulator.
func NewAccumulator(rows, cols int, sparse bool) (Accumulator, error) {
	if sparse {
		return NewSparseAccumulator(rows, cols)
	}

	return NewDenseAccumulator(rows, cols)
}

// denseAccumulator assembles directly into a Dense.
type denseAccumulator struct {
	m *Dense
}

// NewDenseAccumulator returns an accumulator that produces a *Dense.
func NewDenseAccumulator(rows, cols int) (Accumulator, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	return &denseAccumulator{m: m}, nil
}

func (a *denseAccumulator) Rows() int                     { return a.m.r }
func (a *denseAccumulator) Cols() int                     { return a.m.c }
func (a *denseAccumulator) Add(i, j int, v float64) error { return a.m.Add(i, j, v) }
func (a *denseAccumulator) Set(i, j int, v float64) error { return a.m.Set(i, j, v) }
func (a *denseAccumulator) Matrix() Matrix                { return a.m }

// lilAccumulator keeps one red-black tree per row keyed by column index.
type lilAccumulator struct {
	r, c int
	rows []*redblacktree.Tree
}

// NewSparseAccumulator returns an accumulator that produces a *CSR.
//
// Implementation:
//   - Stage 1: Validate dimensions.
//   - Stage 2: Allocate one int-keyed red-black tree per row.
//
// Complexity: O(rows) allocation; each Add/Set is O(log nnz(row)).
func NewSparseAccumulator(rows, cols int) (Accumulator, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	a := &lilAccumulator{r: rows, c: cols, rows: make([]*redblacktree.Tree, rows)}
	for i := range a.rows {
		a.rows[i] = redblacktree.NewWith(utils.IntComparator)
	}

	return a, nil
}

func (a *lilAccumulator) Rows() int { return a.r }
func (a *lilAccumulator) Cols() int { return a.c }

func (a *lilAccumulator) check(method string, i, j int) error {
	if i < 0 || i >= a.r || j < 0 || j >= a.c {
		return fmt.Errorf("Accumulator.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}

	return nil
}

// Add performs entry(i,j) += v.
func (a *lilAccumulator) Add(i, j int, v float64) error {
	if err := a.check(ctxAdd, i, j); err != nil {
		return err
	}
	row := a.rows[i]
	if cur, ok := row.Get(j); ok {
		row.Put(j, cur.(float64)+v)
		return nil
	}
	row.Put(j, v)

	return nil
}

// Set overwrites entry(i,j) with v.
func (a *lilAccumulator) Set(i, j int, v float64) error {
	if err := a.check(ctxSet, i, j); err != nil {
		return err
	}
	a.rows[i].Put(j, v)

	return nil
}

// Matrix compresses the row trees into a CSR, dropping exact zeros
// (cancelled contributions and zero overwrites).
//
// Complexity: O(nnz) since tree iteration is already column-ordered.
func (a *lilAccumulator) Matrix() Matrix {
	nnz := 0
	for _, row := range a.rows {
		nnz += row.Size()
	}
	m := &CSR{
		r:       a.r,
		c:       a.c,
		indptr:  make([]int, a.r+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for i, row := range a.rows {
		it := row.Iterator()
		for it.Next() {
			v := it.Value().(float64)
			if v == 0 {
				continue
			}
			m.indices = append(m.indices, it.Key().(int))
			m.data = append(m.data, v)
		}
		m.indptr[i+1] = len(m.data)
	}
	a.rows = nil

	return m
}
