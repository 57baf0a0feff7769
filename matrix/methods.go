// SPDX-License-Identifier: MIT
// Package matrix: representation-agnostic helpers over the Matrix interface.
//
// These work on any Matrix (Dense, CSR, or foreign implementations) by
// walking At(i,j); CSR inputs take a stored-entries fast path where the
// result only depends on non-zeros.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether a and b have the same shape and entrywise
// |a-b| <= eps. NaN matches NaN and an infinity matches the same-signed
// infinity, so builders that propagate non-finite values can still be
// compared across representations.
func Equal(a, b Matrix, eps float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		if isNil(a) || isNil(b) {
			return false, matrixErrorf("Equal", err)
		}
		return false, nil
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false, matrixErrorf("Equal", ErrBadTolerance)
	}

	var x, y float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, _ = a.At(i, j)
			y, _ = b.At(i, j)
			if !closeEnough(x, y, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

func closeEnough(x, y, eps float64) bool {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.IsNaN(x) && math.IsNaN(y)
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return x == y
	}

	return math.Abs(x-y) <= eps
}

// ToDense returns m as a *Dense (m itself if it already is one).
func ToDense(m Matrix) (*Dense, error) {
	switch t := m.(type) {
	case *Dense:
		if t == nil {
			return nil, matrixErrorf("ToDense", ErrNilMatrix)
		}
		return t, nil
	case *CSR:
		if t == nil {
			return nil, matrixErrorf("ToDense", ErrNilMatrix)
		}
		return t.ToDense(), nil
	case nil:
		return nil, matrixErrorf("ToDense", ErrNilMatrix)
	}

	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("ToDense", err)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToDense", err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// RowSums returns Σ_j m[i,j] for every row i.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	sums := make([]float64, m.Rows())
	visitNonZero(m, func(i, _ int, v float64) { sums[i] += v })

	return sums, nil
}

// ColSums returns Σ_i m[i,j] for every column j.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	sums := make([]float64, m.Cols())
	visitNonZero(m, func(_, j int, v float64) { sums[j] += v })

	return sums, nil
}

// ColumnNonZeros returns the number of non-zero entries in every column.
func ColumnNonZeros(m Matrix) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColumnNonZeros", err)
	}
	counts := make([]int, m.Cols())
	visitNonZero(m, func(_, j int, _ float64) { counts[j]++ })

	return counts, nil
}

// visitNonZero calls f for every non-zero entry in row-major order.
func visitNonZero(m Matrix, f func(i, j int, v float64)) {
	if s, ok := m.(*CSR); ok {
		s.Do(func(i, j int, v float64) bool {
			f(i, j, v)
			return true
		})
		return
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, _ = m.At(i, j); v != 0 {
				f(i, j, v)
			}
		}
	}
}
