// SPDX-License-Identifier: MIT
// Package matrix: interop with gonum.org/v1/gonum/mat.
//
// Downstream spectral work (eigen-decomposition, factorization, pretty
// printing) lives in gonum; these adapters hand our matrices over without
// reimplementing any of it here.

package matrix

import (
	"errors"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyGonum is returned when a zero-sized matrix is converted into a
// gonum *mat.Dense or a sparse.CSR, neither of which represents empty shapes.
var ErrEmptyGonum = errors.New("matrix: gonum Dense cannot be empty")

// gonumView exposes any Matrix as a read-only gonum mat.Matrix.
type gonumView struct {
	m Matrix
}

var _ mat.Matrix = gonumView{}

// Dims returns the dimensions of the underlying matrix.
func (v gonumView) Dims() (r, c int) { return v.m.Rows(), v.m.Cols() }

// At returns the element at (i, j). Out-of-range indices panic with
// mat.ErrIndexOutOfRange, following gonum's convention.
func (v gonumView) At(i, j int) float64 {
	x, err := v.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return x
}

// T returns the implicit transpose.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// AsGonum returns a zero-copy gonum view of m. Reads go through m.At.
func AsGonum(m Matrix) (mat.Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsGonum", err)
	}

	return gonumView{m: m}, nil
}

// ToGonumDense copies m into a new gonum *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrEmptyGonum when m has zero rows or columns.
func ToGonumDense(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonumDense", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf("ToGonumDense", ErrEmptyGonum)
	}
	d, err := ToDense(m)
	if err != nil {
		return nil, matrixErrorf("ToGonumDense", err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = src.At(i, j)
		}
	}

	return d, nil
}

// ToSparseCSR copies m into a github.com/james-bowman/sparse *CSR. The result
// implements mat.Matrix, so gonum products accept it without densifying.
// Stored entries keep their row-major order; NaN and ±Inf are carried over.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrEmptyGonum when m has zero rows or columns.
func ToSparseCSR(m Matrix) (*sparse.CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToSparseCSR", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf("ToSparseCSR", ErrEmptyGonum)
	}

	if s, ok := m.(*CSR); ok {
		return sparse.NewCSR(r, c,
			append([]int(nil), s.indptr...),
			append([]int(nil), s.indices...),
			append([]float64(nil), s.data...)), nil
	}

	ia := make([]int, r+1)
	var ja []int
	var data []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToSparseCSR", err)
			}
			if v != 0 {
				ja = append(ja, j)
				data = append(data, v)
			}
		}
		ia[i+1] = len(ja)
	}

	return sparse.NewCSR(r, c, ia, ja, data), nil
}
