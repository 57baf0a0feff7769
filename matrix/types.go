// SPDX-License-Identifier: MIT
// Package matrix: the Matrix interface shared by dense and sparse storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Implementations in this package:
//   - *Dense: row-major contiguous storage.
//   - *CSR:   compressed sparse row storage.
//
// Complexity notes: At/Set are O(1) on Dense and O(log nnz(row)) reads /
// O(nnz) inserts on CSR; Clone is a full copy.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
