// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One canonical home for shape/nil/symmetry checks.
//   - Return sentinels wrapped with the validator name so call sites can
//     match them via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - Symmetry check scans the strict upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is nil, including typed-nil *Dense / *CSR.
func isNil(m Matrix) bool {
	switch t := m.(type) {
	case nil:
		return true
	case *Dense:
		return t == nil
	case *CSR:
		return t == nil
	}

	return false
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures both matrices are non-nil and share dimensions.
func ValidateSameShape(a, b Matrix) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| <= tol for all i<j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare on structural issues.
//   - ErrBadTolerance when tol is NaN/Inf.
//   - ErrAsymmetry on the first violating pair.
//
// Complexity: O(n²) reads.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrBadTolerance)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("A[%d,%d]=%g vs A[%d,%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}
