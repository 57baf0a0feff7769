// Package matrix provides the storage primitives the spectral builders
// assemble into.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) shared by
//     every representation.
//   - Dense, row-major contiguous storage with O(1) access.
//   - CSR, compressed sparse row storage with sorted column indices and
//     no explicit zeros.
//   - Accumulator, a write-only assembly surface (Add / Set) that finalizes
//     into either a Dense or a CSR. The sparse accumulator is list-of-lists:
//     one ordered tree per row, compressed once at the end.
//   - Validators and helpers (ValidateSymmetric, Equal, RowSums,
//     ColumnNonZeros) used to check structural properties of results.
//   - gonum interop (AsGonum, ToGonumDense, FromGonum) for eigen solvers
//     and formatted printing, and ToSparseCSR for github.com/james-bowman/sparse,
//     whose CSR plugs into gonum products without densifying.
//
// Dense is best for small graphs where O(V²) memory is acceptable; CSR keeps
// memory at O(V + nnz) and is the default output of the spectral builders.
//
// Errors are sentinels ("matrix: ...") wrapped with method context such as
// "Dense.At(3,1): matrix: index out of range"; match them with errors.Is.
package matrix
