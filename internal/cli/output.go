package cli

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/matrix"
)

// writeMatrix prints m: dense matrices through gonum's formatter, sparse ones
// as "(i, j)\tvalue" lines walked off a sparse.CSR. Matrices with a zero
// dimension print their shape.
func writeMatrix(w io.Writer, m matrix.Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		_, err := fmt.Fprintf(w, "(empty %dx%d)\n", m.Rows(), m.Cols())
		return err
	}
	if _, ok := m.(*matrix.CSR); ok {
		sp, err := matrix.ToSparseCSR(m)
		if err != nil {
			return err
		}
		var werr error
		sp.DoNonZero(func(i, j int, v float64) {
			if werr == nil {
				_, werr = fmt.Fprintf(w, "  (%d, %d)\t%g\n", i, j, v)
			}
		})

		return werr
	}

	gd, err := matrix.ToGonumDense(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%v\n", mat.Formatted(gd, mat.Squeeze()))

	return err
}
