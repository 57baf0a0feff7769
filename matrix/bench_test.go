// Package matrix_test provides benchmarks for dense and sparse assembly.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

// benchAssemble writes a banded pattern (3 entries per row) into an accumulator.
func benchAssemble(b *testing.B, sparse bool) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for it := 0; it < b.N; it++ {
				acc, err := matrix.NewAccumulator(n, n, sparse)
				if err != nil {
					b.Fatal(err)
				}
				for i := 0; i < n; i++ {
					_ = acc.Add(i, i, 2)
					_ = acc.Add(i, (i+1)%n, -1)
					_ = acc.Add(i, (i+n-1)%n, -1)
				}
				sinkM = acc.Matrix()
			}
		})
	}
}

func BenchmarkAssembleDense(b *testing.B)  { benchAssemble(b, false) }
func BenchmarkAssembleSparse(b *testing.B) { benchAssemble(b, true) }

// BenchmarkCSRAt measures random-access reads against a banded CSR.
func BenchmarkCSRAt(b *testing.B) {
	const n = 2048
	acc, _ := matrix.NewSparseAccumulator(n, n)
	for i := 0; i < n; i++ {
		_ = acc.Add(i, i, 2)
		_ = acc.Add(i, (i+1)%n, -1)
	}
	m := acc.Matrix()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF, _ = m.At(i%n, (i+1)%n)
	}
}
