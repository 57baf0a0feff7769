// SPDX-License-Identifier: MIT
package spectral_test

import (
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/spectral"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomSparse(400, 0.02))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkAdjacency_Sparse(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.Adjacency(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdjacency_Dense(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.Adjacency(g, spectral.WithDense()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLaplacian_Workers(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.Laplacian(g, spectral.WithWorkers(0)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIncidence_Sparse(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectral.Incidence(g); err != nil {
			b.Fatal(err)
		}
	}
}
