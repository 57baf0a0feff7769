// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng is required unless p is exactly 0 or 1 (ErrNeedRandSource).
//   - Undirected: each pair i<j is tried once. Directed: each ordered pair
//     i≠j is tried independently. Self-loops are tried only on looped graphs.
//   - Trial order is fixed (row-major), so a fixed seed reproduces the graph.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return tooFew(MethodRandomSparse, "n", n, MinRandomSparseNodes)
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%g not in [%g,%g]: %w", MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p != MinProbability && p != MaxProbability {
			return fmt.Errorf("%s: p=%g: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, MethodRandomSparse, ids); err != nil {
			return err
		}

		hit := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			}

			return cfg.rng.Float64() < p
		}

		directed, looped := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if hit() {
					if err := addEdge(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
			if looped && hit() {
				if err := addEdge(g, cfg, MethodRandomSparse, ids[i], ids[i]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
