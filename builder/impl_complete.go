// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_complete.go - Complete(n): every unordered pair {i<j} linked once.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Directed graphs get both i→j and j→i.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/spectral/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew(MethodComplete, "n", n, MinCompleteNodes)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, MethodComplete, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addLink(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
