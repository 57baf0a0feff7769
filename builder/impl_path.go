// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_path.go - Path(n): vertices 0..n-1, edges (i-1)→i.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - On a directed graph only the forward arcs are emitted, so Path(3)
//     yields the chain 0→1→2.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/spectral/core"

// Path returns a Constructor that builds the path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, "n", n, MinPathNodes)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, MethodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
