// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_cycle.go - Cycle(n): Path(n) closed by (n-1)→0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Directed graphs get a single oriented ring.

package builder

import "github.com/katalvlaran/spectral/core"

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(MethodCycle, "n", n, MinCycleNodes)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, MethodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
