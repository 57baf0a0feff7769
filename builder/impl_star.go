// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_star.go - Star(n): hub CenterVertexID plus n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n counts the hub.
//   - The hub is inserted first (ordinal 0), leaves follow as idFn(0..n-2).
//   - Directed graphs receive both hub→leaf and leaf→hub.

package builder

import "github.com/katalvlaran/spectral/core"

// Star returns a Constructor that builds the star S_n.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, "n", n, MinStarNodes)
		}
		leaves := indexIDs(cfg, 0, n-1)
		if err := addVertices(g, MethodStar, append([]string{CenterVertexID}, leaves...)); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := addLink(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
