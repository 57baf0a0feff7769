// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_wheel.go - Wheel(n): rim Cycle(n-1) plus hub spokes.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); n counts the hub.
//   - Rim vertices come first (ordinals 0..n-2), then CenterVertexID.
//   - Spokes are links: both orientations on directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew(MethodWheel, "n", n, MinWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", MethodWheel, err)
		}
		if err := addVertices(g, MethodWheel, []string{CenterVertexID}); err != nil {
			return err
		}
		for _, rim := range indexIDs(cfg, 0, n-1) {
			if err := addLink(g, cfg, MethodWheel, CenterVertexID, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
