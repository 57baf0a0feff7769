// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbour lattice with "r,c" IDs.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices in row-major order; IDs ignore cfg.idFn.
//   - Edges: right neighbour then down neighbour per cell; links on
//     directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim {
			return tooFew(MethodGrid, "rows", rows, MinGridDim)
		}
		if cols < MinGridDim {
			return tooFew(MethodGrid, "cols", cols, MinGridDim)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		ids := make([]string, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids = append(ids, id(r, c))
			}
		}
		if err := addVertices(g, MethodGrid, ids); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addLink(g, cfg, MethodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLink(g, cfg, MethodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
