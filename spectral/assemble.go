// SPDX-License-Identifier: MIT
// Package spectral: row-parallel assembly driver.
//
// Every builder writes only into the row of the vertex it is visiting, so
// splitting the vertex list into contiguous chunks gives each goroutine a
// disjoint set of rows in the accumulator.

package spectral

import (
	"golang.org/x/sync/errgroup"
)

// forEachVertex runs visit(row, id) for every indexed vertex, using up to
// workers goroutines over contiguous row ranges. The first error wins.
func forEachVertex(idx *VertexIndex, workers int, visit func(row int, id string) error) error {
	n := len(idx.ids)
	if workers <= 1 || n < 2 {
		return visitRange(idx, 0, n, visit)
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error { return visitRange(idx, lo, hi, visit) })
	}

	return eg.Wait()
}

// visitRange visits positions [lo, hi) of the index enumeration. The row
// passed to visit is resolved through the index so that both the native
// and the rebuilt path agree.
func visitRange(idx *VertexIndex, lo, hi int, visit func(row int, id string) error) error {
	for _, id := range idx.ids[lo:hi] {
		row, err := idx.Of(id)
		if err != nil {
			return err
		}
		if err = visit(row, id); err != nil {
			return err
		}
	}

	return nil
}
