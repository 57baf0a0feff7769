// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// helpers.go - shared vertex/edge insertion used by every constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spectral/core"
)

// addVertices inserts ids in order, wrapping failures with method.
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %v: %w", method, id, err, ErrConstructFailed)
		}
	}

	return nil
}

// indexIDs returns cfg.idFn(offset) … cfg.idFn(offset+n-1).
func indexIDs(cfg builderConfig, offset, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(offset + i)
	}

	return ids
}

// addEdge inserts from→to. Weighted graphs draw a weight from cfg.weightFn;
// unweighted graphs receive 0.
func addEdge(g *core.Graph, cfg builderConfig, method, from, to string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", method, from, to, err, ErrConstructFailed)
	}

	return nil
}

// addLink inserts an undirected link: one edge on an undirected graph, both
// orientations on a directed one.
func addLink(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if err := addEdge(g, cfg, method, u, v); err != nil {
		return err
	}
	if g.Directed() {
		return addEdge(g, cfg, method, v, u)
	}

	return nil
}

func tooFew(method, param string, got, want int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, want, ErrTooFewVertices)
}
