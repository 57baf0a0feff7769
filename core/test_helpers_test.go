// Package core_test contains shared fixtures for core.Graph tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/spectral/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// NewGraphFull returns a graph with weights, multi-edges and loops enabled.
func NewGraphFull(opts ...core.GraphOption) *core.Graph {
	base := []core.GraphOption{core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()}

	return core.NewGraph(append(base, opts...)...)
}

// mustEdge adds from→to with weight w and fails the test on error.
func mustEdge(t testing.TB, g *core.Graph, from, to string, w float64) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, w)
	require.NoError(t, err, "AddEdge(%s,%s,%v)", from, to, w)

	return eid
}

// edgeIDs projects edges onto their IDs.
func edgeIDs(es []*core.Edge) []string {
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.ID
	}

	return ids
}
