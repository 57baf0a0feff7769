package graphio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/internal/graphio"
)

const sampleTOML = `
directed = true
weighted = true
vertices = ["a", "b", "c", "iso"]

[[edges]]
from = "a"
to = "b"
weight = 2.5

[[edges]]
from = "b"
to = "c"

[filter]
vertices = ["a", "b", "c"]

[options]
deg = "out"
normalized = false
`

func TestDecodeTOML(t *testing.T) {
	t.Parallel()
	doc, err := graphio.DecodeTOML(strings.NewReader(sampleTOML))
	require.NoError(t, err)

	assert.True(t, doc.Directed)
	assert.True(t, doc.Weighted)
	assert.Equal(t, []string{"a", "b", "c", "iso"}, doc.Vertices)
	assert.Equal(t, []graphio.EdgeSpec{{From: "a", To: "b", Weight: 2.5}, {From: "b", To: "c"}}, doc.Edges)
	assert.Equal(t, "out", doc.Options.Deg)
	require.NotNil(t, doc.Options.Normalized)
	assert.False(t, *doc.Options.Normalized)
	assert.Nil(t, doc.Options.Sparse)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.True(t, g.HasVertexFilter())
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestDecodeTOML_Errors(t *testing.T) {
	t.Parallel()

	_, err := graphio.DecodeTOML(strings.NewReader(`directed = `))
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	_, err = graphio.DecodeTOML(strings.NewReader("[[edges]]\nfrom = \"a\"\nto = \"b\"\nwieght = 1\n"))
	require.ErrorIs(t, err, graphio.ErrSyntax)
	assert.Contains(t, err.Error(), "wieght")
}

func TestDocumentGraph_Errors(t *testing.T) {
	t.Parallel()

	unweighted := &graphio.Document{Edges: []graphio.EdgeSpec{{From: "a", To: "b", Weight: 3}}}
	_, err := unweighted.Graph()
	assert.ErrorIs(t, err, core.ErrBadWeight)

	loop := &graphio.Document{Edges: []graphio.EdgeSpec{{From: "a", To: "a"}}}
	_, err = loop.Graph()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	filter := &graphio.Document{Vertices: []string{"a"}, Filter: graphio.FilterSpec{Vertices: []string{"z"}}}
	_, err = filter.Graph()
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDecodeEdgeList(t *testing.T) {
	t.Parallel()
	src := `
digraph demo {
  # chain with one weighted hop
  a -> b [2.5]; b -> c -> "d,1"
  0 -> a
  lonely
}`
	doc, err := graphio.DecodeEdgeList("demo.graph", strings.NewReader(src))
	require.NoError(t, err)

	assert.True(t, doc.Directed)
	assert.True(t, doc.Weighted)
	assert.Equal(t, []string{"a", "b", "c", "d,1", "0", "lonely"}, doc.Vertices)
	assert.Equal(t, []graphio.EdgeSpec{
		{From: "a", To: "b", Weight: 2.5},
		{From: "b", To: "c"},
		{From: "c", To: "d,1"},
		{From: "0", To: "a"},
	}, doc.Edges)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestDecodeEdgeList_UndirectedMultiAndLoops(t *testing.T) {
	t.Parallel()
	doc, err := graphio.DecodeEdgeList("u", strings.NewReader("graph { a -- b; a -- b; b -- b }"))
	require.NoError(t, err)
	assert.False(t, doc.Directed)
	assert.False(t, doc.Weighted)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestDecodeEdgeList_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"arrow in graph", "graph { a -> b }", graphio.ErrEdgeOperator},
		{"dashes in digraph", "digraph { a -- b }", graphio.ErrEdgeOperator},
		{"missing brace", "digraph { a -> b", graphio.ErrSyntax},
		{"bad header", "tree { a }", graphio.ErrSyntax},
		{"dangling arrow", "digraph { a -> }", graphio.ErrSyntax},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graphio.DecodeEdgeList(tc.name, strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "g.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte(sampleTOML), 0o600))
	doc, err := graphio.Load(tomlPath)
	require.NoError(t, err)
	assert.True(t, doc.Directed)

	elPath := filepath.Join(dir, "g.graph")
	require.NoError(t, os.WriteFile(elPath, []byte("graph { x -- y }"), 0o600))
	doc, err = graphio.Load(elPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, doc.Vertices)

	_, err = graphio.Load(filepath.Join(dir, "g.json"))
	assert.ErrorIs(t, err, graphio.ErrUnsupportedFormat)

	_, err = graphio.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = graphio.Decode("x", strings.NewReader(""), graphio.Format("yaml"))
	assert.ErrorIs(t, err, graphio.ErrUnsupportedFormat)
}
