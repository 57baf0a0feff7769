package graphio

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	kindDigraph = "digraph"
	kindGraph   = "graph"

	opDirected   = "->"
	opUndirected = "--"
)

type edgeListAST struct {
	Kind  string     `@("digraph" | "graph")`
	Name  string     `@(Ident | String)?`
	Stmts []*stmtAST `"{" ( @@ ";"? )* "}"`
}

// stmtAST is a bare vertex or a chain "a -> b [w] -> c".
type stmtAST struct {
	Pos  lexer.Position
	From string    `@(Ident | Number | String)`
	Hops []*hopAST `@@*`
}

type hopAST struct {
	Pos    lexer.Position
	Op     string     `@Arrow`
	To     string     `@(Ident | Number | String)`
	Weight *weightAST `@@?`
}

type weightAST struct {
	Value float64 `"[" @Number "]"`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Arrow", Pattern: `->|--`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.]*`},
	{Name: "Punct", Pattern: `[{}\[\];]`},
})

var edgeListParser = participle.MustBuild[edgeListAST](
	participle.Lexer(edgeListLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

// DecodeEdgeList parses the edge-list format. Vertices are ordered by first
// appearance. Parallel edges and self-loops are allowed; the document is
// weighted as soon as one edge carries a weight.
func DecodeEdgeList(name string, r io.Reader) (*Document, error) {
	ast, err := edgeListParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	doc := &Document{Directed: ast.Kind == kindDigraph, Multi: true, Loops: true}
	want := opUndirected
	if doc.Directed {
		want = opDirected
	}

	seen := make(map[string]bool)
	addVertex := func(id string) {
		if !seen[id] {
			seen[id] = true
			doc.Vertices = append(doc.Vertices, id)
		}
	}
	for _, st := range ast.Stmts {
		addVertex(st.From)
		from := st.From
		for _, hop := range st.Hops {
			if hop.Op != want {
				return nil, fmt.Errorf("%w: %s: %q in %s", ErrEdgeOperator, hop.Pos, hop.Op, ast.Kind)
			}
			addVertex(hop.To)
			e := EdgeSpec{From: from, To: hop.To}
			if hop.Weight != nil {
				e.Weight = hop.Weight.Value
				doc.Weighted = true
			}
			doc.Edges = append(doc.Edges, e)
			from = hop.To
		}
	}

	return doc, nil
}
