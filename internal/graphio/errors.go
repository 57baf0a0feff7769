package graphio

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension with no known decoder.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrSyntax indicates input that could not be decoded.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrEdgeOperator indicates "--" in a digraph or "->" in a graph.
	ErrEdgeOperator = errors.New("graphio: edge operator does not match graph kind")
)
