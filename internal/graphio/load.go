package graphio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format names a supported input format.
type Format string

const (
	FormatTOML     Format = "toml"
	FormatEdgeList Format = "edgelist"
)

var extFormats = map[string]Format{
	".toml":  FormatTOML,
	".graph": FormatEdgeList,
	".gv":    FormatEdgeList,
	".dot":   FormatEdgeList,
	".el":    FormatEdgeList,
	".txt":   FormatEdgeList,
}

// FormatOf picks the format from the extension of path (case-insensitive).
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Decode reads a Document in format f from r; name labels error positions.
func Decode(name string, r io.Reader, f Format) (*Document, error) {
	switch f {
	case FormatTOML:
		return DecodeTOML(r)
	case FormatEdgeList:
		return DecodeEdgeList(name, r)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// Load opens path and decodes it according to its extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	doc, err := Decode(filepath.Base(path), fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
