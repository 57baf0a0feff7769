package graphio

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// DecodeTOML reads a TOML graph document. Unknown keys are rejected so that
// typos ("wieght") do not silently drop data.
func DecodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrSyntax, strings.Join(keys, ", "))
	}

	return &doc, nil
}
