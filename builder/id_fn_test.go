package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spectral/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "42", builder.DefaultIDFn(42))

	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.SymbolIDFn(-1) })

	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), "idx=%d", idx)
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	fn := builder.SymbolNumberIDFn("n")
	assert.Equal(t, "n7", fn(7))
	assert.Panics(t, func() { fn(-1) })
}
