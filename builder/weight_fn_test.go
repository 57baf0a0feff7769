package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/spectral/builder"
)

func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.ConstantWeightFn(math.NaN()) })
	assert.Panics(t, func() { builder.ConstantWeightFn(math.Inf(1)) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, math.Inf(1)) })
	assert.NotPanics(t, func() { builder.UniformWeightFn(-1, 1) })
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, -0.5, builder.ConstantWeightFn(-0.5)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 4)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))

	u := builder.UniformWeightFn(3, 4)
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, 3.0)
		assert.Less(t, w, 4.0)
	}
}
