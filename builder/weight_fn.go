// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// weight_fn.go - edge-weight distributions. Weights are only attached when
// the target graph is weighted; unweighted graphs always receive 0.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn yields an edge weight. It must be deterministic for a fixed RNG
// state; rng may be nil.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics on NaN or ±Inf; core rejects non-finite weights.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [lo, hi). With a nil rng it falls back
// to DefaultEdgeWeight. Panics if lo > hi or either bound is not finite.
func UniformWeightFn(lo, hi float64) WeightFn {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic(fmt.Sprintf("UniformWeightFn: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if lo == hi {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}
