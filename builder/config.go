// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// config.go - resolved builder configuration and its defaults.

package builder

import "math/rand"

// builderConfig is the resolved configuration passed to every Constructor.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn

	// rng drives stochastic constructors and weight functions; nil unless set.
	rng *rand.Rand

	// weightFn yields the weight of each emitted edge on weighted graphs.
	weightFn WeightFn
}

// newBuilderConfig applies opts on top of the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
