// SPDX-License-Identifier: MIT

// Package spectral: functional configuration for the matrix builders.
// This file defines:
//   - Option / Options (functional options),
//   - documented defaults (constants),
//   - WithX constructors (panic only on programmer error),
//   - gatherOptions helper resolving options once per call.
//
// Enumerated user input (DegreeMode) is NOT validated here: the Laplacian
// reports ErrInvalidArgument itself so that CLI or config values surface as
// errors rather than panics.
package spectral

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSparse selects CSR output.
	DefaultSparse = true

	// DefaultDegree is the Laplacian degree mode.
	DefaultDegree = DegreeTotal

	// DefaultNormalized selects the normalized Laplacian.
	DefaultNormalized = true

	// DefaultWorkers assembles rows sequentially.
	DefaultWorkers = 1
)

const panicWorkersInvalid = "spectral: WithWorkers: n must be >= 0"

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	// Weight is the edge weight function; nil means unit weights.
	Weight WeightFunc

	// Sparse selects CSR (true) or Dense (false) output.
	Sparse bool

	// Degree is the Laplacian degree mode; ignored by Adjacency and Incidence.
	Degree DegreeMode

	// Normalized selects the normalized Laplacian; ignored elsewhere.
	Normalized bool

	// Workers is the number of goroutines filling disjoint row ranges.
	Workers int
}

// WithWeight sets the edge weight function. A nil fn restores unit weights.
// Incidence ignores weights.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) { o.Weight = fn }
}

// WithEdgeWeights uses the stored core.Edge.Weight of every edge.
func WithEdgeWeights() Option {
	return WithWeight(EdgeWeight)
}

// WithSparse selects compressed sparse row output (the default).
func WithSparse() Option {
	return func(o *Options) { o.Sparse = true }
}

// WithDense selects dense row-major output.
func WithDense() Option {
	return func(o *Options) { o.Sparse = false }
}

// WithDegree sets the Laplacian degree mode. Unknown modes are reported by
// Laplacian as ErrInvalidArgument.
func WithDegree(mode DegreeMode) Option {
	return func(o *Options) { o.Degree = mode }
}

// WithNormalized toggles the normalized Laplacian.
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithWorkers sets the number of goroutines used to fill rows.
// n == 0 means runtime.GOMAXPROCS(0). Panics when n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return func(o *Options) { o.Workers = n }
}

// NewOptions resolves opts on top of the defaults. Exposed for callers that
// want to inspect the effective configuration (e.g. for logging).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		Sparse:     DefaultSparse,
		Degree:     DefaultDegree,
		Normalized: DefaultNormalized,
		Workers:    DefaultWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
