// SPDX-License-Identifier: MIT
// Package spectral: sentinel error set.
//
// Builders wrap these with their own name ("Laplacian: ...: %w"); callers
// match them via errors.Is.
package spectral

import "errors"

var (
	// ErrInvalidArgument indicates an out-of-domain enumerated argument,
	// e.g. a DegreeMode other than total/in/out.
	ErrInvalidArgument = errors.New("spectral: invalid argument")

	// ErrGraphNil indicates a nil graph was passed to a builder.
	ErrGraphNil = errors.New("spectral: graph is nil")

	// ErrUnknownVertex indicates a vertex that the index does not cover.
	ErrUnknownVertex = errors.New("spectral: vertex not in index")

	// ErrUnknownEdge indicates an edge that the edge index does not cover.
	ErrUnknownEdge = errors.New("spectral: edge not in index")
)
