// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// constants.go - method tags, size minima and fixed IDs shared by constructors.

package builder

// Method tags used as error context prefixes.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes per constructor.
const (
	MinPathNodes         = 2
	MinCycleNodes        = 3
	MinStarNodes         = 2
	MinWheelNodes        = 4 // rim cycle needs ≥ 3
	MinCompleteNodes     = 1
	MinGridDim           = 1
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

// gridIDFmt is the "r,c" coordinate ID scheme of Grid.
const gridIDFmt = "%d,%d"
