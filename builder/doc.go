// Package builder provides deterministic topology constructors that populate
// a core.Graph: fixtures for tests, examples and the spectral CLI.
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons...): allocate a core.Graph and run a
//     sequence of Constructors against it.
//   - Constructors: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), SymbolNumberIDFn(prefix) ("v0","v1",…).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn.
//
// Guarantees:
//
//   - Vertices are inserted in index order, so core ordinals follow the
//     constructor's numbering (vertex i sits in row i of a spectral matrix
//     when it is the only constructor).
//   - Edge emission order is fixed per constructor; weights are deterministic
//     for a fixed seed.
//   - Undirected topologies on a directed graph emit both orientations.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters return wrapped sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
package builder
