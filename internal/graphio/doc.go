// Package graphio loads graphs from files for the spectral CLI.
//
// Two formats are understood:
//
//   - TOML documents (".toml"), decoded with BurntSushi/toml:
//
//     directed = true
//     weighted = true
//     vertices = ["a", "b", "c"]
//
//     [[edges]]
//     from = "a"
//     to = "b"
//     weight = 2.5
//
//     [filter]
//     vertices = ["a", "b"]
//
//     [options]
//     deg = "out"
//     normalized = false
//
//   - Edge lists (".graph", ".gv", ".dot", ".el", ".txt"), parsed with
//     participle:
//
//     digraph demo {
//     # comment
//     a -> b [2.5]; b -> c -> d
//     isolated
//     }
//
//     "graph { ... }" uses "--" instead of "->"; mixing the two is an error.
//     Quoted IDs ("0,1") allow arbitrary characters.
//
// Both formats decode into a Document, which Graph materializes as a
// *core.Graph. Vertex order in the document becomes row order.
package graphio
