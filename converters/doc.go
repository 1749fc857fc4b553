// Package converters provides two-way adapters between core.Graph and
// gonum/graph.
//
//   - Undirected: a zero-copy, read-only graph.Undirected view of a core.Graph
//     (node IDs are vertex indices 0..N-1), so gonum algorithms (topo, path,
//     community, ...) can run directly over the bit-packed storage.
//   - ToSimple: materialize a gonum simple.UndirectedGraph.
//   - FromGraph: import any gonum graph.Undirected whose node IDs are 0..N-1.
//
// The adapters never mutate their source.
package converters
