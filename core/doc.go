// Package core provides a fixed-size, bit-packed undirected Graph.
//
// The Graph G = (V,E) stores its adjacency matrix as one bit per vertex pair:
//
//   - V = {0, 1, ..., N-1} is fixed when the graph is created (NewGraph(n)).
//   - Row v is a bitset of width N; bit u of row v is set iff {u,v} ∈ E.
//   - Rows are kept symmetric (bit u of row v == bit v of row u).
//   - The diagonal is always clear: self-loops are rejected, never stored.
//
// Why use core.Graph?
//
//   - Compact: N² bits instead of per-edge allocations, so a 256-vertex graph
//     fits in 8 KiB.
//   - Fast queries: edge tests are a single bit probe, degrees a popcount.
//   - Cheap whole-graph transforms: Complement flips every row word by word.
//   - Value semantics: Clone returns an independent deep copy, Equal compares
//     edge sets.
//
// Core Methods:
//
//	// Mutation
//	AddEdge(u, v int) EdgeResult      // O(1)
//	DeleteEdge(u, v int) EdgeResult   // O(1)
//	Complement()                      // O(N²/64)
//	Clear()                           // O(N²/64)
//
//	// Queries
//	IsEdge(u, v int) bool             // O(1)
//	Degree(v int) int                 // O(N/64)
//	IsIsolated(v int) Isolation       // O(N/64)
//	Neighbors(v int) ([]int, error)   // O(N)
//	Edges() []Edge                    // O(N²/64 + E)
//	NumEdges() int                    // O(N²/64)
//	NumVertices() int                 // O(1)
//
//	// Diagnostics
//	Print(w io.Writer) error          // one "(i): <row>" line per vertex
//
// Failure reporting:
//
// Index and edge failures never panic. AddEdge and DeleteEdge return an
// EdgeResult that tells "added", "already present", "self-loop" and
// "out of range" apart; EdgeResult.OK gives the plain boolean and
// EdgeResult.Err maps failures onto the package sentinels for errors.Is.
// Degree returns DegreeOutOfRange (-1) and IsIsolated returns
// IsolationOutOfRange for an index outside [0, N).
//
// Concurrency:
//
// A Graph is not safe for concurrent mutation. Callers sharing one across
// goroutines guard it with a single sync.Mutex (or RWMutex for read-mostly use).
package core
