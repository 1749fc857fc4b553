// File: methods_clone.go
// Role: Whole-graph operations: cloning, equality, clearing and complement.
//
// Value semantics:
//   - Clone never shares row storage with its source.
//   - Equal compares vertex count and edge set, nothing else.

package core

import "github.com/bits-and-blooms/bitset"

// Clone returns a deep copy of g.
//
// Complexity: O(N²/64).
func (g *Graph) Clone() *Graph {
	rows := make([]*bitset.BitSet, g.n)
	for i, row := range g.rows {
		rows[i] = row.Clone()
	}

	return &Graph{n: g.n, rows: rows}
}

// Equal reports whether g and o have the same vertex count and edge set.
// A nil graph equals only another nil graph.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i := range g.rows {
		if !g.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// Clear removes every edge; the vertex count is kept.
func (g *Graph) Clear() {
	for _, row := range g.rows {
		row.ClearAll()
	}
}

// Complement replaces g with its complement: every pair of distinct vertices
// that was adjacent becomes non-adjacent and vice versa.
//
// Each row is flipped over [0, N) and its diagonal bit is cleared again,
// so the no-self-loop invariant holds afterwards.
//
// Complexity: O(N²/64).
func (g *Graph) Complement() {
	n := uint(g.n)
	for i, row := range g.rows {
		row.FlipRange(0, n)
		row.Clear(uint(i))
	}
}
