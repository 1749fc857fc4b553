// File: methods_vertices.go
// Role: Per-vertex queries (degree, isolation, neighbours) and whole-graph counts.
//
// Determinism:
//   - Neighbors() returns indices in ascending order.
//
// Out-of-range policy:
//   - Degree -> DegreeOutOfRange, IsIsolated -> IsolationOutOfRange,
//     Neighbors -> ErrVertexOutOfRange. None of them panic.

package core

import "fmt"

// NumVertices returns the fixed vertex count N.
func (g *Graph) NumVertices() int {
	return g.n
}

// Degree returns the number of edges incident to v, or DegreeOutOfRange
// when v is outside [0, N).
//
// Complexity: O(N/64).
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return DegreeOutOfRange
	}

	return int(g.rows[v].Count())
}

// IsIsolated reports whether v has no neighbours.
// Callers must branch on all three Isolation values.
func (g *Graph) IsIsolated(v int) Isolation {
	if !g.inRange(v) {
		return IsolationOutOfRange
	}
	if g.rows[v].None() {
		return Isolated
	}

	return NotIsolated
}

// Neighbors returns the neighbours of v in ascending order.
//
// Errors:
//   - ErrVertexOutOfRange if v is outside [0, N).
//
// Complexity: O(N/64 + deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if !g.inRange(v) {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", v, g.n, ErrVertexOutOfRange)
	}

	row := g.rows[v]
	out := make([]int, 0, row.Count())
	for u, ok := row.NextSet(0); ok; u, ok = row.NextSet(u + 1) {
		out = append(out, int(u))
	}

	return out, nil
}

// DegreeSequence returns Degree(v) for v = 0..N-1.
func (g *Graph) DegreeSequence() []int {
	out := make([]int, g.n)
	for v, row := range g.rows {
		out[v] = int(row.Count())
	}

	return out
}

// IsolatedVertices returns every vertex of degree zero, ascending.
func (g *Graph) IsolatedVertices() []int {
	var out []int
	for v, row := range g.rows {
		if row.None() {
			out = append(out, v)
		}
	}

	return out
}

// Density returns |E| / (N(N-1)/2), or 0 when N < 2.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}
	pairs := g.n * (g.n - 1) / 2

	return float64(g.NumEdges()) / float64(pairs)
}

// IsComplete reports whether every pair of distinct vertices is adjacent.
// Graphs on 0 or 1 vertices are complete.
func (g *Graph) IsComplete() bool {
	want := uint(g.n - 1)
	for _, row := range g.rows {
		if row.Count() != want {
			return false
		}
	}

	return true
}
