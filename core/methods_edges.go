// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns pairs sorted by (U, V) with U < V.
//
// Validation order (AddEdge/DeleteEdge):
//   - bounds -> self-pair -> presence. The first failing check decides the result.

package core

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}

// checkPair validates u,v for an edge mutation.
// It returns (EdgeOutOfRange|EdgeSelfLoop, false) on failure and
// (EdgeInvalid, true) when the caller may proceed.
func (g *Graph) checkPair(u, v int) (EdgeResult, bool) {
	if !g.inRange(u) || !g.inRange(v) {
		return EdgeOutOfRange, false
	}
	if u == v {
		return EdgeSelfLoop, false
	}

	return EdgeInvalid, true
}

// AddEdge inserts the undirected edge {u,v}.
//
// Returns:
//   - EdgeAdded on success (both [u][v] and [v][u] are set).
//   - EdgeOutOfRange, EdgeSelfLoop or EdgeAlreadyPresent otherwise;
//     the graph is left untouched.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) EdgeResult {
	if res, ok := g.checkPair(u, v); !ok {
		return res
	}
	if g.rows[u].Test(uint(v)) {
		return EdgeAlreadyPresent
	}

	g.rows[u].Set(uint(v))
	g.rows[v].Set(uint(u))

	return EdgeAdded
}

// DeleteEdge removes the undirected edge {u,v}.
//
// Returns EdgeRemoved on success, otherwise EdgeOutOfRange, EdgeSelfLoop
// or EdgeAbsent with no mutation.
//
// Complexity: O(1).
func (g *Graph) DeleteEdge(u, v int) EdgeResult {
	if res, ok := g.checkPair(u, v); !ok {
		return res
	}
	if !g.rows[u].Test(uint(v)) {
		return EdgeAbsent
	}

	g.rows[u].Clear(uint(v))
	g.rows[v].Clear(uint(u))

	return EdgeRemoved
}

// IsEdge reports whether {u,v} is an edge.
// Out-of-range indices and self-pairs report false.
func (g *Graph) IsEdge(u, v int) bool {
	if _, ok := g.checkPair(u, v); !ok {
		return false
	}

	return g.rows[u].Test(uint(v))
}

// NumEdges returns |E|, computed as the degree sum halved.
//
// Complexity: O(N²/64).
func (g *Graph) NumEdges() int {
	var sum uint
	for _, row := range g.rows {
		sum += row.Count()
	}

	return int(sum >> 1)
}

// Edges returns every edge exactly once as {U,V} with U < V,
// sorted lexicographically. The result is freshly allocated.
//
// Complexity: O(N²/64 + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.NumEdges())
	for u, row := range g.rows {
		// Only look above the diagonal so each pair appears once.
		for v, ok := row.NextSet(uint(u + 1)); ok; v, ok = row.NextSet(v + 1) {
			out = append(out, Edge{U: u, V: int(v)})
		}
	}

	return out
}
