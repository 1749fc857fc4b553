// SPDX-License-Identifier: MIT
// File: gonum.go
// Role: gonum/graph interop for core.Graph.
//
// Identity:
//   - Vertex v of core.Graph is gonum node simple.Node(int64(v)).
//
// Determinism:
//   - Nodes() and From() iterate in ascending ID order.

package converters

import (
	"fmt"

	"github.com/ornata/compressed-graph/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

// Undirected is a read-only graph.Undirected view over a core.Graph.
// It holds no copy: later mutations of the core.Graph are visible through it.
type Undirected struct {
	g *core.Graph
}

var _ graph.Undirected = Undirected{}

// NewUndirected wraps g. It returns an error if g is nil.
func NewUndirected(g *core.Graph) (Undirected, error) {
	if g == nil {
		return Undirected{}, fmt.Errorf("NewUndirected: %w", ErrGraphNil)
	}

	return Undirected{g: g}, nil
}

// has reports whether id names a vertex of the wrapped graph.
func (u Undirected) has(id int64) bool {
	return u.g != nil && id >= 0 && id < int64(u.g.NumVertices())
}

// Node returns the node with the given ID, or nil if it does not exist.
func (u Undirected) Node(id int64) graph.Node {
	if !u.has(id) {
		return nil
	}

	return simple.Node(id)
}

// Nodes returns all vertices in ascending order.
func (u Undirected) Nodes() graph.Nodes {
	if u.g == nil || u.g.NumVertices() == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, u.g.NumVertices())
	for i := range nodes {
		nodes[i] = simple.Node(i)
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbours of id in ascending order.
func (u Undirected) From(id int64) graph.Nodes {
	if !u.has(id) {
		return graph.Empty
	}
	nb, err := u.g.Neighbors(int(id))
	if err != nil || len(nb) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(nb))
	for i, v := range nb {
		nodes[i] = simple.Node(v)
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether {xid, yid} is an edge.
func (u Undirected) HasEdgeBetween(xid, yid int64) bool {
	if !u.has(xid) || !u.has(yid) {
		return false
	}

	return u.g.IsEdge(int(xid), int(yid))
}

// Edge returns the edge from uid to vid, or nil.
func (u Undirected) Edge(uid, vid int64) graph.Edge {
	return u.EdgeBetween(uid, vid)
}

// EdgeBetween returns the edge between xid and yid, or nil.
func (u Undirected) EdgeBetween(xid, yid int64) graph.Edge {
	if !u.HasEdgeBetween(xid, yid) {
		return nil
	}

	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}

// ToSimple copies g into a new gonum simple.UndirectedGraph.
// Isolated vertices are kept as nodes.
func ToSimple(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("ToSimple: %w", ErrGraphNil)
	}
	out := simple.NewUndirectedGraph()
	for v := 0; v < g.NumVertices(); v++ {
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return out, nil
}

// FromGraph imports src into a new core.Graph.
// Stage 1 (Validate): every node ID lies in [0, n), n = node count.
// Stage 2 (Execute): add each neighbour pair once (lower ID first).
//
// Errors: ErrGraphNil, ErrNodeID, ErrLoop.
// Complexity: O(V + E).
func FromGraph(src graph.Undirected) (*core.Graph, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrGraphNil)
	}
	ids := graph.NodesOf(src.Nodes())
	n := int64(len(ids))
	for _, node := range ids {
		if id := node.ID(); id < 0 || id >= n {
			return nil, fmt.Errorf("FromGraph: id=%d, n=%d: %w", id, n, ErrNodeID)
		}
	}

	g := core.NewGraph(int(n))
	for _, node := range ids {
		uid := node.ID()
		to := src.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if vid == uid {
				return nil, fmt.Errorf("FromGraph: node %d: %w", uid, ErrLoop)
			}
			if vid < 0 || vid >= n {
				return nil, fmt.Errorf("FromGraph: neighbour id=%d, n=%d: %w", vid, n, ErrNodeID)
			}
			if uid < vid {
				g.AddEdge(int(uid), int(vid))
			}
		}
	}

	return g, nil
}
