// SPDX-License-Identifier: MIT
// Package core defines the bit-packed Graph, its result types, the sentinel
// errors and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index outside [0, N).
//	ErrLoopNotAllowed   - u == v in an edge operation.
//	ErrEdgeExists       - AddEdge on an edge that is already present.
//	ErrEdgeNotFound     - DeleteEdge on an edge that is absent.
//	ErrInvalidResult    - Err on an EdgeResult no operation produced.
package core

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, N).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates an edge operation on a self-pair (u == v).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates AddEdge was called for an edge already present.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates DeleteEdge was called for an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidResult indicates an EdgeResult that no operation returned,
	// such as the zero value.
	ErrInvalidResult = errors.New("core: invalid edge result")
)

// DegreeOutOfRange is returned by Degree for an index outside [0, N).
// Valid degrees are never negative.
const DegreeOutOfRange = -1

// Graph is an undirected simple graph on the fixed vertex set {0..N-1}.
//
// Storage: rows[v] is a bitset of width N holding v's neighbours.
// Invariants (maintained by every method):
//   - len(rows) == n and rows[v].Len() == n for every v.
//   - rows[u].Test(v) == rows[v].Test(u).
//   - rows[v].Test(v) == false.
//
// The zero value is an empty graph on 0 vertices.
type Graph struct {
	n    int              // vertex count, immutable after NewGraph
	rows []*bitset.BitSet // adjacency rows, one per vertex
}

// NewGraph returns an edgeless graph on exactly n vertices.
// A negative n is treated as 0.
//
// Complexity: O(n²/64) time and space.
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	rows := make([]*bitset.BitSet, n)
	for i := range rows {
		rows[i] = bitset.New(uint(n))
	}

	return &Graph{n: n, rows: rows}
}

// Edge is an unordered vertex pair reported by Graph.Edges, with U < V.
type Edge struct {
	U int
	V int
}

// EdgeResult is the tagged outcome of AddEdge and DeleteEdge.
// The zero value is EdgeInvalid and never reports success.
type EdgeResult uint8

const (
	// EdgeInvalid: unset result; no operation returns it.
	EdgeInvalid EdgeResult = iota
	// EdgeAdded: AddEdge stored a new edge.
	EdgeAdded
	// EdgeRemoved: DeleteEdge cleared an existing edge.
	EdgeRemoved
	// EdgeAlreadyPresent: AddEdge found the edge already stored.
	EdgeAlreadyPresent
	// EdgeAbsent: DeleteEdge found no edge to remove.
	EdgeAbsent
	// EdgeSelfLoop: u == v.
	EdgeSelfLoop
	// EdgeOutOfRange: u or v outside [0, N).
	EdgeOutOfRange
)

// OK reports whether the operation mutated the graph.
func (r EdgeResult) OK() bool {
	return r == EdgeAdded || r == EdgeRemoved
}

// Err maps a failed outcome onto its sentinel error; it is nil on success.
func (r EdgeResult) Err() error {
	switch r {
	case EdgeAlreadyPresent:
		return ErrEdgeExists
	case EdgeAbsent:
		return ErrEdgeNotFound
	case EdgeSelfLoop:
		return ErrLoopNotAllowed
	case EdgeOutOfRange:
		return ErrVertexOutOfRange
	case EdgeAdded, EdgeRemoved:
		return nil
	default:
		return ErrInvalidResult
	}
}

func (r EdgeResult) String() string {
	switch r {
	case EdgeAdded:
		return "added"
	case EdgeRemoved:
		return "removed"
	case EdgeAlreadyPresent:
		return "already present"
	case EdgeAbsent:
		return "absent"
	case EdgeSelfLoop:
		return "self-loop"
	case EdgeOutOfRange:
		return "out of range"
	case EdgeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Isolation is the tri-state answer of IsIsolated.
// Its numeric values follow the classic -1/0/1 convention.
type Isolation int8

const (
	// IsolationOutOfRange: the queried index is outside [0, N).
	IsolationOutOfRange Isolation = -1
	// NotIsolated: the vertex has at least one neighbour.
	NotIsolated Isolation = 0
	// Isolated: the vertex has degree zero.
	Isolated Isolation = 1
)

func (s Isolation) String() string {
	switch s {
	case Isolated:
		return "isolated"
	case NotIsolated:
		return "not isolated"
	case IsolationOutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}
