// SPDX-License-Identifier: MIT
// Package matrix provides graph-aware wrappers over gonum/mat, exposing
// adjacency and Laplacian matrices of a core.Graph.
package matrix

import (
	"fmt"
	"math"

	"github.com/ornata/compressed-graph/core"
	"gonum.org/v1/gonum/mat"
)

// Canonical adjacency entries.
const (
	entryEdge   = 1.0
	entryAbsent = 0.0
)

// ToSymDense returns the 0/1 adjacency matrix of g.
// Stage 1 (Validate): g non-nil with at least one vertex.
// Stage 2 (Execute): set A[u][v] = A[v][u] = 1 for every edge.
//
// Errors: ErrGraphNil, ErrBadShape (N == 0).
// Complexity: O(N²) space, O(N²/64 + E) time.
func ToSymDense(g *core.Graph) (*mat.SymDense, error) {
	n, err := order("ToSymDense", g)
	if err != nil {
		return nil, err
	}

	a := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		a.SetSym(e.U, e.V, entryEdge)
	}

	return a, nil
}

// Laplacian returns L = D - A, where D is the diagonal degree matrix.
//
// Errors: ErrGraphNil, ErrBadShape (N == 0).
func Laplacian(g *core.Graph) (*mat.SymDense, error) {
	n, err := order("Laplacian", g)
	if err != nil {
		return nil, err
	}

	l := mat.NewSymDense(n, nil)
	for v, d := range g.DegreeSequence() {
		l.SetSym(v, v, float64(d))
	}
	for _, e := range g.Edges() {
		l.SetSym(e.U, e.V, -entryEdge)
	}

	return l, nil
}

// FromMatrix builds a graph from a square 0/1 adjacency matrix.
// Stage 1 (Validate): square shape.
// Stage 2 (Execute): scan every entry; the first violation aborts.
// Stage 3 (Finalize): add each edge {i,j}, i<j.
//
// Errors (in priority order): ErrNonSquare, ErrNaNInf, ErrNonBinary,
// ErrNonZeroDiagonal, ErrAsymmetry. Each is wrapped with the offending cell.
func FromMatrix(m mat.Matrix) (*core.Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("FromMatrix: nil matrix: %w", ErrBadShape)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("FromMatrix: %dx%d: %w", r, c, ErrNonSquare)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return nil, fmt.Errorf("FromMatrix: At(%d,%d)=%v: %w", i, j, v, ErrNaNInf)
			case v != entryEdge && v != entryAbsent:
				return nil, fmt.Errorf("FromMatrix: At(%d,%d)=%v: %w", i, j, v, ErrNonBinary)
			case i == j && v != entryAbsent:
				return nil, fmt.Errorf("FromMatrix: At(%d,%d)=%v: %w", i, j, v, ErrNonZeroDiagonal)
			case j > i && m.At(j, i) != v:
				return nil, fmt.Errorf("FromMatrix: At(%d,%d)=%v vs At(%d,%d)=%v: %w",
					i, j, v, j, i, m.At(j, i), ErrAsymmetry)
			}
		}
	}

	g := core.NewGraph(r)
	for i = 0; i < r; i++ {
		for j = i + 1; j < r; j++ {
			if m.At(i, j) == entryEdge {
				g.AddEdge(i, j)
			}
		}
	}

	return g, nil
}

// order validates g for a dense view and returns its vertex count.
func order(method string, g *core.Graph) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	n := g.NumVertices()
	if n == 0 {
		return 0, fmt.Errorf("%s: n=0: %w", method, ErrBadShape)
	}

	return n, nil
}
