// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for compressed-graph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and invariant checks for core.Graph.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"math/rand"
	"testing"

	"github.com/ornata/compressed-graph/core"
	"github.com/stretchr/testify/require"
)

// Common vertex counts used across core tests.
const (
	N0   = 0
	N1   = 1
	N4   = 4
	N8   = 8
	N64  = 64
	N65  = 65
	N130 = 130
)

// Common vertex indices.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
	V7 = 7

	VNeg = -1
)

// Seeds and sizes for randomized property runs.
const (
	SeedProps = 20240601
	NRandOps  = 2000
)

// requireInvariants checks symmetry, loop-freedom and the handshake lemma.
func requireInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	n := g.NumVertices()
	sum := 0
	for u := 0; u < n; u++ {
		require.Falsef(t, g.IsEdge(u, u), "self-loop at %d", u)
		for v := 0; v < n; v++ {
			require.Equalf(t, g.IsEdge(u, v), g.IsEdge(v, u), "asymmetric pair (%d,%d)", u, v)
		}
		d := g.Degree(u)
		require.GreaterOrEqual(t, d, 0)
		sum += d
	}
	require.Equal(t, sum/2, g.NumEdges(), "NumEdges must equal half the degree sum")
	require.Zero(t, sum%2, "degree sum must be even")
}

// edgeSet snapshots IsEdge over every ordered pair.
func edgeSet(g *core.Graph) [][]bool {
	n := g.NumVertices()
	out := make([][]bool, n)
	for u := range out {
		out[u] = make([]bool, n)
		for v := range out[u] {
			out[u][v] = g.IsEdge(u, v)
		}
	}

	return out
}

// randomGraph returns a graph with each pair present with probability p.
func randomGraph(n int, p float64, rng *rand.Rand) *core.Graph {
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				g.AddEdge(u, v)
			}
		}
	}

	return g
}
