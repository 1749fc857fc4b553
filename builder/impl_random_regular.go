// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_random_regular.go - implementation of RandomRegular(k, d) constructor.
//
// Algorithm (stub pairing with restarts):
//   1) Create k·d stubs (d copies of each local vertex).
//   2) Repeatedly join two random remaining stubs whose vertices differ and
//      are not yet adjacent. Random picks are tried first; when they miss,
//      one pair is drawn uniformly from all suitable pairs.
//   3) If no suitable pair is left before the stubs run out, restart.
//   4) On success, emit the k·d/2 edges sorted by (u, v).
//
// Dense degrees (2d > k-1) are sampled as the (k-1-d)-regular complement and
// flipped. k·(k-1-d) has the same parity as k·d, so that side is always
// feasible and the pairing only ever runs with d <= (k-1)/2.
//
// Contract:
//   • k ≥ 1, 0 ≤ d < k, k·d even (else ErrTooFewVertices).
//   • RNG required (else ErrNeedRandSource).
//   • Gives up after maxStubMatchingAttempts restarts with ErrConstructFailed.
//   • Nothing is written to g until a valid matching has been found.
//
// Complexity:
//   • Time: O(k·d) per attempt, plus O((k·d)²) scans only when random picks
//     keep missing near the end. Space: O(k·d) stubs plus one scratch graph.

package builder

import (
	"fmt"

	"github.com/ornata/compressed-graph/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor that samples a simple d-regular graph on k vertices.
func RandomRegular(k, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, "k", k, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= k {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, k, d, ErrTooFewVertices)
		}
		if (k*d)%2 != 0 {
			return fmt.Errorf("%s: k*d must be even (k=%d, d=%d): %w",
				methodRandomRegular, k, d, ErrTooFewVertices)
		}
		if err := validateFits(methodRandomRegular, g, cfg, k); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		dense := 2*d > k-1
		sample := d
		if dense {
			sample = k - 1 - d
		}

		scratch := core.NewGraph(k)
		if err := matchStubs(scratch, sample, cfg); err != nil {
			return err
		}
		if dense {
			scratch.Complement()
		}

		for _, e := range scratch.Edges() {
			if err := link(methodRandomRegular, g, cfg, e.U, e.V); err != nil {
				return err
			}
		}

		return nil
	}
}

// matchStubs fills the empty scratch graph with a random simple d-regular
// graph on all of its vertices.
func matchStubs(scratch *core.Graph, d int, cfg builderConfig) error {
	k := scratch.NumVertices()
	stubCount := k * d
	if stubCount == 0 {
		return nil
	}
	stubs := make([]int, 0, stubCount)
	for i := 0; i < k; i++ {
		for c := 0; c < d; c++ {
			stubs = append(stubs, i)
		}
	}

	rest := make([]int, stubCount)
	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		copy(rest, stubs)
		scratch.Clear()
		if pairStubs(scratch, rest, cfg) {
			return nil
		}
	}

	return fmt.Errorf("%s: failed to construct after %d attempts: %w",
		methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
}

// pairStubs consumes rest two stubs at a time, adding one edge per pair.
// It reports false when the remaining stubs admit no suitable pair.
func pairStubs(scratch *core.Graph, rest []int, cfg builderConfig) bool {
	for len(rest) > 0 {
		i, j, ok := pickPair(scratch, rest, cfg)
		if !ok {
			return false
		}
		scratch.AddEdge(rest[i], rest[j])
		// Remove j first: i < j, so rest[i] survives the swap.
		rest = removeStub(rest, j)
		rest = removeStub(rest, i)
	}

	return true
}

// pickPair returns indices i < j of two stubs that may be joined.
func pickPair(scratch *core.Graph, rest []int, cfg builderConfig) (int, int, bool) {
	m := len(rest)
	suitable := func(i, j int) bool {
		return rest[i] != rest[j] && !scratch.IsEdge(rest[i], rest[j])
	}

	for try := 0; try < 2*m; try++ {
		i, j := cfg.rng.Intn(m), cfg.rng.Intn(m)
		if i == j || !suitable(i, j) {
			continue
		}
		if i > j {
			i, j = j, i
		}
		return i, j, true
	}

	var pairs [][2]int
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if suitable(i, j) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	if len(pairs) == 0 {
		return 0, 0, false
	}
	p := pairs[cfg.rng.Intn(len(pairs))]

	return p[0], p[1], true
}

// removeStub deletes rest[idx] by swapping in the last stub.
func removeStub(rest []int, idx int) []int {
	last := len(rest) - 1
	rest[idx] = rest[last]

	return rest[:last]
}
