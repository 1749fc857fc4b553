// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(k, p) constructor.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • RNG is required only for 0 < p < 1 (else ErrNeedRandSource).
//   • p == 0 emits nothing; p == 1 emits K_k without consuming the RNG.
//
// Determinism:
//   • Stable trial order: for each i asc, j asc with j > i.
//   • Deterministic outcomes for a fixed seed.
//
// Complexity:
//   • Time: O(k²) Bernoulli trials. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/ornata/compressed-graph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph
// G(k, p): every pair is an edge independently with probability p.
func RandomSparse(k int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "k", k, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if err := validateFits(methodRandomSparse, g, cfg, k); err != nil {
			return err
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				// Bernoulli trial; skipped entirely when p == 1.
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := link(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
