// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_complete.go - implementation of Complete(k) constructor.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices); offset+k ≤ n (else ErrGraphTooSmall).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(k²). Space: O(1) extra.

package builder

import "github.com/ornata/compressed-graph/core"

// File-local constants for method tagging and parameter minima (no magic numbers).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_k.
func Complete(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "k", k, minCompleteNodes); err != nil {
			return err
		}
		if err := validateFits(methodComplete, g, cfg, k); err != nil {
			return err
		}

		// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if err := link(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
