// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_cycle.go - implementation of Cycle(k) constructor.
//
// Contract:
//   • k ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%k for i=0..k-1.
//
// Complexity:
//   • Time: O(k). Space: O(1) extra.

package builder

import "github.com/ornata/compressed-graph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the k-vertex cycle C_k.
func Cycle(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "k", k, minCycleNodes); err != nil {
			return err
		}
		if err := validateFits(methodCycle, g, cfg, k); err != nil {
			return err
		}

		// For i==k-1, connect back to 0 to close the ring.
		for i := 0; i < k; i++ {
			if err := link(methodCycle, g, cfg, i, (i+1)%k); err != nil {
				return err
			}
		}

		return nil
	}
}
