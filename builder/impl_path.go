// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_path.go - implementation of Path(k) constructor.
//
// Contract:
//   • k ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i-(i+1) for i=0..k-2.

package builder

import "github.com/ornata/compressed-graph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the k-vertex path P_k.
func Path(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "k", k, minPathNodes); err != nil {
			return err
		}
		if err := validateFits(methodPath, g, cfg, k); err != nil {
			return err
		}
		for i := 0; i+1 < k; i++ {
			if err := link(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
