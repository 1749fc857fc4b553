// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(a, b) constructor.
//
// Contract:
//   • a ≥ 1 and b ≥ 1 (else ErrTooFewVertices).
//   • Left side is local 0..a-1, right side a..a+b-1.
//   • Every left vertex is joined to every right vertex; no edges inside a side.
//
// Determinism:
//   • Edge emission order: i asc over left, inner j asc over right.

package builder

import (
	"fmt"

	"github.com/ornata/compressed-graph/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		if err := validateFits(methodCompleteBipartite, g, cfg, a+b); err != nil {
			return err
		}
		for i := 0; i < a; i++ {
			for j := a; j < a+b; j++ {
				if err := link(methodCompleteBipartite, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
