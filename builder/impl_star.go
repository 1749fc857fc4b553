// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_star.go - implementation of Star(k) constructor.
//
// Contract:
//   • k ≥ 2 (else ErrTooFewVertices).
//   • Local vertex 0 is the hub; leaves are 1..k-1.

package builder

import "github.com/ornata/compressed-graph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	hubIndex     = 0
)

// Star returns a Constructor that builds a star with one hub and k-1 leaves.
func Star(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "k", k, minStarNodes); err != nil {
			return err
		}
		if err := validateFits(methodStar, g, cfg, k); err != nil {
			return err
		}
		for leaf := hubIndex + 1; leaf < k; leaf++ {
			if err := link(methodStar, g, cfg, hubIndex, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
