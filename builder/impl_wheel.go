// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_wheel.go - implementation of Wheel(k) constructor.
//
// Contract:
//   • k ≥ 4 (else ErrTooFewVertices): hub + a rim cycle of at least 3.
//   • Local vertex 0 is the hub; rim vertices 1..k-1 form C_{k-1}.
//   • Edge order: rim ring first, then spokes.
//
// Complexity:
//   • Time: O(k). Edges: 2(k-1).

package builder

import "github.com/ornata/compressed-graph/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel graph W_k.
func Wheel(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "k", k, minWheelNodes); err != nil {
			return err
		}
		if err := validateFits(methodWheel, g, cfg, k); err != nil {
			return err
		}

		rim := k - 1
		for i := 0; i < rim; i++ {
			u := 1 + i
			v := 1 + (i+1)%rim
			if err := link(methodWheel, g, cfg, u, v); err != nil {
				return err
			}
		}
		for i := 1; i < k; i++ {
			if err := link(methodWheel, g, cfg, hubIndex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
