// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood (right & bottom neighbours per cell).
//   • Cell (r,c) is local vertex r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell emit Right then Bottom where present.
//
// Complexity:
//   • Time: O(rows*cols). Edges: rows(cols-1) + cols(rows-1).

package builder

import "github.com/ornata/compressed-graph/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		if err := validateFits(methodGrid, g, cfg, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
