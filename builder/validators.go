// validators.go - parameter checks and edge emission shared by the constructors.

package builder

import (
	"fmt"

	"github.com/ornata/compressed-graph/core"
)

// Probability domain for stochastic constructors.
const (
	probMin = 0.0
	probMax = 1.0
)

// validateMin ensures got ≥ min, wrapping ErrTooFewVertices otherwise.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// validateFits ensures vertices [cfg.offset, cfg.offset+k) exist in g.
func validateFits(method string, g *core.Graph, cfg builderConfig, k int) error {
	if n := g.NumVertices(); cfg.offset+k > n {
		return fmt.Errorf("%s: offset=%d + k=%d > n=%d: %w",
			method, cfg.offset, k, n, ErrGraphTooSmall)
	}

	return nil
}

// link adds the edge between local indices i and j.
// An edge that is already present is accepted silently (idempotent
// composition); any other failure is reported with the core sentinel.
func link(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.vertex(i), cfg.vertex(j)
	res := g.AddEdge(u, v)
	if res.OK() || res == core.EdgeAlreadyPresent {
		return nil
	}

	return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, res.Err())
}
