// SPDX-License-Identifier: MIT
// Package: compressed-graph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, min, ErrTooFewVertices)
//
// Priority when several validations fail:
//   ErrTooFewVertices -> ErrInvalidProbability -> ErrGraphTooSmall
//   -> ErrNeedRandSource -> ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (k, rows, cols, degree)
// is outside the domain of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrGraphTooSmall indicates that offset+k exceeds the target graph's vertex count.
var ErrGraphTooSmall = errors.New("builder: graph has too few vertices")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its strategies or
// attempts, or was handed a nil constructor/graph.
var ErrConstructFailed = errors.New("builder: construction failed")
