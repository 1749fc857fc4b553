// SPDX-License-Identifier: MIT
// Package converters: sentinel errors.

package converters

import "errors"

var (
	// ErrGraphNil indicates a nil source graph.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrNodeID indicates a gonum node ID outside 0..N-1, where N is the node count.
	ErrNodeID = errors.New("converters: node id not in [0, n)")

	// ErrLoop indicates a self-loop in the source graph; core.Graph cannot store one.
	ErrLoop = errors.New("converters: self-loop not representable")
)
