// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with %w) and
// tests check them via errors.Is.

package matrix

import "errors"

// ERROR PRIORITY (enforced in FromMatrix, tested):
// nil -> shape -> NaN/Inf -> non-binary -> diagonal -> symmetry.

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadShape is returned for a graph or matrix with no vertices/rows,
	// which gonum cannot represent.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonBinary signals an entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: non-binary adjacency entry")

	// ErrNonZeroDiagonal signals a non-zero diagonal entry (a self-loop).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals that entry (i,j) differs from entry (j,i).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrEigenFailed indicates that gonum's eigen decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
