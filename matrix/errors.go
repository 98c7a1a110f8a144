// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap the sentinels with an operation tag and the offending dimensions via
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.

var (
	// ErrBadShape is returned when a factory receives malformed rows (no
	// rows, no columns, ragged rows) or when a refinement-specific factory
	// (NewSquare, NewColumn, ...) is asked for the wrong shape, and when a
	// non-1×1 matrix is reduced to a scalar.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes, or Mul where
	// a.Cols() != b.Rows(). The wrapping message names both shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. At MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (elimination, determinant, covariance inputs).
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
