// SPDX-License-Identifier: MIT
// Package matrix: canonical validation helpers.
//
// Purpose:
//   - Provide a single source of truth for shape checks shared by the
//     factories and the arithmetic kernels.
//   - Return plain sentinel wraps so call sites can add an operation tag
//     uniformly; callers always match with errors.Is.
//
// All checks are pure, deterministic and allocation-free.

package matrix

import "fmt"

// validateRectangular ensures rows form a non-empty, non-ragged grid.
// Errors: ErrBadShape naming the first offending row.
// Complexity: O(r).
func validateRectangular(rows [][]float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows: %w", ErrBadShape)
	}
	width := len(rows[0])
	if width == 0 {
		return fmt.Errorf("row 0 has no columns: %w", ErrBadShape)
	}
	for i, row := range rows[1:] {
		if len(row) != width {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(row), width, ErrBadShape)
		}
	}

	return nil
}

// validateSameShape ensures a and b share dimensions, naming both shapes.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func validateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows, naming both shapes.
// Errors: ErrDimensionMismatch. Complexity: O(1).
func validateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return fmt.Errorf("%dx%d × %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}
