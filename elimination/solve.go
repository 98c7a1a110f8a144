// SPDX-License-Identifier: MIT
// Package elimination: the engine. Solve reduces a square matrix to the
// identity column by column, mirroring every operator application onto the
// right-hand side and recording the full trace.

package elimination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/expfam/matrix"
)

// PivotTolerance is the magnitude below which a diagonal entry is treated
// as zero during partial pivoting. Fixed, never adaptive: retrying a
// deterministic elimination with a different tolerance is a caller
// decision, not this engine's.
const PivotTolerance = 1e-4

// opSolve tags errors surfaced from Solve.
const opSolve = "Solve"

// Solve solves A·X = Y for X, where a is square and y shares a's row count
// (commonly a vector or the identity matrix).
//
// Columns 0..n-1 of the evolving reduced form of a are processed in order:
//  1. Partial pivot: when the diagonal entry's magnitude is within
//     PivotTolerance, the first row at or below the diagonal with a large
//     enough entry is swapped in (ErrSingular when none exists). A no-op
//     permutation is recorded for columns that need no swap.
//  2. Scale: the diagonal row is divided by its diagonal value.
//  3. Zero the column: every other row gets scalar·diagonal-row added so
//     its entry in this column becomes 0.
//
// Every operator is applied to both the evolving a and the evolving y and
// appended to the trace in application order. After the last column the
// evolving a is the identity and the evolving y is X.
//
// Returns X and the ordered operator trace.
// Errors: matrix.ErrNonSquare, matrix.ErrDimensionMismatch (both naming
// the offending shapes), ErrSingular.
// Complexity: O(n⁴) time via materialized operator products, O(n²) memory
// per step. Exactness over large-matrix performance, by contract.
func Solve(a, y matrix.Matrix) (matrix.Matrix, []RowOperator, error) {
	if !a.IsSquare() {
		return matrix.Matrix{}, nil, fmt.Errorf("%s: %dx%d: %w", opSolve, a.Rows(), a.Cols(), matrix.ErrNonSquare)
	}
	if y.Rows() != a.Rows() {
		return matrix.Matrix{}, nil, fmt.Errorf("%s: %dx%d vs %dx%d: %w",
			opSolve, a.Rows(), a.Cols(), y.Rows(), y.Cols(), matrix.ErrDimensionMismatch)
	}

	n := a.Rows()
	reduced, result := a, y
	// Per column: 1 permutation + 1 scaling + (n-1) axpys.
	trace := make([]RowOperator, 0, n*(n+1))

	var err error
	for col := 0; col < n; col++ {
		// 1. Partial pivot (no-op permutations are traced too).
		pivot, pErr := pivotOperator(reduced, col)
		if pErr != nil {
			return matrix.Matrix{}, nil, pErr
		}
		if reduced, err = pivot.Apply(reduced); err != nil {
			return matrix.Matrix{}, nil, fmt.Errorf("%s: %w", opSolve, err)
		}
		if result, err = pivot.Apply(result); err != nil {
			return matrix.Matrix{}, nil, fmt.Errorf("%s: %w", opSolve, err)
		}
		trace = append(trace, pivot)

		// 2+3. Scale the diagonal row, then zero the rest of the column.
		// Both operator groups are derived from the pivoted (not yet
		// scaled) matrix: once scaling makes the diagonal 1, adding
		// −entry·diagonal-row zeroes each remaining entry exactly.
		ops, oErr := columnOperators(reduced, col)
		if oErr != nil {
			return matrix.Matrix{}, nil, oErr
		}
		for _, op := range ops {
			if reduced, err = op.Apply(reduced); err != nil {
				return matrix.Matrix{}, nil, fmt.Errorf("%s: %w", opSolve, err)
			}
			if result, err = op.Apply(result); err != nil {
				return matrix.Matrix{}, nil, fmt.Errorf("%s: %w", opSolve, err)
			}
			trace = append(trace, op)
		}
	}

	return result, trace, nil
}

// pivotOperator selects the permutation for one column: the no-op when the
// diagonal entry already exceeds PivotTolerance, otherwise the swap with
// the first qualifying row at or below the diagonal (stable tie-break).
// Errors: ErrSingular when the whole lower column is within tolerance.
func pivotOperator(reduced matrix.Matrix, col int) (Permutation, error) {
	rows := reduced.Data()
	if math.Abs(rows[col][col]) > PivotTolerance {
		return NoopPermutation(), nil
	}
	for row := col; row < len(rows); row++ {
		if math.Abs(rows[row][col]) > PivotTolerance {
			return NewPermutation(col, row)
		}
	}

	return Permutation{}, fmt.Errorf("%s: no usable pivot for column %d: %w", opSolve, col, ErrSingular)
}

// columnOperators derives, from the pivoted matrix, the scaling that makes
// the diagonal entry 1 followed by one axpy per remaining row driving its
// entry in this column to 0. Zero-scalar axpys are kept: the trace is the
// faithful record of every step, and their determinant contribution is 1.
func columnOperators(pivoted matrix.Matrix, col int) ([]RowOperator, error) {
	rows := pivoted.Data()
	ops := make([]RowOperator, 0, len(rows))

	scale, err := NewScaling(col, 1.0/rows[col][col])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	ops = append(ops, scale)

	for row := range rows {
		if row == col {
			continue
		}
		axpy, err := NewAxpy(-rows[row][col], col, row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, err)
		}
		ops = append(ops, axpy)
	}

	return ops, nil
}
