// SPDX-License-Identifier: MIT
// Package elimination: the closed set of elementary row operators.
// Each operator is an immutable value, representable as a square matrix,
// applied by pre-multiplication, invertible within its own variant, and
// contributes a known factor to the determinant of the matrix it reduces.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/expfam/matrix"
)

// RowOperator is the shared capability of the three elementary row
// operators (Permutation, Scaling, Axpy). The set is closed: the engine
// composes exactly these variants and nothing else.
type RowOperator interface {
	// Apply pre-multiplies m by the operator's matrix form, producing a
	// fresh matrix. The operator's row indices must lie inside m's rows;
	// violations surface matrix.ErrOutOfRange.
	Apply(m matrix.Matrix) (matrix.Matrix, error)

	// Inverse returns the algebraic inverse operator of the same variant.
	// For every operator op and conformable m:
	// op.Inverse().Apply(op.Apply(m)) == m (and in the other order too).
	Inverse() RowOperator

	// Determinant returns the determinant of the operator's matrix form
	// without materializing it: ±1 for Permutation (swap vs no-op), the
	// factor for Scaling, always 1 for Axpy.
	Determinant() float64

	// Matrix materializes the n×n operator matrix.
	// Errors: matrix.ErrBadShape for n ≤ 0, matrix.ErrOutOfRange when an
	// operator index does not fit n rows.
	Matrix(n int) (matrix.Matrix, error)
}

// applyOperator is the shared Apply kernel: materialize the operator for
// the operand's row count and pre-multiply. The product cannot mismatch
// (n×n × n×c), so Mul errors do not occur after Matrix succeeds.
func applyOperator(op RowOperator, m matrix.Matrix) (matrix.Matrix, error) {
	om, err := op.Matrix(m.Rows())
	if err != nil {
		return matrix.Matrix{}, err
	}

	return om.Mul(m)
}

// identityRows allocates the row data of an n×n identity matrix for the
// operator builders to adjust before construction.
func identityRows(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1.0
	}

	return rows
}

// validateRowIndex rejects operator row indices that do not address a row
// of an n-row operand.
func validateRowIndex(tag string, row, n int) error {
	if row < 0 || row >= n {
		return fmt.Errorf("%s: row %d outside %d rows: %w", tag, row, n, matrix.ErrOutOfRange)
	}

	return nil
}

// Permutation interchanges two rows, or is a no-op when both indices
// coincide. Its matrix form for rows (0, 1) of a 3-row operand is
//
//	[0, 1, 0]
//	[1, 0, 0]
//	[0, 0, 1]
//
// A permutation is its own inverse; its determinant is −1 for a genuine
// swap and 1 for the no-op.
type Permutation struct {
	first, second int
}

// NewPermutation builds an operator swapping rows first and second.
// Errors: matrix.ErrOutOfRange for negative indices.
func NewPermutation(first, second int) (Permutation, error) {
	if first < 0 || second < 0 {
		return Permutation{}, fmt.Errorf("NewPermutation(%d,%d): %w", first, second, matrix.ErrOutOfRange)
	}

	return Permutation{first: first, second: second}, nil
}

// NoopPermutation builds the identity permutation (both indices 0). It is
// recorded in elimination traces for columns that need no pivoting, so a
// trace always reflects every step the engine took.
func NoopPermutation() Permutation {
	return Permutation{}
}

// IsNoop reports whether the permutation leaves every row in place.
func (p Permutation) IsNoop() bool {
	return p.first == p.second
}

// Apply pre-multiplies m by the permutation matrix.
func (p Permutation) Apply(m matrix.Matrix) (matrix.Matrix, error) {
	return applyOperator(p, m)
}

// Inverse returns the permutation itself: swapping twice restores order.
func (p Permutation) Inverse() RowOperator {
	return p
}

// Determinant is −1 for a genuine swap, 1 for the no-op.
func (p Permutation) Determinant() float64 {
	if p.IsNoop() {
		return 1.0
	}

	return -1.0
}

// Matrix materializes the n×n permutation matrix.
func (p Permutation) Matrix(n int) (matrix.Matrix, error) {
	if err := validateRowIndex("Permutation", p.first, n); err != nil {
		return matrix.Matrix{}, err
	}
	if err := validateRowIndex("Permutation", p.second, n); err != nil {
		return matrix.Matrix{}, err
	}
	rows := identityRows(n)
	rows[p.first], rows[p.second] = rows[p.second], rows[p.first]

	return matrix.New(rows...)
}

// Scaling multiplies one row by a nonzero scalar. Its matrix form for
// row 0 and factor 0.5 of a 3-row operand is
//
//	[0.5, 0, 0]
//	[0,   1, 0]
//	[0,   0, 1]
//
// The inverse scales by the reciprocal; the determinant is the factor.
type Scaling struct {
	row    int
	scalar float64
}

// NewScaling builds an operator multiplying row by scalar.
// Errors: matrix.ErrOutOfRange for a negative row, ErrZeroScale for a zero
// factor (a zero scaling is not invertible).
func NewScaling(row int, scalar float64) (Scaling, error) {
	if row < 0 {
		return Scaling{}, fmt.Errorf("NewScaling(%d): %w", row, matrix.ErrOutOfRange)
	}
	if scalar == 0 {
		return Scaling{}, fmt.Errorf("NewScaling(%d): %w", row, ErrZeroScale)
	}

	return Scaling{row: row, scalar: scalar}, nil
}

// Apply pre-multiplies m by the scaling matrix.
func (s Scaling) Apply(m matrix.Matrix) (matrix.Matrix, error) {
	return applyOperator(s, m)
}

// Inverse scales the same row by the reciprocal factor.
func (s Scaling) Inverse() RowOperator {
	return Scaling{row: s.row, scalar: 1.0 / s.scalar}
}

// Determinant equals the scaling factor.
func (s Scaling) Determinant() float64 {
	return s.scalar
}

// Matrix materializes the n×n scaling matrix.
func (s Scaling) Matrix(n int) (matrix.Matrix, error) {
	if err := validateRowIndex("Scaling", s.row, n); err != nil {
		return matrix.Matrix{}, err
	}
	rows := identityRows(n)
	rows[s.row][s.row] = s.scalar

	return matrix.New(rows...)
}

// Axpy replaces the target row with scalar·source + target. Its matrix
// form is a Frobenius matrix; for scalar −2, source 0, target 1 of a
// 3-row operand:
//
//	[ 1, 0, 0]
//	[-2, 1, 0]
//	[ 0, 0, 1]
//
// The inverse negates the scalar; the determinant is always 1.
type Axpy struct {
	scalar         float64
	source, target int
}

// NewAxpy builds an operator adding scalar·row(source) to row(target).
// Errors: matrix.ErrOutOfRange for negative indices, ErrSelfAxpy when
// source == target.
func NewAxpy(scalar float64, source, target int) (Axpy, error) {
	if source < 0 || target < 0 {
		return Axpy{}, fmt.Errorf("NewAxpy(%d,%d): %w", source, target, matrix.ErrOutOfRange)
	}
	if source == target {
		return Axpy{}, fmt.Errorf("NewAxpy(%d,%d): %w", source, target, ErrSelfAxpy)
	}

	return Axpy{scalar: scalar, source: source, target: target}, nil
}

// Apply pre-multiplies m by the axpy matrix.
func (a Axpy) Apply(m matrix.Matrix) (matrix.Matrix, error) {
	return applyOperator(a, m)
}

// Inverse negates the scalar: subtracting what was added restores the row.
func (a Axpy) Inverse() RowOperator {
	return Axpy{scalar: -a.scalar, source: a.source, target: a.target}
}

// Determinant of a Frobenius matrix is always 1.
func (a Axpy) Determinant() float64 {
	return 1.0
}

// Matrix materializes the n×n axpy matrix.
func (a Axpy) Matrix(n int) (matrix.Matrix, error) {
	if err := validateRowIndex("Axpy", a.source, n); err != nil {
		return matrix.Matrix{}, err
	}
	if err := validateRowIndex("Axpy", a.target, n); err != nil {
		return matrix.Matrix{}, err
	}
	rows := identityRows(n)
	rows[a.target][a.source] = a.scalar

	return matrix.New(rows...)
}
