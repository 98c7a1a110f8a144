// SPDX-License-Identifier: MIT
// Package matrix: the immutable Matrix value type, its validating factories
// and structural accessors. Arithmetic kernels live in ops.go; validators
// live in validators.go.

package matrix

import (
	"fmt"
	"strings"
)

// Shape is the dimensional refinement of a Matrix. It carries no behavior
// of its own: the four variants are distinguished purely by dimensions and
// are re-derived every time Shape is called, so derived matrices (e.g. the
// transpose of a row vector) are always classified correctly.
type Shape int

const (
	// Rectangular is the general r×c shape (r ≠ c, r > 1, c > 1).
	Rectangular Shape = iota

	// Square has Rows == Cols (both > 1; a 1×1 matrix classifies as
	// RowVector, matching the row-first precedence of the factories).
	Square

	// RowVector has exactly one row. Takes precedence for 1×1 values.
	RowVector

	// ColumnVector has exactly one column (and more than one row).
	ColumnVector
)

// String implements fmt.Stringer for Shape.
func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case RowVector:
		return "row vector"
	case ColumnVector:
		return "column vector"
	default:
		return "rectangular"
	}
}

// Matrix is an immutable rectangular grid of float64 values, stored as an
// ordered sequence of equal-length rows.
//
// Invariants (established by the factories, preserved by every operation):
//   - at least one row and at least one column;
//   - every row has identical length.
//
// The zero Matrix violates both invariants and is returned only alongside
// a non-nil error; always construct through New and friends. Matrix is a
// pure value: operations return fresh matrices and never mutate operands,
// so concurrent readers never race.
type Matrix struct {
	rows [][]float64
}

// New builds a Matrix from the given rows.
// Stage 1 (Validate): at least one row, at least one column, no ragged rows.
// Stage 2 (Finalize): deep-copy the input so later caller mutations cannot
// leak into the value.
// Errors: ErrBadShape (wrapped with the offending row/length detail).
// Complexity: O(r*c) time and memory.
func New(rows ...[]float64) (Matrix, error) {
	if err := validateRectangular(rows); err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", opNew, err)
	}

	return Matrix{rows: cloneRows(rows)}, nil
}

// NewSquare builds a Matrix from the given rows and additionally requires
// the square refinement (rows == columns).
// Errors: ErrBadShape when the input is malformed or not square.
func NewSquare(rows ...[]float64) (Matrix, error) {
	m, err := New(rows...)
	if err != nil {
		return Matrix{}, err
	}
	if !m.IsSquare() {
		return Matrix{}, fmt.Errorf("%s: %dx%d is not square: %w", opNewSquare, m.Rows(), m.Cols(), ErrBadShape)
	}

	return m, nil
}

// NewRow builds a 1×n row vector from the given elements.
// Errors: ErrBadShape when no elements are supplied.
func NewRow(elems ...float64) (Matrix, error) {
	if len(elems) == 0 {
		return Matrix{}, fmt.Errorf("%s: no elements: %w", opNewRow, ErrBadShape)
	}
	row := make([]float64, len(elems))
	copy(row, elems)

	return Matrix{rows: [][]float64{row}}, nil
}

// NewColumn builds an n×1 column vector from the given elements.
// Errors: ErrBadShape when no elements are supplied.
func NewColumn(elems ...float64) (Matrix, error) {
	if len(elems) == 0 {
		return Matrix{}, fmt.Errorf("%s: no elements: %w", opNewColumn, ErrBadShape)
	}
	rows := make([][]float64, len(elems))
	for i, v := range elems {
		rows[i] = []float64{v}
	}

	return Matrix{rows: rows}, nil
}

// Identity builds the n×n identity matrix.
// Errors: ErrBadShape for n ≤ 0.
// Complexity: O(n²).
func Identity(n int) (Matrix, error) {
	if n <= 0 {
		return Matrix{}, fmt.Errorf("%s: size %d: %w", opIdentity, n, ErrBadShape)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1.0
	}

	return Matrix{rows: rows}, nil
}

// Rows returns the number of rows. O(1).
func (m Matrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns. O(1).
func (m Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0 // zero Matrix; factories never produce this
	}

	return len(m.rows[0])
}

// Shape derives the dimensional refinement of m. Re-computed on every call
// so the classification always reflects the current dimensions.
func (m Matrix) Shape() Shape {
	switch {
	case m.Rows() == 1:
		return RowVector
	case m.Cols() == 1:
		return ColumnVector
	case m.Rows() == m.Cols():
		return Square
	default:
		return Rectangular
	}
}

// IsSquare reports whether m has as many rows as columns.
func (m Matrix) IsSquare() bool {
	return m.Rows() == m.Cols()
}

// IsRowVector reports whether m has exactly one row.
func (m Matrix) IsRowVector() bool {
	return m.Rows() == 1
}

// IsColumnVector reports whether m has exactly one column.
func (m Matrix) IsColumnVector() bool {
	return m.Cols() == 1
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with the offending indices).
// Complexity: O(1).
func (m Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return 0, fmt.Errorf("%s(%d,%d): size %dx%d: %w", opAt, row, col, m.Rows(), m.Cols(), ErrOutOfRange)
	}

	return m.rows[row][col], nil
}

// Data returns a deep copy of the rows. Mutating the result never affects m.
// Complexity: O(r*c).
func (m Matrix) Data() [][]float64 {
	return cloneRows(m.rows)
}

// Flatten returns all elements in row-major order as a fresh slice.
// Complexity: O(r*c).
func (m Matrix) Flatten() []float64 {
	out := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range m.rows {
		out = append(out, row...)
	}

	return out
}

// Equal reports structural equality: same shape and identical element
// values. Exact float64 comparison; use EqualApprox for tolerance checks.
func (m Matrix) Equal(o Matrix) bool {
	return m.equalWithin(o, 0)
}

// EqualApprox reports whether m and o share a shape and every pair of
// elements differs by at most tol in absolute value.
func (m Matrix) EqualApprox(o Matrix, tol float64) bool {
	if tol < 0 {
		tol = -tol
	}

	return m.equalWithin(o, tol)
}

// equalWithin is the shared kernel of Equal and EqualApprox. tol == 0
// degenerates to exact comparison (|a-b| ≤ 0 iff a == b, with -0 == 0).
func (m Matrix) equalWithin(o Matrix, tol float64) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	var diff float64
	for i, row := range m.rows {
		for j, v := range row {
			diff = v - o.rows[i][j]
			if diff < 0 {
				diff = -diff
			}
			if diff > tol {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line.
func (m Matrix) String() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// cloneRows deep-copies a row slice. Internal helper shared by the
// factories, Data and the arithmetic kernels.
func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}
