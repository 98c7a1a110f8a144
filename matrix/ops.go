// SPDX-License-Identifier: MIT
// Package matrix: arithmetic kernels on the immutable Matrix value.
// All kernels use the central validators, return fresh values and wrap
// sentinel errors with the canonical operation tags below.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opNew       = "New"
	opNewSquare = "NewSquare"
	opNewRow    = "NewRow"
	opNewColumn = "NewColumn"
	opIdentity  = "Identity"
	opAt        = "At"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScalar    = "Scalar"
)

// Add computes the elementwise sum m + o as a fresh Matrix.
// Stage 1 (Validate): identical shapes.
// Stage 2 (Execute): fixed i→j traversal.
// Errors: ErrDimensionMismatch naming both shapes.
// Complexity: O(r*c) time and memory.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	if err := validateSameShape(m, o); err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", opAdd, err)
	}

	return m.zipElements(o, func(a, b float64) float64 { return a + b }), nil
}

// Sub computes the elementwise difference m − o as a fresh Matrix.
// Errors: ErrDimensionMismatch naming both shapes.
// Complexity: O(r*c).
func (m Matrix) Sub(o Matrix) (Matrix, error) {
	if err := validateSameShape(m, o); err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", opSub, err)
	}

	return m.zipElements(o, func(a, b float64) float64 { return a - b }), nil
}

// AddScalar adds alpha to every element (alpha + m == m + alpha).
// Total: no failure mode. Complexity: O(r*c).
func (m Matrix) AddScalar(alpha float64) Matrix {
	return m.mapElements(func(v float64) float64 { return v + alpha })
}

// SubScalar subtracts alpha from every element: m − alpha.
// Total: no failure mode. Complexity: O(r*c).
func (m Matrix) SubScalar(alpha float64) Matrix {
	return m.mapElements(func(v float64) float64 { return v - alpha })
}

// SubFromScalar subtracts every element from alpha: alpha − m.
// Total: no failure mode. Complexity: O(r*c).
func (m Matrix) SubFromScalar(alpha float64) Matrix {
	return m.mapElements(func(v float64) float64 { return alpha - v })
}

// Scale multiplies every element by alpha (alpha·m == m·alpha).
// Total: no failure mode. Complexity: O(r*c).
func (m Matrix) Scale(alpha float64) Matrix {
	return m.mapElements(func(v float64) float64 { return v * alpha })
}

// Mul computes the matrix product m × o.
// Stage 1 (Validate): m.Cols() == o.Rows().
// Stage 2 (Execute): fixed i→j→k triple loop; each result cell is the dot
// product of row i of m and column j of o.
// Errors: ErrDimensionMismatch naming both shapes.
// Complexity: O(r*n*c) time, O(r*c) memory for the result.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if err := validateMulCompatible(m, o); err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", opMul, err)
	}

	rows, inner, cols := m.Rows(), m.Cols(), o.Cols()
	out := make([][]float64, rows)
	var sum float64
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			sum = 0
			for k := 0; k < inner; k++ {
				sum += m.rows[i][k] * o.rows[k][j]
			}
			out[i][j] = sum
		}
	}

	return Matrix{rows: out}, nil
}

// Transpose returns a fresh Matrix with row and column roles swapped.
// The shape refinement of the result is re-derived automatically
// (row vector ↔ column vector, square stays square).
// Total: no failure mode. Complexity: O(r*c).
func (m Matrix) Transpose() Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m.rows[i][j]
		}
	}

	return Matrix{rows: out}
}

// Round rounds every element to the given number of fractional digits,
// producing a fresh Matrix of the same shape. places ≤ 0 rounds to
// integral values. Halves round away from zero (math.Round).
// Complexity: O(r*c).
func (m Matrix) Round(places int) Matrix {
	factor := 1.0
	for i := 0; i < places; i++ {
		factor *= 10
	}

	return m.mapElements(func(v float64) float64 { return math.Round(v*factor) / factor })
}

// Scalar extracts the single element of a 1×1 matrix.
// Errors: ErrBadShape naming the actual shape for any other size.
func (m Matrix) Scalar() (float64, error) {
	if m.Rows() != 1 || m.Cols() != 1 {
		return 0, fmt.Errorf("%s: %dx%d is not 1x1: %w", opScalar, m.Rows(), m.Cols(), ErrBadShape)
	}

	return m.rows[0][0], nil
}

// mapElements builds a fresh Matrix with out[i][j] = f(m[i][j]).
// Shared kernel of the total elementwise operations.
func (m Matrix) mapElements(f func(float64) float64) Matrix {
	out := make([][]float64, m.Rows())
	for i, row := range m.rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = f(v)
		}
	}

	return Matrix{rows: out}
}

// zipElements builds a fresh Matrix with out[i][j] = f(m[i][j], o[i][j]).
// Callers must have validated that shapes match.
func (m Matrix) zipElements(o Matrix, f func(a, b float64) float64) Matrix {
	out := make([][]float64, m.Rows())
	for i, row := range m.rows {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = f(v, o.rows[i][j])
		}
	}

	return Matrix{rows: out}
}
