// SPDX-License-Identifier: MIT

// Package matrix provides an immutable matrix value model with elementwise
// and matrix-product algebra.
//
// The package offers:
//
//   - Validating factories (New, NewSquare, NewRow, NewColumn, Identity)
//     that reject empty or ragged input with ErrBadShape.
//   - Pure-value arithmetic: Add, Sub, scalar variants, Mul, Transpose,
//     Round and Scalar extraction. Every operation returns a fresh Matrix
//     and never mutates its operands.
//   - Shape refinement (RowVector, ColumnVector, Square, Rectangular)
//     derived from dimensions on every query, so a transposed row vector
//     is always classified as a column vector.
//
// All failure modes are package-level sentinels (ErrBadShape,
// ErrDimensionMismatch, ErrOutOfRange, ErrNonSquare) wrapped with an
// operation tag; match them with errors.Is. Dimension errors always name
// both offending shapes.
//
// Matrices are safe for concurrent readers: there is no shared mutable
// state anywhere in this package.
package matrix
