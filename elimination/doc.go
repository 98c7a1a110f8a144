// SPDX-License-Identifier: MIT

// Package elimination reduces square matrices with Gaussian elimination
// expressed as composable elementary row operators.
//
// The engine never mutates a matrix in place. Each reduction step is one of
// three invertible operators — Permutation (row swap), Scaling (row times a
// nonzero scalar), Axpy (add a multiple of one row to another) — applied by
// pre-multiplication with the operator's matrix form. Solve records every
// operator it applies, in order, as an elimination trace:
//
//	E1 · E2 · … · En · A = I  ⇒  X = E1·E2·…·En · Y solves A·X = Y
//
// One trace serves three queries:
//
//   - Solve(A, Y) returns the reduced right-hand side X and the trace.
//   - Invert(A) is Solve against the identity, trace discarded.
//   - Determinant(A) multiplies the determinant contributions of the
//     inverted trace operators: A = En⁻¹·…·E1⁻¹, so
//     det(A) = Π det(Ei⁻¹).
//
// Pivoting policy: a diagonal entry smaller in magnitude than
// PivotTolerance triggers a search straight down the column for the first
// qualifying row (stable and deterministic); if none exists the system is
// numerically singular and the call fails with ErrSingular. The tolerance
// is a fixed constant, never adaptive, and failed eliminations are never
// retried.
package elimination
