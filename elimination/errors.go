// SPDX-License-Identifier: MIT
// Package elimination: sentinel error set. Shape and index violations reuse
// the matrix package sentinels; only elimination-specific failure modes are
// declared here. Match with errors.Is.

package elimination

import "errors"

var (
	// ErrSingular is returned when no pivot row with magnitude above
	// PivotTolerance exists for some column. The system cannot be reduced;
	// Solve, Invert and Determinant all propagate this unchanged.
	ErrSingular = errors.New("elimination: singular matrix")

	// ErrZeroScale rejects a Scaling operator with a zero factor, which
	// would not be invertible.
	ErrZeroScale = errors.New("elimination: zero scaling factor")

	// ErrSelfAxpy rejects an Axpy operator whose source and target rows
	// coincide; adding a row to itself is a scaling, not an axpy.
	ErrSelfAxpy = errors.New("elimination: axpy source and target rows coincide")
)
