// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/expfam/matrix"
)

// Invert computes m⁻¹ by solving m·X = I; the elimination trace is
// discarded.
// Errors: exactly Solve's — matrix.ErrNonSquare, ErrSingular.
// Complexity: that of Solve against an n×n right-hand side.
func Invert(m matrix.Matrix) (matrix.Matrix, error) {
	id, err := matrix.Identity(m.Rows())
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("Invert: %w", err)
	}
	inverted, _, err := Solve(m, id)
	if err != nil {
		return matrix.Matrix{}, err
	}

	return inverted, nil
}
