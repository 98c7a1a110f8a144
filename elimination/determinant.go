// SPDX-License-Identifier: MIT

package elimination

import (
	"fmt"

	"github.com/katalvlaran/expfam/matrix"
)

// Determinant computes det(m) from one elimination trace.
//
// Solve yields operators with E1·E2·…·En·m = I, hence
// m = En⁻¹·…·E1⁻¹ and det(m) = Π det(Ei⁻¹). The product order is
// irrelevant (scalar multiplication commutes); the solved right-hand side
// is discarded.
//
// Errors: exactly Solve's — matrix.ErrNonSquare, ErrSingular.
func Determinant(m matrix.Matrix) (float64, error) {
	id, err := matrix.Identity(m.Rows())
	if err != nil {
		return 0, fmt.Errorf("Determinant: %w", err)
	}
	_, trace, err := Solve(m, id)
	if err != nil {
		return 0, err
	}

	det := 1.0
	for _, op := range trace {
		det *= op.Inverse().Determinant()
	}

	return det, nil
}
