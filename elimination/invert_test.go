package elimination_test

import (
	"testing"

	"github.com/katalvlaran/expfam/elimination"
	"github.com/katalvlaran/expfam/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInvert_ThreeByThree inverts a classic pivot-requiring matrix; the
// result rounded to 4 fractional digits matches the textbook inverse.
func TestInvert_ThreeByThree(t *testing.T) {
	a, err := matrix.NewSquare(
		[]float64{3, 0, 2},
		[]float64{2, 0, -2},
		[]float64{0, 1, 1},
	)
	require.NoError(t, err)

	inv, err := elimination.Invert(a)
	require.NoError(t, err)

	want, err := matrix.NewSquare(
		[]float64{0.2, 0.2, 0},
		[]float64{-0.2, 0.3, 1},
		[]float64{0.2, -0.3, 0},
	)
	require.NoError(t, err)
	require.True(t, inv.Round(4).Equal(want))
}

// TestInvert_Involution: invert(invert(A)) ≈ A and A × invert(A) ≈ I.
func TestInvert_Involution(t *testing.T) {
	a, err := matrix.NewSquare(
		[]float64{2, -1, 0},
		[]float64{-1, 2, -1},
		[]float64{0, -1, 2},
	)
	require.NoError(t, err)

	inv, err := elimination.Invert(a)
	require.NoError(t, err)

	back, err := elimination.Invert(inv)
	require.NoError(t, err)
	require.True(t, back.EqualApprox(a, 1e-9))

	prod, err := a.Mul(inv)
	require.NoError(t, err)
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	require.True(t, prod.EqualApprox(id, 1e-9))
}

// TestInvert_Identity: the identity is its own inverse, exactly.
func TestInvert_Identity(t *testing.T) {
	id, err := matrix.Identity(4)
	require.NoError(t, err)

	inv, err := elimination.Invert(id)
	require.NoError(t, err)
	require.True(t, inv.Equal(id))
}

// TestInvert_Errors: singular and non-square inputs are rejected with the
// same sentinels Solve uses.
func TestInvert_Errors(t *testing.T) {
	singular, err := matrix.NewSquare([]float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)
	_, err = elimination.Invert(singular)
	assert.ErrorIs(t, err, elimination.ErrSingular)

	rect, err := matrix.New([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	_, err = elimination.Invert(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
