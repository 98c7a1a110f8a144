package elimination_test

import (
	"testing"

	"github.com/katalvlaran/expfam/elimination"
	"github.com/katalvlaran/expfam/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeterminant_TwoByTwo: det((3,7),(1,−4)) = 3·(−4) − 7·1 = −19.
func TestDeterminant_TwoByTwo(t *testing.T) {
	a, err := matrix.NewSquare([]float64{3, 7}, []float64{1, -4})
	require.NoError(t, err)

	det, err := elimination.Determinant(a)
	require.NoError(t, err)
	require.InDelta(t, -19.0, det, 1e-9)
}

// TestDeterminant_Identity: det(I) = 1, with an all-no-op trace.
func TestDeterminant_Identity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	det, err := elimination.Determinant(id)
	require.NoError(t, err)
	require.InDelta(t, 1.0, det, 1e-12)
}

// TestDeterminant_PivotSign: a reduction that needs one row swap keeps the
// correct sign. det((0,1),(1,0)) = −1.
func TestDeterminant_PivotSign(t *testing.T) {
	a, err := matrix.NewSquare([]float64{0, 1}, []float64{1, 0})
	require.NoError(t, err)

	det, err := elimination.Determinant(a)
	require.NoError(t, err)
	require.InDelta(t, -1.0, det, 1e-12)
}

// TestDeterminant_Multiplicative: det(A×B) = det(A)·det(B) within floating
// tolerance.
func TestDeterminant_Multiplicative(t *testing.T) {
	a, err := matrix.NewSquare([]float64{2, 1}, []float64{0.5, -3})
	require.NoError(t, err)
	b, err := matrix.NewSquare([]float64{1, 4}, []float64{-2, 0.25})
	require.NoError(t, err)

	ab, err := a.Mul(b)
	require.NoError(t, err)

	detA, err := elimination.Determinant(a)
	require.NoError(t, err)
	detB, err := elimination.Determinant(b)
	require.NoError(t, err)
	detAB, err := elimination.Determinant(ab)
	require.NoError(t, err)

	require.InDelta(t, detA*detB, detAB, 1e-9)
}

// TestDeterminant_ThreeByThree checks a hand-computed 3×3 value.
func TestDeterminant_ThreeByThree(t *testing.T) {
	a, err := matrix.NewSquare(
		[]float64{3, 0, 2},
		[]float64{2, 0, -2},
		[]float64{0, 1, 1},
	)
	require.NoError(t, err)

	det, err := elimination.Determinant(a)
	require.NoError(t, err)
	require.InDelta(t, 10.0, det, 1e-9)
}

// TestDeterminant_Errors mirrors Solve's failure modes.
func TestDeterminant_Errors(t *testing.T) {
	singular, err := matrix.NewSquare([]float64{1, 2}, []float64{0.5, 1})
	require.NoError(t, err)
	_, err = elimination.Determinant(singular)
	assert.ErrorIs(t, err, elimination.ErrSingular)

	rect, err := matrix.New([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	_, err = elimination.Determinant(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
