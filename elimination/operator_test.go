package elimination_test

import (
	"testing"

	"github.com/katalvlaran/expfam/elimination"
	"github.com/katalvlaran/expfam/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, rows ...[]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows...)
	require.NoError(t, err)

	return m
}

// TestPermutation_Apply checks the swap against its documented matrix form
// and the no-op case.
func TestPermutation_Apply(t *testing.T) {
	m := mustNew(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})

	swap, err := elimination.NewPermutation(0, 1)
	require.NoError(t, err)

	form, err := swap.Matrix(3)
	require.NoError(t, err)
	require.True(t, form.Equal(mustNew(t,
		[]float64{0, 1, 0},
		[]float64{1, 0, 0},
		[]float64{0, 0, 1},
	)))

	swapped, err := swap.Apply(m)
	require.NoError(t, err)
	require.True(t, swapped.Equal(mustNew(t, []float64{3, 4}, []float64{1, 2}, []float64{5, 6})))

	noop := elimination.NoopPermutation()
	require.True(t, noop.IsNoop())
	same, err := noop.Apply(m)
	require.NoError(t, err)
	require.True(t, same.Equal(m))
}

// TestScaling_Apply checks the row scaling against its matrix form.
func TestScaling_Apply(t *testing.T) {
	m := mustNew(t, []float64{2, 4}, []float64{1, 1})

	half, err := elimination.NewScaling(0, 0.5)
	require.NoError(t, err)

	form, err := half.Matrix(2)
	require.NoError(t, err)
	require.True(t, form.Equal(mustNew(t, []float64{0.5, 0}, []float64{0, 1})))

	scaled, err := half.Apply(m)
	require.NoError(t, err)
	require.True(t, scaled.Equal(mustNew(t, []float64{1, 2}, []float64{1, 1})))
}

// TestAxpy_Apply checks the Frobenius form and the row replacement.
func TestAxpy_Apply(t *testing.T) {
	m := mustNew(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})

	op, err := elimination.NewAxpy(-2, 0, 1)
	require.NoError(t, err)

	form, err := op.Matrix(3)
	require.NoError(t, err)
	require.True(t, form.Equal(mustNew(t,
		[]float64{1, 0, 0},
		[]float64{-2, 1, 0},
		[]float64{0, 0, 1},
	)))

	applied, err := op.Apply(m)
	require.NoError(t, err)
	require.True(t, applied.Equal(mustNew(t, []float64{1, 2}, []float64{1, 0}, []float64{5, 6})))
}

// TestOperator_InverseComposition: every operator composed with its own
// inverse, in either order, is the identity transform.
func TestOperator_InverseComposition(t *testing.T) {
	swap, err := elimination.NewPermutation(0, 2)
	require.NoError(t, err)
	scale, err := elimination.NewScaling(1, -2.5)
	require.NoError(t, err)
	axpy, err := elimination.NewAxpy(0.75, 2, 0)
	require.NoError(t, err)

	m := mustNew(t,
		[]float64{1, -1, 0.5},
		[]float64{2, 3, -4},
		[]float64{0, 7, 1},
	)

	for name, op := range map[string]elimination.RowOperator{
		"permutation": swap,
		"scaling":     scale,
		"axpy":        axpy,
	} {
		applied, aErr := op.Apply(m)
		require.NoError(t, aErr, name)
		restored, aErr := op.Inverse().Apply(applied)
		require.NoError(t, aErr, name)
		require.True(t, restored.EqualApprox(m, 1e-12), "%s: inverse after op", name)

		applied, aErr = op.Inverse().Apply(m)
		require.NoError(t, aErr, name)
		restored, aErr = op.Apply(applied)
		require.NoError(t, aErr, name)
		require.True(t, restored.EqualApprox(m, 1e-12), "%s: op after inverse", name)
	}
}

// TestOperator_Determinant checks the determinant contributions without
// materialized matrices.
func TestOperator_Determinant(t *testing.T) {
	swap, err := elimination.NewPermutation(1, 3)
	require.NoError(t, err)
	require.Equal(t, -1.0, swap.Determinant())
	require.Equal(t, 1.0, elimination.NoopPermutation().Determinant())

	scale, err := elimination.NewScaling(0, -0.25)
	require.NoError(t, err)
	require.Equal(t, -0.25, scale.Determinant())
	require.Equal(t, -4.0, scale.Inverse().Determinant())

	axpy, err := elimination.NewAxpy(123.0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, axpy.Determinant())
	require.Equal(t, 1.0, axpy.Inverse().Determinant())
}

// TestOperator_Validation covers the constructor and Apply guards.
func TestOperator_Validation(t *testing.T) {
	_, err := elimination.NewPermutation(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = elimination.NewScaling(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = elimination.NewScaling(0, 0)
	assert.ErrorIs(t, err, elimination.ErrZeroScale)

	_, err = elimination.NewAxpy(1, -1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = elimination.NewAxpy(1, 2, 2)
	assert.ErrorIs(t, err, elimination.ErrSelfAxpy)

	// Operator indices must fit the operand's row count.
	swap, err := elimination.NewPermutation(0, 5)
	require.NoError(t, err)
	m := mustNew(t, []float64{1, 2}, []float64{3, 4})
	_, err = swap.Apply(m)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = swap.Matrix(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
