package distribution

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/expfam/elimination"
	"github.com/katalvlaran/expfam/matrix"
)

// opOf tags errors surfaced from Of.
const opOf = "Of"

// Gaussian is the multivariate normal as an exponential-family member.
//
// Its parameter θ is the immutable (mean, covariance) pair fixed at
// construction. The precision matrix (covariance inverse) is computed once
// in Of; the natural parameter and log-partition are derived lazily and
// memoized per instance — θ never changes, so recomputation could only
// yield the same value.
//
// All methods except Sample are safe for concurrent use. Sample mutates
// the per-instance random source and needs external synchronization when
// shared across goroutines.
type Gaussian struct {
	mean       matrix.Matrix
	covariance matrix.Matrix
	precision  matrix.Matrix

	naturalOnce sync.Once
	natural     matrix.Matrix

	partitionOnce sync.Once
	partition     float64

	rng *rand.Rand
}

// Gaussian is a full exponential-family member and a sampler.
var (
	_ ExponentialFamily           = (*Gaussian)(nil)
	_ Distribution[matrix.Matrix] = (*Gaussian)(nil)
)

// Of builds a Gaussian from a mean column vector and a covariance square
// matrix of matching dimension.
//
// The precision matrix is derived here via elimination.Invert, so a
// singular covariance fails construction with elimination.ErrSingular.
// Errors: matrix.ErrBadShape (mean not a column vector),
// matrix.ErrNonSquare (covariance), matrix.ErrDimensionMismatch naming
// both shapes, elimination.ErrSingular.
func Of(mean, covariance matrix.Matrix) (*Gaussian, error) {
	if !mean.IsColumnVector() {
		return nil, fmt.Errorf("%s: mean is %dx%d, not a column vector: %w",
			opOf, mean.Rows(), mean.Cols(), matrix.ErrBadShape)
	}
	if !covariance.IsSquare() {
		return nil, fmt.Errorf("%s: covariance is %dx%d: %w",
			opOf, covariance.Rows(), covariance.Cols(), matrix.ErrNonSquare)
	}
	if mean.Rows() != covariance.Rows() {
		return nil, fmt.Errorf("%s: mean has %d rows, covariance is %dx%d: %w",
			opOf, mean.Rows(), covariance.Rows(), covariance.Cols(), matrix.ErrDimensionMismatch)
	}

	precision, err := elimination.Invert(covariance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOf, err)
	}

	return &Gaussian{
		mean:       mean,
		covariance: covariance,
		precision:  precision,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Mean returns the mean column vector μ.
func (g *Gaussian) Mean() matrix.Matrix {
	return g.mean
}

// Covariance returns the covariance matrix Σ.
func (g *Gaussian) Covariance() matrix.Matrix {
	return g.covariance
}

// Precision returns the precision matrix P = Σ⁻¹, computed once in Of.
func (g *Gaussian) Precision() matrix.Matrix {
	return g.precision
}

// Dim returns k, the dimensionality of the distribution.
func (g *Gaussian) Dim() int {
	return g.mean.Rows()
}

// NaturalParameter returns η: the flattened elements of P·μ followed by
// the flattened elements of −½·P (row-major), as one column vector.
// Memoized per instance.
func (g *Gaussian) NaturalParameter() matrix.Matrix {
	g.naturalOnce.Do(func() {
		pm := mustMul(g.precision, g.mean)
		elems := append(pm.Flatten(), g.precision.Scale(-0.5).Flatten()...)
		g.natural = mustColumn(elems...)
	})

	return g.natural
}

// SufficientStatistics returns T(x): the flattened elements of x followed
// by the flattened elements of x·xᵀ (row-major), as one column vector.
// Errors: matrix.ErrBadShape when x is not a column vector.
func (g *Gaussian) SufficientStatistics(x matrix.Matrix) (matrix.Matrix, error) {
	if !x.IsColumnVector() {
		return matrix.Matrix{}, fmt.Errorf("SufficientStatistics: x is %dx%d, not a column vector: %w",
			x.Rows(), x.Cols(), matrix.ErrBadShape)
	}
	outer := mustMul(x, x.Transpose())

	return mustColumn(append(x.Flatten(), outer.Flatten()...)...), nil
}

// BaseMeasure returns h(x) = (2π)^(−k/2) with k = x.Rows().
func (g *Gaussian) BaseMeasure(x matrix.Matrix) float64 {
	return math.Pow(2*math.Pi, -float64(x.Rows())/2)
}

// LogPartition returns a(θ) = (μᵀ·P·μ + ln det Σ) / 2. Memoized per
// instance; Determinant cannot fail here because Invert already reduced Σ
// in Of.
func (g *Gaussian) LogPartition() float64 {
	g.partitionOnce.Do(func() {
		quad := mustScalar(mustMul(mustMul(g.mean.Transpose(), g.precision), g.mean))
		det := mustDeterminant(g.covariance)
		g.partition = (quad + math.Log(det)) / 2
	})

	return g.partition
}

// Density evaluates the Gaussian density at the column vector x. Equals
// the closed-form (2π)^(−k/2)·det(Σ)^(−1/2)·exp(−½(x−μ)ᵀΣ⁻¹(x−μ)) up to
// floating-point rounding.
// Errors: matrix.ErrBadShape (x not a column vector),
// matrix.ErrDimensionMismatch (x of the wrong dimension, surfaced from the
// ηᵀ·T(x) product).
func (g *Gaussian) Density(x matrix.Matrix) (float64, error) {
	return Density(g, x)
}

// Sample draws μ + L·z where L is the Cholesky factor of Σ and z is a
// vector of independent standard normals.
// Errors: ErrNonPositiveDefinite when Σ has no real Cholesky factor.
// Not safe for concurrent use (per-instance random source).
func (g *Gaussian) Sample() (matrix.Matrix, error) {
	l, err := cholesky(g.covariance)
	if err != nil {
		return matrix.Matrix{}, fmt.Errorf("Sample: %w", err)
	}

	z := make([]float64, g.Dim())
	for i := range z {
		z[i] = g.rng.NormFloat64()
	}

	return g.mean.Add(mustMul(l, mustColumn(z...)))
}

// cholesky computes the lower-triangular L with L·Lᵀ = m, reading only the
// lower triangle of m. Fails with ErrNonPositiveDefinite when a diagonal
// pivot is not strictly positive.
func cholesky(m matrix.Matrix) (matrix.Matrix, error) {
	rows := m.Data()
	n := m.Rows()
	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}

	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum = 0
			for k := 0; k < j; k++ {
				sum += l[i][k] * l[j][k]
			}
			if i == j {
				d := rows[i][i] - sum
				if d <= 0 {
					return matrix.Matrix{}, fmt.Errorf("pivot %d: %w", i, ErrNonPositiveDefinite)
				}
				l[i][i] = math.Sqrt(d)
			} else {
				l[i][j] = (rows[i][j] - sum) / l[j][j]
			}
		}
	}

	return matrix.New(l...)
}

// The must* helpers cover operations whose operand dimensions are fixed by
// Of's validation; a failure is a programmer error, not a user condition.

func mustMul(a, b matrix.Matrix) matrix.Matrix {
	out, err := a.Mul(b)
	if err != nil {
		panic(err)
	}

	return out
}

func mustColumn(elems ...float64) matrix.Matrix {
	out, err := matrix.NewColumn(elems...)
	if err != nil {
		panic(err)
	}

	return out
}

func mustScalar(m matrix.Matrix) float64 {
	v, err := m.Scalar()
	if err != nil {
		panic(err)
	}

	return v
}

func mustDeterminant(m matrix.Matrix) float64 {
	det, err := elimination.Determinant(m)
	if err != nil {
		panic(err)
	}

	return det
}
