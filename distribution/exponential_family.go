package distribution

import (
	"fmt"
	"math"

	"github.com/katalvlaran/expfam/matrix"
)

// ExponentialFamily is the four-hook contract a family member implements.
// Density combines the hooks identically for every member, so a new
// distribution only supplies these and inherits the density formula.
type ExponentialFamily interface {
	// NaturalParameter returns η, the column vector that appears linearly
	// in the exponent. Derived deterministically from the member's
	// parameter θ.
	NaturalParameter() matrix.Matrix

	// SufficientStatistics returns T(x), the column vector capturing all
	// information in the observation relevant to η.
	SufficientStatistics(x matrix.Matrix) (matrix.Matrix, error)

	// BaseMeasure returns h(x), the observation-only density factor.
	BaseMeasure(x matrix.Matrix) float64

	// LogPartition returns a(θ), the log-normalizing constant. θ is
	// immutable, so implementations may memoize per instance.
	LogPartition() float64
}

// opDensity tags errors surfaced from Density.
const opDensity = "Density"

// Density evaluates h(x)·exp(−a(θ) + ηᵀ·T(x)) for any family member.
// The inner product ηᵀ·T(x) is computed as a 1×1 matrix product reduced to
// a scalar; mismatched η/T(x) dimensions surface
// matrix.ErrDimensionMismatch from the multiply, unchanged.
func Density(d ExponentialFamily, x matrix.Matrix) (float64, error) {
	t, err := d.SufficientStatistics(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDensity, err)
	}
	dot, err := d.NaturalParameter().Transpose().Mul(t)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDensity, err)
	}
	inner, err := dot.Scalar()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDensity, err)
	}

	return d.BaseMeasure(x) * math.Exp(-d.LogPartition()+inner), nil
}
