// Package distribution provides the exponential-family density contract
// and its multivariate Gaussian member.
//
// 🚀 What is an exponential family?
//
//	A parametric class of distributions whose density factors as
//
//	    p(x) = h(x) · exp(−a(θ) + ηᵀ·T(x))
//
//	with h the base measure, T the sufficient statistic, η the natural
//	parameter and a the log-partition (the log-normalizer). Any member is
//	defined by those four hooks; Density combines them identically for
//	every member.
//
// ✨ What the package offers:
//   - ExponentialFamily — the four-hook interface new members implement
//   - Density — the shared density computation over any member
//   - Gaussian — the multivariate normal, deriving its natural parameter
//     and log-partition from the precision matrix (covariance inverse via
//     the elimination package) and the covariance determinant
//   - Distribution — the one-method sampling contract; Gaussian satisfies
//     Distribution[matrix.Matrix] through Cholesky sampling
//
// ⚙️ Usage:
//
//	mean, _ := matrix.NewColumn(0, 0)
//	cov, _ := matrix.NewSquare([]float64{1, 0}, []float64{0, 1})
//	g, err := distribution.Of(mean, cov) // ErrSingular for singular cov
//	p, err := g.Density(x)               // closed-form normal density
//
// All shape violations surface the matrix package sentinels; a singular
// covariance surfaces elimination.ErrSingular unchanged.
package distribution
