// Package expfam computes probability densities for exponential-family
// distributions on top of a self-contained, dependency-free matrix core.
//
// 🚀 What is expfam?
//
//	A small, exact linear-algebra toolkit plus a generic exponential-family
//	abstraction, specialized to the multivariate Gaussian:
//	  • Immutable matrix values: construction, add/sub, scalar algebra,
//	    matrix product, transpose, rounding, scalar extraction
//	  • Gaussian elimination built from composable elementary row operators
//	    (permutation, scaling, axpy) with partial pivoting
//	  • Solve, Invert and Determinant all derived from one elimination trace
//	  • ExponentialFamily densities h(x)·exp(−a(θ) + ηᵀT(x)) with pluggable
//	    sufficient-statistic, base-measure and log-partition hooks
//	  • A ready-made multivariate Gaussian, including Cholesky sampling
//
// ✨ Why choose expfam?
//
//   - Pure values – matrices and operators are immutable, no aliasing bugs
//   - Rock-solid errors – sentinel errors, errors.Is friendly, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – implement four hooks to add a new family member
//
// Everything is organized under three subpackages:
//
//	matrix/       — immutable matrix value model and its algebra
//	elimination/  — elementary row operators, Solve, Invert, Determinant
//	distribution/ — ExponentialFamily contract and the Gaussian
//
// Quick example:
//
//	mean, _ := matrix.NewColumn(0)
//	cov, _ := matrix.NewSquare([]float64{1})
//	g, _ := distribution.Of(mean, cov)
//	x, _ := matrix.NewColumn(0)
//	p, _ := g.Density(x) // ≈ 0.398942
//
// See the per-package documentation and example tests for details.
package expfam
