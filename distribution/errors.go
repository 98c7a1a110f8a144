// Package distribution: sentinel error set. Shape and singularity failures
// reuse the matrix and elimination sentinels; only sampling-specific
// failure modes are declared here.

package distribution

import "errors"

// ErrNonPositiveDefinite is returned by Sample when the covariance has no
// real Cholesky factor. Such a covariance can still be invertible, so Of
// accepts it and only sampling rejects it.
var ErrNonPositiveDefinite = errors.New("distribution: covariance is not positive definite")
