package distribution

// Distribution is the sampling contract: any distribution over sample type
// T can draw one random sample per call. Gaussian satisfies
// Distribution[matrix.Matrix].
type Distribution[T any] interface {
	// Sample draws one random sample.
	Sample() (T, error)
}
