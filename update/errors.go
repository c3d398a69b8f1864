package update

import "errors"

var (
	// ErrUnknownAlgorithm is returned when an Engine is asked to run with an
	// Algorithm value outside the six known variants.
	ErrUnknownAlgorithm = errors.New("update: unknown algorithm")

	// ErrEmptyPool is returned when Apply is called with no ants to deposit
	// from.
	ErrEmptyPool = errors.New("update: empty ant pool")

	// ErrMissingBest is returned when a deposit rule that requires a
	// best-so-far ant is invoked without one set.
	ErrMissingBest = errors.New("update: missing best-so-far ant")
)
