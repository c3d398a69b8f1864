package localsearch

import "errors"

var (
	// ErrUnknownVariant indicates a variant outside {TwoOpt, TwoHalfOpt,
	// ThreeOpt} was requested.
	ErrUnknownVariant = errors.New("localsearch: unknown variant")

	// ErrSizeMismatch indicates the neighbour list count didn't match the
	// ant's tour length.
	ErrSizeMismatch = errors.New("localsearch: neighbour list size does not match tour")
)
