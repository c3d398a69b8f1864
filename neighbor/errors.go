package neighbor

import "errors"

var (
	// ErrInvalidDistance indicates a distance matrix that is nil, ragged, or
	// too small to derive any candidate list from.
	ErrInvalidDistance = errors.New("neighbor: invalid distance matrix")

	// ErrInvalidDepth indicates a requested list depth or ant count was
	// non-positive.
	ErrInvalidDepth = errors.New("neighbor: depth and ant count must be > 0")
)
