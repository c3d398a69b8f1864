package ant

import "errors"

var (
	// ErrInvalidSize indicates a non-positive city count or a negative item
	// count.
	ErrInvalidSize = errors.New("ant: city count must be > 0 and item count >= 0")

	// ErrIncompleteTour indicates Validate found a tour that does not visit
	// every city exactly once, or does not close back to Start.
	ErrIncompleteTour = errors.New("ant: tour does not visit every city exactly once")

	// ErrSizeMismatch indicates CopyFrom was given an ant built for a
	// different instance size.
	ErrSizeMismatch = errors.New("ant: source and destination sizes differ")
)
