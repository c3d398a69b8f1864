package construct

import "errors"

var (
	// ErrNoCandidate indicates every city is already visited when a next
	// city was requested — a caller bug, since the constructor loop should
	// never run past n-3 steps.
	ErrNoCandidate = errors.New("construct: no unvisited candidate city available")

	// ErrSizeMismatch indicates the neighbour list count didn't match the
	// instance's city count.
	ErrSizeMismatch = errors.New("construct: neighbour list size does not match instance")
)
