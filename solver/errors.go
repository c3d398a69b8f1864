package solver

import "errors"

// Sentinel errors for the three reportable failure categories. Do not wrap
// these at the definition site; call sites add detail with fmt.Errorf's %w.
var (
	// ErrConfig marks an invalid configuration: conflicting variant
	// selection, or a tuning knob outside its accepted range.
	ErrConfig = errors.New("solver: invalid configuration")

	// ErrResource marks a failure to allocate or build one of the run's
	// fixed-size buffers (pheromone matrix, neighbour lists, ant pool).
	ErrResource = errors.New("solver: resource allocation failed")
)
