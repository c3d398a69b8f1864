package pheromone

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive matrix size was requested.
	ErrInvalidDimensions = errors.New("pheromone: dimensions must be > 0")

	// ErrIndexOutOfRange indicates a row or column index was outside [0,n).
	ErrIndexOutOfRange = errors.New("pheromone: index out of range")

	// ErrDimensionMismatch indicates a distance matrix or neighbour list did
	// not match the pheromone matrix's size.
	ErrDimensionMismatch = errors.New("pheromone: dimension mismatch")
)
