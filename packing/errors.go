package packing

import "errors"

var (
	// ErrInvalidTries indicates a non-positive try count was requested.
	ErrInvalidTries = errors.New("packing: tries must be > 0")

	// ErrTourSizeMismatch indicates a tour whose length didn't match the
	// instance it was evaluated against.
	ErrTourSizeMismatch = errors.New("packing: tour length does not match instance size")
)
