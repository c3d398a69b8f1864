package instance

import "errors"

// Sentinel errors for instance parsing and validation. Every one of these is
// reported to the caller, never a panic. Do not wrap these with fmt.Errorf
// at the definition site; wrap with %w at the outer boundary (cmd/thop)
// only when extra context is needed.
var (
	// ErrMissingField indicates a required header line was absent or
	// unparsable (wrong header, bad numeric field).
	ErrMissingField = errors.New("instance: missing or malformed header field")

	// ErrBadDimension indicates DIMENSION (after the internal sentinel is
	// added, n = DIMENSION+1) fell outside the accepted range 3 < n < 6000.
	ErrBadDimension = errors.New("instance: dimension out of range (need 3 < n < 6000)")

	// ErrUnknownMetric indicates an EDGE_WEIGHT_TYPE other than the four
	// supported metrics (EUC_2D, CEIL_2D, GEO, ATT).
	ErrUnknownMetric = errors.New("instance: unsupported EDGE_WEIGHT_TYPE")

	// ErrBadItemCity indicates an item referenced a city outside [1, n-1]
	// (1-based, excluding the sentinel) in the input file.
	ErrBadItemCity = errors.New("instance: item references an invalid city")

	// ErrTruncated indicates the file ended before all declared cities or
	// items were read.
	ErrTruncated = errors.New("instance: file truncated before declared data ended")
)
