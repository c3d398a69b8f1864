package localsearch

// Variant selects which move neighbourhood Run explores.
type Variant int

const (
	// TwoOpt explores only edge-exchange moves.
	TwoOpt Variant = 1
	// TwoHalfOpt adds single-city relocation (Or-opt of length 1) to 2-opt.
	TwoHalfOpt Variant = 2
	// ThreeOpt adds two- and three-city segment relocation (Or-opt of
	// length 2 and 3) to 2.5-opt. This is an Or-opt extension, not the
	// full three-edge-removal reconnection search classically called
	// 3-opt; see localsearch's package doc and DESIGN.md.
	ThreeOpt Variant = 3
)

// gainEpsilon is the strict-improvement margin: a move is accepted only
// when it decreases the affected edge sum by more than this. Distances are
// integers, so a zero margin already rules out sideways "improvements".
const gainEpsilon int64 = 0

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
