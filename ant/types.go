package ant

// Ant holds one candidate ThOP solution: a closed tour over all n cities
// (including the bookkeeping sentinel), which cities have been placed so
// far during construction, which items are carried, and the resulting
// fitness (UB+1-profit; lower is better).
type Ant struct {
	// Tour has length n+1: Tour[i] is the i-th city visited, and
	// Tour[n] == Tour[0] closes the cycle.
	Tour []int

	// Visited[i] is true once city i has been placed into Tour.
	Visited []bool

	// PackingPlan[j] is true when item j is carried in the best packing
	// found for this tour.
	PackingPlan []bool

	// Fitness is UB+1-best_profit for the current Tour/PackingPlan pair.
	Fitness int64
}

// New allocates an Ant sized for n cities and m items, with every field
// zero-valued (Tour filled with 0, Visited and PackingPlan all false).
func New(n, m int) (*Ant, error) {
	if n <= 0 || m < 0 {
		return nil, ErrInvalidSize
	}
	return &Ant{
		Tour:        make([]int, n+1),
		Visited:     make([]bool, n),
		PackingPlan: make([]bool, m),
	}, nil
}
