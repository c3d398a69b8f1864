package construct

// Params bundles the construction-time tuning knobs that come from the
// solver's configuration rather than being fixed by the move itself.
type Params struct {
	// NNAnts is the number of leading neighbour-list entries considered as
	// construction candidates (may differ from the local-search NNLs
	// depth; neighbor.Build sizes every list to fit the larger of the two).
	NNAnts int

	// ACS enables the ACS selection rule and its local pheromone update.
	ACS bool

	// Q0 is the ACS exploitation probability: with this probability the
	// next city is the deterministic argmax candidate.
	Q0 float64

	// Xi is the ACS local pheromone decay rate.
	Xi float64

	// Tau0 is the ACS local pheromone update's target value, fixed for the
	// duration of a try (recomputed by the trial driver at try start and on
	// restart).
	Tau0 float64
}
