package update

import "github.com/fenwicklab/thopaco/ant"

// Algorithm selects one of the six pheromone update variants. Modelled as a
// tagged variant rather than a set of boolean flags, since exactly one
// deposit rule applies per run.
type Algorithm int

const (
	AS Algorithm = iota
	EAS
	RAS
	MMAS
	BWAS
	ACS
)

// String renders the algorithm the way it appears on the command line.
func (a Algorithm) String() string {
	switch a {
	case AS:
		return "as"
	case EAS:
		return "eas"
	case RAS:
		return "ras"
	case MMAS:
		return "mmas"
	case BWAS:
		return "bwas"
	case ACS:
		return "acs"
	default:
		return "unknown"
	}
}

// Params bundles the update-engine tuning knobs that come from the solver's
// configuration.
type Params struct {
	Alpha, Beta, Rho float64

	// Q0, Xi mirror the constructor's ACS settings; the engine itself never
	// reads them, since it runs neither the selection rule nor the ACS
	// local update.
	Q0, Xi float64

	ElitistAnts int
	RasRanks    int

	// TrailMin, TrailMax bound MMAS's pheromone trails. Ignored by every
	// other algorithm.
	TrailMin, TrailMax float64

	// Tau0 is the value τ is reinitialised to on a BWAS/MMAS restart.
	Tau0 float64
}

// IterationData is everything Apply needs from one completed iteration.
type IterationData struct {
	Pool []*ant.Ant

	BestSoFar     *ant.Ant
	RestartBest   *ant.Ant
	IterationBest *ant.Ant

	// WorstAnt is the iteration's worst-fitness ant, used by BWAS.
	WorstAnt *ant.Ant

	Iteration int
	LSOn      bool

	// Progress is the trial driver's fraction of max_tours elapsed
	// (0 at the first iteration, approaching 1 near the end), consumed only
	// by BWAS's mutation step.
	Progress float64

	Dist      [][]int64
	Neighbors [][]int
}
