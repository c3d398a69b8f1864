package solver

import "github.com/fenwicklab/thopaco/update"

// MaxNeighbours and MaxAnts bound the configuration the way the original
// program's compile-time array sizes did; they are generous, literature-
// typical limits rather than values recovered from the retrieved source.
const (
	MaxNeighbours = 100
	MaxAnts       = 1024
)

// Config bundles every CLI-tunable knob a trial driver needs. Field names
// mirror the CLI flags named in the external-interfaces section one-for-one
// (InputFile <- --inputfile, NAnts <- --ants, and so on).
type Config struct {
	InputFile  string
	OutputFile string
	LogFile    string

	MaxTries     int     // --tries: independent full runs
	MaxTours     int     // --tours: iterations within one try
	PackingTries int     // --ptries: randomized packing attempts per ant per iteration
	MaxTime      float64 // --time: wall-clock budget per try, seconds
	Seed         int64
	Optimum      int64 // --optimum: stop a try early once best_so_far.fitness <= this; <=0 means unset

	NAnts  int // --ants; 0 means "use the instance's real city count"
	NNAnts int // --nnants

	Alpha, Beta, Rho, Q0, Xi float64

	ElitistAnts int // EAS only
	RasRanks    int // RAS only

	LocalSearch int // --localsearch: 0 (off), 1 (2-opt), 2 (2.5-opt), 3 (2.5-opt plus 2/3-city segment relocation, not seven-reconnection 3-opt)
	NNLS        int // --nnls
	DLB         bool

	Algorithm update.Algorithm

	Calibration bool
}

// LocalSearchOn reports whether any local-search variant is selected.
func (c Config) LocalSearchOn() bool { return c.LocalSearch != 0 }
