package update

import (
	"sort"

	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/pheromone"
	"github.com/fenwicklab/thopaco/rng"
)

// Engine runs the per-iteration pheromone update for one Algorithm. It
// carries the small amount of state that persists across iterations: the
// MMAS u_gb schedule position and the restart bookkeeping shared by MMAS and
// BWAS.
type Engine struct {
	Algorithm Algorithm
	Params    Params

	uGB              int
	restartFoundBest int
	restartIteration int
}

// NewEngine returns an Engine ready for the first iteration of a try.
func NewEngine(algo Algorithm, params Params) *Engine {
	return &Engine{
		Algorithm: algo,
		Params:    params,
		uGB:       25,
	}
}

// RestartFoundBest returns the iteration at which the current restart epoch
// last improved on best-so-far, for the trial driver's own stagnation check.
func (e *Engine) RestartFoundBest() int { return e.restartFoundBest }

// NoteNewBestSoFar records that iteration produced a strictly better
// best-so-far, which resets the MMAS "iterations since last improvement"
// clock used by the u_gb==1 escalation rule.
func (e *Engine) NoteNewBestSoFar(iteration int) {
	e.restartFoundBest = iteration
}

// NoteRestart records that the trial driver (branching-factor detection) or
// BWAS's own Hamming-distance trigger reinitialised the pheromone trails at
// iteration.
func (e *Engine) NoteRestart(iteration int) {
	e.restartIteration = iteration
	e.restartFoundBest = iteration
}

// Apply runs evaporation, deposit, trail-limit enforcement and the
// combined-info refresh for one completed iteration. It returns true when
// BWAS's internal Hamming-distance check triggered a restart.
func (e *Engine) Apply(pher *pheromone.Matrix, data IterationData, stream *rng.Stream) (bool, error) {
	switch e.Algorithm {
	case AS, EAS, RAS, MMAS, BWAS, ACS:
	default:
		return false, ErrUnknownAlgorithm
	}
	if len(data.Pool) == 0 {
		return false, ErrEmptyPool
	}

	if e.Algorithm != ACS {
		e.evaporate(pher, data)
	}

	restarted, err := e.deposit(pher, data, stream)
	if err != nil {
		return false, err
	}

	if e.Algorithm == MMAS && !data.LSOn {
		pher.ClampAll(e.Params.TrailMin, e.Params.TrailMax)
	}

	if e.Algorithm != ACS {
		if !data.LSOn {
			if err := pher.RecomputeTotalFull(e.Params.Alpha, e.Params.Beta, data.Dist); err != nil {
				return restarted, err
			}
		} else {
			if err := pher.RecomputeTotalNeighbors(e.Params.Alpha, e.Params.Beta, data.Dist, data.Neighbors); err != nil {
				return restarted, err
			}
		}
	}

	return restarted, nil
}

func (e *Engine) evaporate(pher *pheromone.Matrix, data IterationData) {
	if !data.LSOn {
		pher.EvaporateFull(e.Params.Rho)
		return
	}
	pher.EvaporateNeighbors(e.Params.Rho, data.Neighbors)
	if e.Algorithm == MMAS {
		clampNeighborsMin(pher, e.Params.TrailMin, data.Neighbors)
	}
}

func (e *Engine) deposit(pher *pheromone.Matrix, data IterationData, stream *rng.Stream) (bool, error) {
	switch e.Algorithm {
	case AS:
		for _, a := range data.Pool {
			depositArcs(pher, a.Tour, 1.0/float64(a.Fitness))
		}
		return false, nil

	case EAS:
		for _, a := range data.Pool {
			depositArcs(pher, a.Tour, 1.0/float64(a.Fitness))
		}
		if data.BestSoFar == nil {
			return false, ErrMissingBest
		}
		depositArcs(pher, data.BestSoFar.Tour, float64(e.Params.ElitistAnts)/float64(data.BestSoFar.Fitness))
		return false, nil

	case RAS:
		if data.BestSoFar == nil {
			return false, ErrMissingBest
		}
		ranked := append([]*ant.Ant(nil), data.Pool...)
		sort.Slice(ranked, func(i, j int) bool { return ranked[i].Fitness < ranked[j].Fitness })
		for r := 1; r <= e.Params.RasRanks-1 && r <= len(ranked); r++ {
			weight := float64(e.Params.RasRanks-r) / float64(ranked[r-1].Fitness)
			depositArcs(pher, ranked[r-1].Tour, weight)
		}
		depositArcs(pher, data.BestSoFar.Tour, float64(e.Params.RasRanks)/float64(data.BestSoFar.Fitness))
		return false, nil

	case MMAS:
		e.updateUGB(data)
		chosen, err := e.selectMMASAnt(data)
		if err != nil {
			return false, err
		}
		depositArcs(pher, chosen.Tour, 1.0/float64(chosen.Fitness))
		return false, nil

	case BWAS:
		return e.depositBWAS(pher, data, stream)

	case ACS:
		if data.BestSoFar == nil {
			return false, ErrMissingBest
		}
		tour := data.BestSoFar.Tour
		amount := 1.0 / float64(data.BestSoFar.Fitness)
		for i := 0; i < len(tour)-1; i++ {
			if err := pher.CoupledUpdate(tour[i], tour[i+1], e.Params.Rho, amount); err != nil {
				return false, err
			}
		}
		return false, nil
	}
	return false, ErrUnknownAlgorithm
}

// updateUGB advances the MMAS deposit-ant schedule. Without local search the
// schedule never leaves its starting value.
func (e *Engine) updateUGB(data IterationData) {
	if !data.LSOn {
		e.uGB = 25
		return
	}
	switch d := data.Iteration - e.restartIteration; {
	case d < 25:
		e.uGB = 25
	case d < 75:
		e.uGB = 5
	case d < 125:
		e.uGB = 3
	case d < 250:
		e.uGB = 2
	default:
		e.uGB = 1
	}
}

func (e *Engine) selectMMASAnt(data IterationData) (*ant.Ant, error) {
	if e.uGB <= 0 {
		e.uGB = 1
	}
	if data.Iteration%e.uGB != 0 {
		if data.IterationBest == nil {
			return nil, ErrMissingBest
		}
		return data.IterationBest, nil
	}
	if e.uGB == 1 && data.Iteration-e.restartFoundBest > 50 {
		if data.BestSoFar == nil {
			return nil, ErrMissingBest
		}
		return data.BestSoFar, nil
	}
	if data.RestartBest == nil {
		return nil, ErrMissingBest
	}
	return data.RestartBest, nil
}

// depositBWAS runs the three-part BWAS deposit: best-so-far deposit,
// worst-ant exclusive-arc extra evaporation, and a mutation step, followed by
// the Hamming-distance restart check.
//
// The mutation step's magnitude is a free parameter in every published
// description of BWAS; here it perturbs a number of matrix entries
// proportional to data.Progress (the trial driver's fraction of max_tours
// elapsed), each nudged toward Tau0 by a random fraction. This is a scoped
// reading of the rule, not a literal transcription.
func (e *Engine) depositBWAS(pher *pheromone.Matrix, data IterationData, stream *rng.Stream) (bool, error) {
	if data.BestSoFar == nil || data.WorstAnt == nil {
		return false, ErrMissingBest
	}

	depositArcs(pher, data.BestSoFar.Tour, 1.0/float64(data.BestSoFar.Fitness))

	bestArcs := arcSet(data.BestSoFar.Tour)
	extraFactor := 1 - e.Params.Rho
	tour := data.WorstAnt.Tour
	for i := 0; i < len(tour)-1; i++ {
		a, b := tour[i], tour[i+1]
		if bestArcs[arcKey(a, b)] {
			continue
		}
		pher.SetTau(a, b, pher.Tau(a, b)*extraFactor)
		pher.SetTau(b, a, pher.Tau(b, a)*extraFactor)
	}

	e.mutate(pher, data, stream)

	n := len(data.Dist)
	hd := hammingDistance(data.BestSoFar.Tour, data.WorstAnt.Tour)
	if float64(hd) >= 0.05*float64(n) {
		return false, nil
	}

	pher.InitTrails(e.Params.Tau0)
	e.NoteRestart(data.Iteration)
	return true, nil
}

func (e *Engine) mutate(pher *pheromone.Matrix, data IterationData, stream *rng.Stream) {
	n := pher.N()
	if n <= 1 {
		return
	}
	count := int(data.Progress * float64(n))
	for k := 0; k < count; k++ {
		i := stream.Intn(n)
		j := stream.Intn(n)
		if i == j {
			continue
		}
		blend := stream.Float64()
		v := (1-blend)*pher.Tau(i, j) + blend*e.Params.Tau0
		pher.SetTau(i, j, v)
		pher.SetTau(j, i, v)
	}
}

func depositArcs(pher *pheromone.Matrix, tour []int, amount float64) {
	for i := 0; i < len(tour)-1; i++ {
		pher.Deposit(tour[i], tour[i+1], amount)
	}
}

func arcKey(a, b int) int64 {
	if a > b {
		a, b = b, a
	}
	return int64(a)<<32 | int64(b)
}

func arcSet(tour []int) map[int64]bool {
	set := make(map[int64]bool, len(tour))
	for i := 0; i < len(tour)-1; i++ {
		set[arcKey(tour[i], tour[i+1])] = true
	}
	return set
}

func hammingDistance(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	d := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

func clampNeighborsMin(pher *pheromone.Matrix, min float64, neighbors [][]int) {
	for i, nbrs := range neighbors {
		for _, j := range nbrs {
			if pher.Tau(i, j) < min {
				pher.SetTau(i, j, min)
			}
		}
	}
}
