package solver

import (
	"fmt"
	"math"
	"time"

	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/construct"
	"github.com/fenwicklab/thopaco/instance"
	"github.com/fenwicklab/thopaco/localsearch"
	"github.com/fenwicklab/thopaco/neighbor"
	"github.com/fenwicklab/thopaco/packing"
	"github.com/fenwicklab/thopaco/pheromone"
	"github.com/fenwicklab/thopaco/rng"
	"github.com/fenwicklab/thopaco/update"
)

// unsolved is the fitness sentinel for a best-tracker that has not yet seen
// a real ant (fitness is always UB+1-profit >= 1, so any finite ant fitness
// compares below it).
const unsolved = int64(math.MaxInt64)

// Solver is the explicit context owning every buffer a try needs: the
// instance, the pheromone matrix, the neighbour lists, the ant pool, the
// constructor, the update engine, and the best-so-far/restart-best/
// global-best records. Nothing here is shared with any other Solver.
type Solver struct {
	Inst   *instance.Instance
	Config Config

	Pher        *pheromone.Matrix
	Neighbors   [][]int
	Constructor *construct.Constructor
	Engine      *update.Engine
	Stream      *rng.Stream

	Pool        []*ant.Ant
	BestSoFar   *ant.Ant
	RestartBest *ant.Ant
	GlobalBest  *ant.Ant

	Reporter Reporter
	Clock    Clock

	nnTourLen int64
	tau0      float64
	trailMin  float64
	trailMax  float64
}

// NewSolver allocates every buffer a run needs and computes the variant's
// initial trail values. reporter and clock may be nil, defaulting to
// NopReporter and the real wall clock.
func NewSolver(inst *instance.Instance, cfg Config, reporter Reporter, clock Clock) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	if clock == nil {
		clock = RealClock()
	}

	nAnts := cfg.NAnts
	if nAnts <= 0 {
		nAnts = inst.N - 1
	}
	if cfg.Algorithm == update.EAS && cfg.ElitistAnts <= 0 {
		cfg.ElitistAnts = nAnts
	}

	neighbors, err := neighbor.Build(inst.Dist, cfg.NNLS, cfg.NNAnts)
	if err != nil {
		return nil, fmt.Errorf("%w: neighbour list construction: %v", ErrResource, err)
	}

	pher, err := pheromone.NewMatrix(inst.N)
	if err != nil {
		return nil, fmt.Errorf("%w: pheromone matrix: %v", ErrResource, err)
	}

	pool := make([]*ant.Ant, nAnts)
	for i := range pool {
		a, err := ant.New(inst.N, inst.M)
		if err != nil {
			return nil, fmt.Errorf("%w: ant pool: %v", ErrResource, err)
		}
		pool[i] = a
	}

	best, err1 := ant.New(inst.N, inst.M)
	restartBest, err2 := ant.New(inst.N, inst.M)
	globalBest, err3 := ant.New(inst.N, inst.M)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%w: best-tracker ants", ErrResource)
	}
	best.Fitness, restartBest.Fitness, globalBest.Fitness = unsolved, unsolved, unsolved

	s := &Solver{
		Inst:      inst,
		Config:    cfg,
		Pher:      pher,
		Neighbors: neighbors,
		Constructor: construct.New(neighbors, construct.Params{
			NNAnts: cfg.NNAnts,
			ACS:    cfg.Algorithm == update.ACS,
			Q0:     cfg.Q0,
			Xi:     cfg.Xi,
		}),
		Engine: update.NewEngine(cfg.Algorithm, update.Params{
			Alpha: cfg.Alpha, Beta: cfg.Beta, Rho: cfg.Rho, Q0: cfg.Q0, Xi: cfg.Xi,
			ElitistAnts: cfg.ElitistAnts, RasRanks: cfg.RasRanks,
		}),
		Stream:      rng.New(cfg.Seed),
		Pool:        pool,
		BestSoFar:   best,
		RestartBest: restartBest,
		GlobalBest:  globalBest,
		Reporter:    reporter,
		Clock:       clock,
	}
	s.nnTourLen = inst.NearestNeighbourTourLength()
	s.computeInitialTrails()
	return s, nil
}

// computeInitialTrails sets tau0/trailMin/trailMax per the variant's initial
// pheromone formula and pushes Tau0 into the engine's Params so BWAS/MMAS
// restarts reinitialise to the same value, and into the constructor's
// Params as the ACS local-update target.
func (s *Solver) computeInitialTrails() {
	n := float64(s.Inst.N)
	rho := s.Config.Rho

	switch s.Config.Algorithm {
	case update.MMAS:
		s.trailMax = 1.0 / (rho * float64(s.nnTourLen))
		s.trailMin = s.trailMax / (2 * n)
		s.tau0 = s.trailMax
	case update.ACS, update.BWAS:
		s.tau0 = 1.0 / (n * float64(s.nnTourLen))
	default: // AS, EAS, RAS
		s.tau0 = 1.0 / (rho * float64(s.nnTourLen))
	}

	s.Engine.Params.TrailMin = s.trailMin
	s.Engine.Params.TrailMax = s.trailMax
	s.Engine.Params.Tau0 = s.tau0
	s.Constructor.Params.Tau0 = s.tau0
}

// TryResult summarizes one completed try.
type TryResult struct {
	Iterations int
	Elapsed    time.Duration
	Best       *ant.Ant
}

// RunTry executes one full try: reinitialise trails and best-trackers, then
// iterate construct/LS/update until the termination condition is
// met. It updates s.GlobalBest and returns a summary of the try.
func (s *Solver) RunTry(tryIndex int) (TryResult, error) {
	s.computeInitialTrails()
	s.Pher.InitTrails(s.initialTrailValue())
	if err := s.refreshTotal(); err != nil {
		return TryResult{}, err
	}
	s.BestSoFar.Fitness = unsolved
	s.RestartBest.Fitness = unsolved
	s.Engine = update.NewEngine(s.Config.Algorithm, s.Engine.Params)

	start := s.Clock.Now()
	maxTimeDuration := time.Duration(s.Config.MaxTime * float64(time.Second))

	iteration := 0
	for {
		if err := s.Constructor.ConstructAll(s.Pool, s.Pher, s.Stream); err != nil {
			return TryResult{}, err
		}

		var worst *ant.Ant
		var iterBest *ant.Ant
		for _, a := range s.Pool {
			if err := s.evaluateAnt(a); err != nil {
				return TryResult{}, err
			}
			if worst == nil || a.Fitness > worst.Fitness {
				worst = a
			}
			if iterBest == nil || a.Fitness < iterBest.Fitness {
				iterBest = a
			}
		}

		elapsed := s.Clock.Now().Sub(start)

		if iterBest.Fitness < s.RestartBest.Fitness {
			_ = s.RestartBest.CopyFrom(iterBest)
		}
		if iterBest.Fitness < s.BestSoFar.Fitness {
			_ = s.BestSoFar.CopyFrom(iterBest)
			s.Engine.NoteNewBestSoFar(iteration)
			s.onNewBestSoFar()
			s.Reporter.NewBest(tryIndex, iteration, s.BestSoFar, elapsed)
		}
		if s.BestSoFar.Fitness < s.GlobalBest.Fitness {
			_ = s.GlobalBest.CopyFrom(s.BestSoFar)
		}

		progress := 0.0
		if s.Config.MaxTours > 0 {
			progress = float64(iteration) / float64(s.Config.MaxTours)
		}
		data := update.IterationData{
			Pool: s.Pool, BestSoFar: s.BestSoFar, RestartBest: s.RestartBest,
			IterationBest: iterBest, WorstAnt: worst,
			Iteration: iteration, LSOn: s.Config.LocalSearchOn(), Progress: progress,
			Dist: s.Inst.Dist, Neighbors: s.Neighbors,
		}
		restarted, err := s.Engine.Apply(s.Pher, data, s.Stream)
		if err != nil {
			return TryResult{}, err
		}
		if restarted {
			s.RestartBest.Fitness = unsolved
		}

		iteration++

		if iteration%100 == 0 && s.Config.Algorithm == update.MMAS {
			if s.maybeMMASRestart(iteration) {
				s.RestartBest.Fitness = unsolved
			}
		}

		elapsed = s.Clock.Now().Sub(start)
		if s.Config.Optimum > 0 && s.BestSoFar.Fitness <= s.Config.Optimum {
			break
		}
		if iteration >= s.Config.MaxTours && elapsed >= maxTimeDuration {
			break
		}
	}

	result := TryResult{Iterations: iteration, Elapsed: s.Clock.Now().Sub(start), Best: s.BestSoFar}
	s.Reporter.TrySummary(tryIndex, iteration, s.BestSoFar, result.Elapsed)
	return result, nil
}

// RunAll runs Config.MaxTries independent tries and returns s.GlobalBest.
func (s *Solver) RunAll() (*ant.Ant, error) {
	for t := 0; t < s.Config.MaxTries; t++ {
		if _, err := s.RunTry(t); err != nil {
			return nil, err
		}
	}
	return s.GlobalBest, nil
}

func (s *Solver) initialTrailValue() float64 {
	if s.Config.Algorithm == update.MMAS {
		return s.trailMax
	}
	return s.tau0
}

func (s *Solver) refreshTotal() error {
	if s.Config.Algorithm == update.ACS {
		return nil
	}
	return s.Pher.RecomputeTotalFull(s.Config.Alpha, s.Config.Beta, s.Inst.Dist)
}

// evaluateAnt evaluates a's packing plan and, when local search is on, runs
// it behind a regression guard: local search optimizes tour length, not
// fitness, so a shorter tour can occasionally pack worse. The guard restores
// the pre-LS tour/plan whenever that happens.
func (s *Solver) evaluateAnt(a *ant.Ant) error {
	if !s.Config.LocalSearchOn() {
		return packing.Evaluate(s.Inst, a, s.Config.PackingTries, s.Stream)
	}

	pre := a.Clone()
	if err := packing.Evaluate(s.Inst, pre, s.Config.PackingTries, s.Stream); err != nil {
		return err
	}

	variant := localsearch.Variant(s.Config.LocalSearch)
	if err := localsearch.Run(a, s.Inst.Dist, s.Neighbors, variant, s.Config.NNLS, s.Config.DLB); err != nil {
		return err
	}
	if err := packing.Evaluate(s.Inst, a, s.Config.PackingTries, s.Stream); err != nil {
		return err
	}

	if a.Fitness > pre.Fitness {
		return a.CopyFrom(pre)
	}
	return nil
}

// onNewBestSoFar recomputes the MMAS trail limits around a new incumbent.
func (s *Solver) onNewBestSoFar() {
	if s.Config.Algorithm != update.MMAS {
		return
	}
	n := float64(s.Inst.N)
	rho := s.Config.Rho
	fitness := float64(s.BestSoFar.Fitness)

	s.trailMax = 1.0 / (rho * fitness)
	if s.Config.LocalSearchOn() {
		s.trailMin = s.trailMax / (2 * n)
	} else {
		px := math.Pow(0.05, 1.0/n)
		s.trailMin = s.trailMax * (1 - px) / (px * (float64(s.Config.NNAnts)+1)/2)
	}
	s.tau0 = s.trailMax
	s.Engine.Params.TrailMin = s.trailMin
	s.Engine.Params.TrailMax = s.trailMax
	s.Engine.Params.Tau0 = s.tau0
}

// maybeMMASRestart runs the every-100-iteration branching-factor restart
// check and reinitialises trails when it fires.
func (s *Solver) maybeMMASRestart(iteration int) bool {
	const lambdaFrac = 0.05
	const branchFacThreshold = 1.00001 // average outgoing "good" arcs near 1 signals convergence
	const stagnationWindow = 250

	if iteration-s.Engine.RestartFoundBest() <= stagnationWindow {
		return false
	}
	bf := branchingFactor(s.Pher, lambdaFrac)
	if bf >= branchFacThreshold {
		return false
	}

	s.Pher.InitTrails(s.trailMax)
	if err := s.refreshTotal(); err != nil {
		return false
	}
	s.Engine.NoteRestart(iteration)
	return true
}
