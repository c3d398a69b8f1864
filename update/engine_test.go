package update_test

import (
	"testing"

	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/pheromone"
	"github.com/fenwicklab/thopaco/rng"
	"github.com/fenwicklab/thopaco/update"
	"github.com/stretchr/testify/require"
)

func newAnt(t *testing.T, tour []int, fitness int64) *ant.Ant {
	t.Helper()
	a, err := ant.New(len(tour)-1, 0)
	require.NoError(t, err)
	copy(a.Tour, tour)
	a.Fitness = fitness
	return a
}

func lineDist(n int) [][]int64 {
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			dist[i][j] = int64(d)
		}
	}
	return dist
}

func fullNeighbors(n int) [][]int {
	neighbors := make([][]int, n)
	for i := range neighbors {
		for j := 0; j < n; j++ {
			if j != i {
				neighbors[i] = append(neighbors[i], j)
			}
		}
	}
	return neighbors
}

func TestApplyASDepositsOnEveryAntsArcs(t *testing.T) {
	m, err := pheromone.NewMatrix(4)
	require.NoError(t, err)
	m.InitTrails(0.1)

	pool := []*ant.Ant{
		newAnt(t, []int{0, 1, 2, 3, 0}, 10),
		newAnt(t, []int{0, 2, 1, 3, 0}, 4),
	}
	e := update.NewEngine(update.AS, update.Params{Alpha: 1, Beta: 2, Rho: 0.1})
	data := update.IterationData{
		Pool: pool, Iteration: 1, LSOn: false,
		Dist: lineDist(4), Neighbors: fullNeighbors(4),
	}

	restarted, err := e.Apply(m, data, rng.New(1))
	require.NoError(t, err)
	require.False(t, restarted)

	// only the first ant's tour contains the arc (0,1); the second ant's
	// tour visits 0->2->1->3->0 and never deposits there.
	want := 0.1*0.9 + 1.0/10
	require.InDelta(t, want, m.Tau(0, 1), 1e-9)
}

func TestApplyEASAddsElitistDepositOnBest(t *testing.T) {
	m, err := pheromone.NewMatrix(3)
	require.NoError(t, err)
	m.InitTrails(0.0)

	best := newAnt(t, []int{0, 1, 2, 0}, 5)
	pool := []*ant.Ant{best}
	e := update.NewEngine(update.EAS, update.Params{Alpha: 1, Beta: 2, Rho: 0.0, ElitistAnts: 3})
	data := update.IterationData{
		Pool: pool, BestSoFar: best, Iteration: 1, LSOn: false,
		Dist: lineDist(3), Neighbors: fullNeighbors(3),
	}

	_, err = e.Apply(m, data, rng.New(1))
	require.NoError(t, err)

	want := 1.0/5 + 3.0/5
	require.InDelta(t, want, m.Tau(0, 1), 1e-9)
}

func TestApplyEASRequiresBestSoFar(t *testing.T) {
	m, err := pheromone.NewMatrix(3)
	require.NoError(t, err)
	pool := []*ant.Ant{newAnt(t, []int{0, 1, 2, 0}, 5)}
	e := update.NewEngine(update.EAS, update.Params{Alpha: 1, Beta: 2, Rho: 0.1, ElitistAnts: 3})
	data := update.IterationData{Pool: pool, Dist: lineDist(3), Neighbors: fullNeighbors(3)}

	_, err = e.Apply(m, data, rng.New(1))
	require.ErrorIs(t, err, update.ErrMissingBest)
}

func TestApplyRASWeightsByRank(t *testing.T) {
	m, err := pheromone.NewMatrix(3)
	require.NoError(t, err)
	m.InitTrails(0.0)

	best := newAnt(t, []int{0, 1, 2, 0}, 2)
	mid := newAnt(t, []int{0, 1, 2, 0}, 4)
	worst := newAnt(t, []int{0, 1, 2, 0}, 8)
	e := update.NewEngine(update.RAS, update.Params{Alpha: 1, Beta: 2, Rho: 0.1, RasRanks: 3})
	data := update.IterationData{
		Pool: []*ant.Ant{worst, best, mid}, BestSoFar: best, Iteration: 1,
		Dist: lineDist(3), Neighbors: fullNeighbors(3),
	}

	_, err = e.Apply(m, data, rng.New(1))
	require.NoError(t, err)

	// rank1=best deposits (3-1)/2=1.0, rank2=mid deposits (3-2)/4=0.25, plus
	// best-so-far deposits 3/2=1.5 -> total on arc (0,1) = 1.0+0.25+1.5
	want := (3-1)/2.0 + (3-2)/4.0 + 3/2.0
	require.InDelta(t, want, m.Tau(0, 1), 1e-9)
}

func TestApplyMMASUsesIterationBestWhenNotOnSchedule(t *testing.T) {
	m, err := pheromone.NewMatrix(3)
	require.NoError(t, err)
	m.InitTrails(0.0)

	iterBest := newAnt(t, []int{0, 1, 2, 0}, 5)
	e := update.NewEngine(update.MMAS, update.Params{Alpha: 1, Beta: 2, Rho: 0.1, TrailMin: 0.01, TrailMax: 5})
	data := update.IterationData{
		Pool:          []*ant.Ant{iterBest},
		IterationBest: iterBest,
		BestSoFar:     iterBest,
		RestartBest:   iterBest,
		Iteration:     1, // 1 % 25 != 0 -> iteration-best branch
		Dist:          lineDist(3), Neighbors: fullNeighbors(3),
	}

	_, err = e.Apply(m, data, rng.New(1))
	require.NoError(t, err)
	require.InDelta(t, 1.0/5, m.Tau(0, 1), 1e-9)
}

func TestApplyMMASEnforcesTrailLimitsWithoutLocalSearch(t *testing.T) {
	m, err := pheromone.NewMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.SetTau(0, 1, 500))
	require.NoError(t, m.SetTau(1, 0, 500))

	best := newAnt(t, []int{0, 1, 2, 0}, 5)
	e := update.NewEngine(update.MMAS, update.Params{Alpha: 1, Beta: 2, Rho: 0.1, TrailMin: 0.01, TrailMax: 2})
	data := update.IterationData{
		Pool: []*ant.Ant{best}, IterationBest: best, BestSoFar: best, RestartBest: best,
		Iteration: 1, LSOn: false,
		Dist: lineDist(3), Neighbors: fullNeighbors(3),
	}

	_, err = e.Apply(m, data, rng.New(1))
	require.NoError(t, err)
	require.LessOrEqual(t, m.Tau(0, 1), 2.0)
}

func TestApplyACSUsesCoupledUpdateOnBestArcsOnly(t *testing.T) {
	m, err := pheromone.NewMatrix(4)
	require.NoError(t, err)
	m.InitTrails(1.0)

	best := newAnt(t, []int{0, 1, 2, 3, 0}, 4)
	e := update.NewEngine(update.ACS, update.Params{Rho: 0.1})
	data := update.IterationData{
		Pool: []*ant.Ant{best}, BestSoFar: best, Iteration: 1,
		Dist: lineDist(4), Neighbors: fullNeighbors(4),
	}

	_, err = e.Apply(m, data, rng.New(1))
	require.NoError(t, err)

	want := 0.9*1.0 + 0.1*(1.0/4)
	require.InDelta(t, want, m.Tau(0, 1), 1e-9)
	// the (0,2) diagonal is not an arc of best's tour and ACS has no global
	// evaporation step, so it keeps its initial value
	require.InDelta(t, 1.0, m.Tau(0, 2), 1e-9)
}

func TestApplyBWASTriggersRestartOnLowHammingDistance(t *testing.T) {
	m, err := pheromone.NewMatrix(4)
	require.NoError(t, err)
	m.InitTrails(1.0)

	best := newAnt(t, []int{0, 1, 2, 3, 0}, 2)
	worst := newAnt(t, []int{0, 1, 2, 3, 0}, 9) // identical tour: Hamming distance 0
	e := update.NewEngine(update.BWAS, update.Params{Rho: 0.1, Tau0: 0.3})
	data := update.IterationData{
		Pool: []*ant.Ant{best, worst}, BestSoFar: best, WorstAnt: worst,
		Iteration: 10, Progress: 0.0,
		Dist: lineDist(4), Neighbors: fullNeighbors(4),
	}

	restarted, err := e.Apply(m, data, rng.New(1))
	require.NoError(t, err)
	require.True(t, restarted)
	require.Equal(t, 0.3, m.Tau(0, 1))
}

func TestApplyBWASNoRestartOnHighHammingDistance(t *testing.T) {
	m, err := pheromone.NewMatrix(5)
	require.NoError(t, err)
	m.InitTrails(1.0)

	best := newAnt(t, []int{0, 1, 2, 3, 4, 0}, 2)
	worst := newAnt(t, []int{0, 4, 3, 2, 1, 0}, 9)
	e := update.NewEngine(update.BWAS, update.Params{Rho: 0.1, Tau0: 0.3})
	data := update.IterationData{
		Pool: []*ant.Ant{best, worst}, BestSoFar: best, WorstAnt: worst,
		Iteration: 10, Progress: 0.0,
		Dist: lineDist(5), Neighbors: fullNeighbors(5),
	}

	restarted, err := e.Apply(m, data, rng.New(1))
	require.NoError(t, err)
	require.False(t, restarted)
}

func TestApplyRejectsUnknownAlgorithm(t *testing.T) {
	m, err := pheromone.NewMatrix(3)
	require.NoError(t, err)
	e := update.NewEngine(update.Algorithm(99), update.Params{})
	data := update.IterationData{Pool: []*ant.Ant{newAnt(t, []int{0, 1, 2, 0}, 1)}}

	_, err = e.Apply(m, data, rng.New(1))
	require.ErrorIs(t, err, update.ErrUnknownAlgorithm)
}

func TestApplyRejectsEmptyPool(t *testing.T) {
	m, err := pheromone.NewMatrix(3)
	require.NoError(t, err)
	e := update.NewEngine(update.AS, update.Params{Rho: 0.1})
	data := update.IterationData{Dist: lineDist(3), Neighbors: fullNeighbors(3)}

	_, err = e.Apply(m, data, rng.New(1))
	require.ErrorIs(t, err, update.ErrEmptyPool)
}
