package solver_test

import (
	"fmt"
	"strings"

	"github.com/fenwicklab/thopaco/instance"
	"github.com/fenwicklab/thopaco/solver"
	"github.com/fenwicklab/thopaco/update"
)

// ExampleNewSolver runs a single short try of MMAS without local search on a
// four-city instance and prints whether the best fitness is within UB+1.
func ExampleNewSolver() {
	const file = `PROBLEM NAME: toy
KNAPSACK DATA TYPE: bounded strongly corr
DIMENSION: 4
NUMBER OF ITEMS: 1
CAPACITY OF KNAPSACK: 10
MAX TIME: 100.0
MIN SPEED: 0.5
MAX SPEED: 1.0
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION (INDEX, X, Y):
1 0 0
2 10 0
3 10 10
4 0 10
ITEMS SECTION (INDEX, PROFIT, WEIGHT, ASSIGNED NODE NUMBER):
1 50 5 2
`
	inst, err := instance.Load(strings.NewReader(file))
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}

	cfg := solver.DefaultConfig(update.MMAS, false)
	cfg.NAnts, cfg.NNAnts, cfg.NNLS = 4, 3, 3
	cfg.MaxTries, cfg.MaxTours, cfg.MaxTime = 1, 10, 1
	cfg.PackingTries, cfg.Seed = 2, 7

	s, err := solver.NewSolver(inst, cfg, nil, nil)
	if err != nil {
		fmt.Println("setup failed:", err)
		return
	}

	best, err := s.RunAll()
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}
	fmt.Println(best.Fitness <= inst.UB+1)

	// Output:
	// true
}
