// Command thop runs the ant-colony thief orienteering solver against a
// TSPLIB-derived instance file and writes the best tour/packing plan found.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/fenwicklab/thopaco/instance"
	"github.com/fenwicklab/thopaco/solver"
	"github.com/fenwicklab/thopaco/update"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	cfg, variantChosen, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	inFile, err := os.Open(cfg.InputFile)
	if err != nil {
		fmt.Fprintf(stderr, "thop: %v\n", err)
		return 1
	}
	defer inFile.Close()

	inst, err := instance.Load(inFile)
	if err != nil {
		fmt.Fprintf(stderr, "thop: %v\n", err)
		return 1
	}

	if cfg.MaxTime < 0 {
		cfg.MaxTime = math.Ceil(float64(inst.M) / 10.0)
	}

	if !variantChosen {
		cfg.Algorithm = update.MMAS
	}

	reporter, closeReporter, err := newFileReporter(cfg.LogFile, cfg.OutputFile)
	if err != nil {
		fmt.Fprintf(stderr, "thop: %v\n", err)
		return 1
	}
	defer closeReporter()

	s, err := solver.NewSolver(inst, cfg, reporter, nil)
	if err != nil {
		fmt.Fprintf(stderr, "thop: %v\n", err)
		return 1
	}

	best, err := s.RunAll()
	if err != nil {
		fmt.Fprintf(stderr, "thop: %v\n", err)
		return 1
	}

	profit := inst.UB + 1 - best.Fitness

	if cfg.OutputFile != "" {
		outFile, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(stderr, "thop: %v\n", err)
			return 1
		}
		defer outFile.Close()
		if err := solver.WriteSolution(outFile, inst, best); err != nil {
			fmt.Fprintf(stderr, "thop: %v\n", err)
			return 1
		}
	}

	if cfg.Calibration {
		fmt.Fprintln(stdout, -profit)
	} else {
		fmt.Fprintf(stdout, "Best solution: %d\n", profit)
	}
	return 0
}

// parseFlags binds the CLI surface to a solver.Config, applying the
// variant's literature defaults once the variant flag is known. It reports
// the "more than one variant flag" combination as a ConfigError.
func parseFlags(args []string) (solver.Config, bool, error) {
	fs := flag.NewFlagSet("thop", flag.ContinueOnError)

	var (
		asFlag, easFlag, rasFlag, mmasFlag, bwasFlag, acsFlag bool
		lsOn                                                  int
	)

	inputFile := fs.String("inputfile", "", "instance file to solve")
	outputFile := fs.String("outputfile", "", "solution file to write")
	logFile := fs.String("log", "", "progress log file (default <outputfile>.log)")
	tries := fs.Int("tries", 1, "number of independent tries")
	tours := fs.Int("tours", 1000, "maximum iterations per try")
	ptries := fs.Int("ptries", 1, "randomized packing attempts per ant per iteration")
	maxTime := fs.Float64("time", -1, "wall-clock budget per try, seconds (<0: derive from instance)")
	seed := fs.Int64("seed", 0, "PRNG seed (0 selects a stable default)")
	optimum := fs.Int64("optimum", 0, "stop a try early once best fitness reaches this (<=0: unset)")
	ants := fs.Int("ants", 0, "ant count (0: variant default)")
	nnants := fs.Int("nnants", 0, "construction candidate-list depth (0: variant default)")
	alpha := fs.Float64("alpha", 0, "pheromone weight exponent (0: variant default)")
	beta := fs.Float64("beta", 0, "heuristic weight exponent (0: variant default)")
	rho := fs.Float64("rho", 0, "evaporation rate (0: variant default)")
	q0 := fs.Float64("q0", -1, "ACS exploitation probability (<0: variant default)")
	elitistAnts := fs.Int("elitistants", 0, "EAS elitist weight (0: variant default)")
	rasranks := fs.Int("rasranks", 0, "RAS rank count (0: variant default)")
	localsearch := fs.Int("localsearch", 0, "0=off, 1=2-opt, 2=2.5-opt, 3=2.5-opt plus 2/3-city segment relocation")
	nnls := fs.Int("nnls", 20, "local-search candidate-list depth")
	dlb := fs.Bool("dlb", true, "enable don't-look bits in local search")
	calibration := fs.Bool("calibration", false, "print -profit instead of \"Best solution: <profit>\"")

	fs.BoolVar(&asFlag, "as", false, "use Ant System")
	fs.BoolVar(&easFlag, "eas", false, "use Elitist Ant System")
	fs.BoolVar(&rasFlag, "ras", false, "use Rank-Based Ant System")
	fs.BoolVar(&mmasFlag, "mmas", false, "use MAX-MIN Ant System")
	fs.BoolVar(&bwasFlag, "bwas", false, "use Best-Worst Ant System")
	fs.BoolVar(&acsFlag, "acs", false, "use Ant Colony System")

	if err := fs.Parse(args); err != nil {
		return solver.Config{}, false, err
	}

	variantFlags := 0
	var algo update.Algorithm
	for _, v := range []struct {
		set  bool
		algo update.Algorithm
	}{
		{asFlag, update.AS}, {easFlag, update.EAS}, {rasFlag, update.RAS},
		{mmasFlag, update.MMAS}, {bwasFlag, update.BWAS}, {acsFlag, update.ACS},
	} {
		if v.set {
			variantFlags++
			algo = v.algo
		}
	}
	if variantFlags > 1 {
		return solver.Config{}, false, fmt.Errorf("%w: more than one variant flag set", solver.ErrConfig)
	}
	variantChosen := variantFlags == 1
	if !variantChosen {
		algo = update.MMAS
	}

	lsOn = *localsearch
	cfg := solver.DefaultConfig(algo, lsOn != 0)

	cfg.InputFile = *inputFile
	cfg.OutputFile = *outputFile
	cfg.LogFile = *logFile
	cfg.MaxTries = *tries
	cfg.MaxTours = *tours
	cfg.PackingTries = *ptries
	cfg.MaxTime = *maxTime
	cfg.Seed = *seed
	cfg.Optimum = *optimum
	cfg.LocalSearch = lsOn
	cfg.NNLS = *nnls
	cfg.DLB = *dlb
	cfg.Calibration = *calibration

	if *ants > 0 {
		cfg.NAnts = *ants
	}
	if *nnants > 0 {
		cfg.NNAnts = *nnants
	}
	if *alpha != 0 {
		cfg.Alpha = *alpha
	}
	if *beta != 0 {
		cfg.Beta = *beta
	}
	if *rho != 0 {
		cfg.Rho = *rho
	}
	if *q0 >= 0 {
		cfg.Q0 = *q0
	}
	if *elitistAnts > 0 {
		cfg.ElitistAnts = *elitistAnts
	}
	if *rasranks > 0 {
		cfg.RasRanks = *rasranks
	}

	if *inputFile == "" {
		return solver.Config{}, false, fmt.Errorf("%w: --inputfile is required", solver.ErrConfig)
	}
	if err := cfg.Validate(); err != nil {
		return solver.Config{}, false, err
	}

	return cfg, variantChosen, nil
}
