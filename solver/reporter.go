package solver

import (
	"time"

	"github.com/fenwicklab/thopaco/ant"
)

// Reporter receives progress notifications from a running try. cmd/thop
// supplies the concrete file-backed implementation (the --log report line
// and end-of-try summary line); solver itself stays free of any I/O.
type Reporter interface {
	// NewBest is called whenever a try finds a strictly better best-so-far.
	NewBest(try, iteration int, best *ant.Ant, elapsed time.Duration)

	// TrySummary is called once at the end of each try.
	TrySummary(try, iterations int, best *ant.Ant, elapsed time.Duration)
}

// NopReporter discards every notification. It is the default when the
// caller does not need progress reporting (tests, calibration mode).
type NopReporter struct{}

func (NopReporter) NewBest(try, iteration int, best *ant.Ant, elapsed time.Duration)    {}
func (NopReporter) TrySummary(try, iterations int, best *ant.Ant, elapsed time.Duration) {}
