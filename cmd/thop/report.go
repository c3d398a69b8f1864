package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/fenwicklab/thopaco/ant"
)

// fileReporter writes a line on every new best-so-far and a one-line
// per-try summary, the way inout.c's write_report/exit_program append to
// the run's log file. Grounded on that log-file behaviour, not on any Go
// logging library, since nothing in the retrieval pack imports one.
type fileReporter struct {
	logger *log.Logger
}

func newFileReporter(logPath, outputPath string) (*fileReporter, func(), error) {
	if logPath == "" && outputPath != "" {
		logPath = outputPath + ".log"
	}
	if logPath == "" {
		return &fileReporter{logger: log.New(io.Discard, "", 0)}, func() {}, nil
	}

	f, err := os.Create(logPath)
	if err != nil {
		return nil, nil, err
	}
	return &fileReporter{logger: log.New(f, "", log.LstdFlags)}, func() { f.Close() }, nil
}

func (r *fileReporter) NewBest(try, iteration int, best *ant.Ant, elapsed time.Duration) {
	r.logger.Printf("try %d iter %d: new best fitness=%d elapsed=%s", try, iteration, best.Fitness, elapsed)
}

func (r *fileReporter) TrySummary(try, iterations int, best *ant.Ant, elapsed time.Duration) {
	r.logger.Printf("try %d done: iterations=%d best_fitness=%d elapsed=%s", try, iterations, best.Fitness, elapsed)
}
