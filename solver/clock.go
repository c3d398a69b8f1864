package solver

import "time"

// Clock abstracts elapsed-time reading so a try's termination condition can
// be driven by a fake clock in tests instead of wall time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns the Clock backed by the actual wall clock.
func RealClock() Clock { return realClock{} }
