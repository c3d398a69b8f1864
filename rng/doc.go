// Package rng provides the single deterministic random stream shared by
// every stochastic component of thopaco (tour construction, the ACS q0 test,
// BWAS pheromone mutation, and the packing evaluator's score weights).
//
// Design goals:
//   - Determinism: the same seed produces identical behaviour on every run.
//   - Encapsulation: one factory, no time-based sources anywhere.
//   - Safety: no panics; callers own the single *Stream for a run.
//
// Concurrency: a *Stream is not goroutine-safe (it wraps *math/rand.Rand).
// thopaco runs each trial single-threaded, so one Stream is created per
// solver run and threaded through every component that needs randomness.
package rng
