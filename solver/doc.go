// Package solver owns the trial driver: the per-try loop that wires
// instance, pheromone matrix, neighbour lists, ant pool, constructor, local
// search and the update engine together, and the Config/defaults that the
// CLI binds to.
//
// A Solver is the explicit context the rest of the design notes call for:
// every buffer it owns (the pheromone matrix, the ant pool, the best-so-far
// records) is allocated once in NewSolver and mutated in place for the
// lifetime of a run. Nothing here is a package-global singleton.
package solver
