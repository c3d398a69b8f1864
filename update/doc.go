// Package update applies the per-iteration pheromone update: evaporation,
// a per-algorithm deposit rule, trail-limit enforcement, and a combined-info
// refresh. One Engine instance owns the small amount of state a run needs
// across iterations (the MMAS u_gb schedule position, BWAS's restart
// bookkeeping).
package update
