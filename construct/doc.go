// Package construct builds one tour per ant, step by step, using the
// pheromone/heuristic combined-information matrix and each city's
// neighbour list to restrict candidates.
//
// Two selection rules are supported: the standard roulette-wheel rule used
// by AS/EAS/RAS/MMAS/BWAS, and the ACS rule, which substitutes a
// deterministic argmax pick with probability q0 and otherwise falls back to
// the standard rule. Both rules fall back to an unrestricted linear scan
// over all cities when every neighbour-list candidate is already visited,
// per the "correctness fallback, not a performance path" note.
package construct
