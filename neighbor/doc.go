// Package neighbor builds the fixed-depth nearest-neighbour candidate lists
// used to restrict both tour construction (standard/ACS probabilistic
// selection, and the candidate-list fallback scan) and local search (2-opt,
// 2.5-opt and segment-relocation move generation) to a bounded set of arcs
// per city, rather than scanning all n-1 other cities.
//
// Depth is max(listSize, antCount), capped at n-1, matching the original
// engine's compute_nn_lists(): the solver passes the local-search list size
// as listSize and the construction candidate depth (nn_ants) as antCount, so
// every list is deep enough for both consumers.
package neighbor
