// Package ant defines the per-ant solution representation shared by
// construction, local search, the packing evaluator, and pheromone update:
// a closed tour, a visited-city bitset, a packing plan over the item set,
// and the resulting fitness.
//
// Tour is stored closed: Tour[0]==Start, Tour[n-2]==End, Tour[n-1]==Sentinel,
// and Tour[n]==Tour[0] so every consumer can read an edge as
// (Tour[i], Tour[i+1]) without special-casing the wraparound.
package ant
