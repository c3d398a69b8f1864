// Package instance parses and represents a Thief Orienteering Problem
// instance: cities, the symmetric integer distance matrix (with its
// sentinel-city structural edits), items, the knapsack capacity, the
// speed law, the time budget, and the fractional-knapsack profit upper
// bound UB.
//
// An Instance is immutable after Load returns. City 0 is the fixed start,
// city n-2 is the fixed end, and city n-1 is a bookkeeping sentinel added
// internally that is never a "real" destination: it exists only so ACO
// tour-construction code can close a tour into a cycle without special-
// casing the open start/end semantics of ThOP.
//
// Errors are reported as the package's InstanceError sentinels (see
// errors.go); a malformed or out-of-range instance file is never a panic.
package instance
