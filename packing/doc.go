// Package packing implements the randomized greedy packing evaluator: given
// a fixed tour, it searches for a good item-selection (the packing plan)
// subject to the knapsack capacity and a load-dependent travel-time budget,
// and reports the resulting fitness.
//
// Grounded on thop.c compute_fitness(): each of packingTries independent
// attempts draws three random weights a,b,c, scores every item by
// -profit^a / (weight^b * distanceToEnd^c), and greedily admits items in
// that order, re-verifying the full time budget on every admission. The
// best of the packingTries attempts (by total profit) becomes the ant's
// packing plan.
package packing
