// Package thopaco solves the Thief Orienteering Problem (ThOP): given a set
// of cities with pairwise distances, a fixed start and end city, a set of
// items located at cities with profit and weight, a knapsack capacity, a
// load-dependent speed law, and a travel-time budget, find a tour and an
// item selection that maximises total profit.
//
// What is thopaco?
//
//	A population-based stochastic search engine that brings together:
//
//	  - Ant Colony Optimization tour construction under six variants
//	    (AS, EAS, RAS, MMAS, BWAS, ACS)
//	  - Neighbour-restricted tour-level local search (2-opt, 2.5-opt, and a
//	    third variant adding two- and three-city segment relocation; it does
//	    not perform the seven-reconnection 3-opt) with don't-look bits
//	  - A randomised greedy packing-plan evaluator that turns a tour into a
//	    feasible, scored item selection
//
// Under the hood, everything is organized into focused subpackages:
//
//	instance/    — parsed problem: coordinates, distances, items, UB
//	pheromone/   — pheromone trail + combined-info matrices
//	neighbor/    — per-city nearest-neighbour candidate lists
//	ant/         — a candidate solution: tour, visited set, packing plan
//	construct/   — tour construction (standard and ACS selection rules)
//	localsearch/ — 2-opt / 2.5-opt / Or-opt-extended third variant with
//	               don't-look bits
//	packing/     — the randomised packing-plan evaluator
//	update/      — pheromone evaporation + deposit for all six variants
//	solver/      — the per-try trial driver and run-wide solver context
//	rng/         — the single deterministic random stream shared by all of
//	               the above
//	cmd/thop/    — command-line entrypoint
//
// See SPEC_FULL.md and DESIGN.md for the full requirements and grounding.
package thopaco
