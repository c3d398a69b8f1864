// Package pheromone implements the dense pheromone trail matrix τ and its
// derived combined-information matrix total[i][j] = τ[i][j]^α · (1/d[i][j])^β.
// Both matrices are symmetric in use: every deposit writes τ[i][j] and
// τ[j][i] together, since readers never assume symmetry holds if only one
// side is written.
//
// Storage uses a single []float64 of length n*n indexed by i*n+j, chosen
// over a [][]float64 for cache-friendly access in the hot construction and
// update loops.
package pheromone
