package solver

import "github.com/fenwicklab/thopaco/pheromone"

// branchingFactor computes the node branching factor λ: for every city,
// count the outgoing arcs whose τ is within lambdaFrac of that city's
// maximum outgoing τ, then average the count across cities. A low λ
// (most cities down to one or two "good" arcs) signals the colony has
// converged onto a small set of trails and is the MMAS restart trigger.
func branchingFactor(pher *pheromone.Matrix, lambdaFrac float64) float64 {
	n := pher.N()
	if n == 0 {
		return 0
	}
	var total int
	for i := 0; i < n; i++ {
		maxTau := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if t := pher.Tau(i, j); t > maxTau {
				maxTau = t
			}
		}
		threshold := maxTau * lambdaFrac
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if pher.Tau(i, j) >= threshold {
				total++
			}
		}
	}
	return float64(total) / float64(n)
}
