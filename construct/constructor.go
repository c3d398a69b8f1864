package construct

import (
	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/pheromone"
	"github.com/fenwicklab/thopaco/rng"
)

// Constructor builds tours over a fixed neighbour-list topology.
type Constructor struct {
	Neighbors [][]int
	Params    Params
}

// New returns a Constructor bound to the given per-city neighbour lists.
func New(neighbors [][]int, params Params) *Constructor {
	return &Constructor{Neighbors: neighbors, Params: params}
}

// ConstructAll builds a fresh tour for every ant in pool, in order.
func (c *Constructor) ConstructAll(pool []*ant.Ant, pher *pheromone.Matrix, stream *rng.Stream) error {
	for _, a := range pool {
		if err := c.ConstructOne(a, pher, stream); err != nil {
			return err
		}
	}
	return nil
}

// ConstructOne resets a and fills it with a single new tour: positions 0,
// n-2 and n-1 are pinned by Reset, then positions 1..n-3 are filled one
// city at a time by the selection rule, and finally the tour is closed.
func (c *Constructor) ConstructOne(a *ant.Ant, pher *pheromone.Matrix, stream *rng.Stream) error {
	n := len(a.Tour) - 1
	if len(c.Neighbors) != n {
		return ErrSizeMismatch
	}

	a.Reset()
	prev := a.Tour[0]
	for step := 1; step <= n-3; step++ {
		next, err := c.chooseNext(prev, a, pher, stream)
		if err != nil {
			return err
		}
		a.Tour[step] = next
		a.Visited[next] = true
		if c.Params.ACS {
			if err := pher.LocalUpdate(prev, next, c.Params.Xi, c.Params.Tau0); err != nil {
				return err
			}
		}
		prev = next
	}

	end := a.Tour[n-2]
	if c.Params.ACS {
		if err := pher.LocalUpdate(prev, end, c.Params.Xi, c.Params.Tau0); err != nil {
			return err
		}
	}
	a.Tour[n] = a.Tour[0]
	return nil
}

// chooseNext picks the next city to visit from cur, per the standard or ACS
// rule, falling back to an unrestricted linear scan when the neighbour
// list's candidates are exhausted.
func (c *Constructor) chooseNext(cur int, a *ant.Ant, pher *pheromone.Matrix, stream *rng.Stream) (int, error) {
	nbrs := c.Neighbors[cur]
	limit := c.Params.NNAnts
	if limit > len(nbrs) {
		limit = len(nbrs)
	}
	candidates := make([]int, 0, limit)
	for i := 0; i < limit; i++ {
		j := nbrs[i]
		if !a.Visited[j] {
			candidates = append(candidates, j)
		}
	}

	if c.Params.ACS {
		q := stream.Float64()
		if q <= c.Params.Q0 {
			if best, ok := argmaxTotal(candidates, cur, pher); ok {
				return best, nil
			}
			return c.fallback(cur, a, pher)
		}
	}

	if len(candidates) == 0 {
		return c.fallback(cur, a, pher)
	}

	weights := make([]float64, len(candidates))
	var sum float64
	for i, j := range candidates {
		weights[i] = pher.Total(cur, j)
		sum += weights[i]
	}
	if sum <= 0 {
		return c.fallback(cur, a, pher)
	}

	r := stream.Float64() * sum
	var acc float64
	for i, w := range weights {
		acc += w
		if r < acc {
			return candidates[i], nil
		}
	}
	return candidates[len(candidates)-1], nil
}

// fallback scans every city once and picks the unvisited one maximising
// total[cur][j], ties broken by lowest index (first strictly-greater value
// wins during the ascending scan).
func (c *Constructor) fallback(cur int, a *ant.Ant, pher *pheromone.Matrix) (int, error) {
	best := -1
	var bestVal float64
	for j := 0; j < len(a.Visited); j++ {
		if a.Visited[j] {
			continue
		}
		v := pher.Total(cur, j)
		if best == -1 || v > bestVal {
			best = j
			bestVal = v
		}
	}
	if best == -1 {
		return 0, ErrNoCandidate
	}
	return best, nil
}

// argmaxTotal returns the candidate maximising total[cur][j], ties broken
// by lowest index.
func argmaxTotal(candidates []int, cur int, pher *pheromone.Matrix) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	best := candidates[0]
	bestVal := pher.Total(cur, best)
	for _, j := range candidates[1:] {
		v := pher.Total(cur, j)
		if v > bestVal {
			best = j
			bestVal = v
		}
	}
	return best, true
}
