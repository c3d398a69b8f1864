package neighbor

import (
	"math"
	"sort"
)

// Build computes, for every city, the depth nearest other cities by
// distance, ascending, excluding the city itself. depth is
// min(max(listSize, antCount), n-1).
//
// Build is grounded on thop.c compute_nn_lists(): copy each row of the
// distance matrix, mark the diagonal entry unreachable so a city is never
// its own neighbour, stable-sort by distance, and keep the first depth
// entries.
func Build(dist [][]int64, listSize, antCount int) ([][]int, error) {
	n := len(dist)
	if n < 2 {
		return nil, ErrInvalidDistance
	}
	for _, row := range dist {
		if len(row) != n {
			return nil, ErrInvalidDistance
		}
	}
	if listSize <= 0 || antCount <= 0 {
		return nil, ErrInvalidDepth
	}

	depth := listSize
	if antCount > depth {
		depth = antCount
	}
	if depth >= n {
		depth = n - 1
	}

	lists := make([][]int, n)
	for city := 0; city < n; city++ {
		idx := make([]int, n)
		d := make([]int64, n)
		for j := 0; j < n; j++ {
			idx[j] = j
			d[j] = dist[city][j]
		}
		d[city] = math.MaxInt64

		sort.SliceStable(idx, func(a, b int) bool {
			return d[idx[a]] < d[idx[b]]
		})

		lists[city] = append([]int(nil), idx[:depth]...)
	}
	return lists, nil
}
