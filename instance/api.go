package instance

// NearestNeighbourTourLength computes the length of a greedy nearest-
// neighbour tour starting at city 0 and visiting every other city exactly
// once before returning to the start. It is used only to scale the initial
// pheromone value trail_0; it has no bearing on solution quality and is
// computed once per run.
func (inst *Instance) NearestNeighbourTourLength() int64 {
	n := inst.N
	visited := make([]bool, n)
	visited[0] = true

	cur := 0
	var total int64
	for visited_count := 1; visited_count < n; visited_count++ {
		best := -1
		var bestDist int64
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d := inst.Dist[cur][j]
			if best == -1 || d < bestDist {
				best = j
				bestDist = d
			}
		}
		visited[best] = true
		total += bestDist
		cur = best
	}
	total += inst.Dist[cur][0]
	return total
}
