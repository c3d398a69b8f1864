package packing

import (
	"math"
	"sort"

	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/instance"
	"github.com/fenwicklab/thopaco/rng"
)

// timeEpsilon absorbs floating-point rounding noise when comparing
// accumulated travel time against the instance's time budget.
const timeEpsilon = 1e-10

// Evaluate searches tries independent randomized greedy packings for a's
// current Tour and writes the best one (by total profit) into a.PackingPlan
// and a.Fitness (UB+1-profit; lower is better).
func Evaluate(inst *instance.Instance, a *ant.Ant, tries int, stream *rng.Stream) error {
	if tries <= 0 {
		return ErrInvalidTries
	}
	if len(a.Tour) != inst.N+1 {
		return ErrTourSizeMismatch
	}

	n := inst.N
	m := inst.M
	end := inst.End()
	v := inst.SpeedSlope()

	distAccum := make([]int64, n)
	var totalDist int64
	for i := 0; i < n; i++ {
		distAccum[a.Tour[i]] = totalDist
		totalDist += inst.Dist[a.Tour[i]][a.Tour[i+1]]
	}

	scores := make([]float64, m)
	order := make([]int, m)
	profitAccum := make([]int64, n)
	weightAccum := make([]int64, n)
	tmpPlan := make([]bool, m)

	var bestProfit int64
	bestPlan := make([]bool, m)

	for try := 0; try < tries; try++ {
		for i := range profitAccum {
			profitAccum[i], weightAccum[i] = 0, 0
		}

		pa, pb, pc := stream.Float64(), stream.Float64(), stream.Float64()
		sum := pa + pb + pc
		pa, pb, pc = pa/sum, pb/sum, pc/sum

		for j, it := range inst.Items {
			denomDist := float64(distAccum[end] - distAccum[it.City])
			scores[j] = -math.Pow(float64(it.Profit), pa) /
				(math.Pow(float64(it.Weight), pb) * math.Pow(denomDist, pc))
			order[j] = j
		}
		sort.SliceStable(order, func(x, y int) bool { return scores[order[x]] < scores[order[y]] })

		var totalWeight, totalProfit int64
		for i := range tmpPlan {
			tmpPlan[i] = false
		}

		for _, j := range order {
			it := inst.Items[j]
			if totalWeight+it.Weight > inst.Capacity {
				continue
			}

			profitAccum[it.City] += it.Profit
			weightAccum[it.City] += it.Weight

			violated := false
			var totalTime float64
			var carriedWeight int64
			prevCity := inst.Start()
			for i := 1; i < n-1; i++ {
				curr := a.Tour[i]
				if weightAccum[curr] == 0 && curr != end {
					continue
				}
				totalTime += float64(inst.Dist[prevCity][curr]) / (inst.MaxSpeed - v*float64(carriedWeight))
				if totalTime-timeEpsilon > inst.MaxTime {
					violated = true
					break
				}
				carriedWeight += weightAccum[curr]
				prevCity = curr
			}

			if !violated {
				totalProfit += it.Profit
				totalWeight += it.Weight
				tmpPlan[j] = true
			} else {
				profitAccum[it.City] -= it.Profit
				weightAccum[it.City] -= it.Weight
			}
		}

		if totalProfit > bestProfit {
			bestProfit = totalProfit
			copy(bestPlan, tmpPlan)
		}
	}

	copy(a.PackingPlan, bestPlan)
	a.Fitness = inst.UB + 1 - bestProfit
	return nil
}
