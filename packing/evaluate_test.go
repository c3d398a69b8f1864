package packing_test

import (
	"testing"

	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/instance"
	"github.com/fenwicklab/thopaco/packing"
	"github.com/fenwicklab/thopaco/rng"
	"github.com/stretchr/testify/require"
)

func sampleInstance() *instance.Instance {
	return &instance.Instance{
		N:        4,
		M:        1,
		Capacity: 10,
		MaxTime:  100,
		MinSpeed: 1,
		MaxSpeed: 2,
		Dist: [][]int64{
			{0, 1, 2, 0},
			{1, 0, 1, 5},
			{2, 1, 0, 0},
			{0, 5, 0, 0},
		},
		Items: []instance.Item{{Profit: 10, Weight: 5, City: 1}},
		UB:    10,
	}
}

func TestEvaluateAdmitsAffordableItemWithinBudget(t *testing.T) {
	inst := sampleInstance()
	a, err := ant.New(4, 1)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 0}

	require.NoError(t, packing.Evaluate(inst, a, 1, rng.New(1)))
	require.True(t, a.PackingPlan[0])
	require.Equal(t, inst.UB+1-10, a.Fitness)
}

func TestEvaluateRejectsItemOverCapacity(t *testing.T) {
	inst := sampleInstance()
	inst.Items[0].Weight = 11 // exceeds capacity of 10
	a, err := ant.New(4, 1)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 0}

	require.NoError(t, packing.Evaluate(inst, a, 1, rng.New(1)))
	require.False(t, a.PackingPlan[0])
	require.Equal(t, inst.UB+1, a.Fitness)
}

func TestEvaluateRejectsItemViolatingTimeBudget(t *testing.T) {
	inst := sampleInstance()
	inst.MaxTime = 0.01 // too tight to carry anything
	a, err := ant.New(4, 1)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 0}

	require.NoError(t, packing.Evaluate(inst, a, 1, rng.New(1)))
	require.False(t, a.PackingPlan[0])
}

func TestEvaluateRejectsInvalidTries(t *testing.T) {
	inst := sampleInstance()
	a, err := ant.New(4, 1)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 0}

	err = packing.Evaluate(inst, a, 0, rng.New(1))
	require.ErrorIs(t, err, packing.ErrInvalidTries)
}

func TestEvaluateRejectsTourSizeMismatch(t *testing.T) {
	inst := sampleInstance()
	a, err := ant.New(3, 1)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 0}

	err = packing.Evaluate(inst, a, 1, rng.New(1))
	require.ErrorIs(t, err, packing.ErrTourSizeMismatch)
}

func TestEvaluatePicksBestOfMultipleTries(t *testing.T) {
	inst := sampleInstance()
	inst.M = 2
	inst.Items = []instance.Item{
		{Profit: 10, Weight: 5, City: 1},
		{Profit: 3, Weight: 6, City: 1},
	}
	a, err := ant.New(4, 2)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 0}

	require.NoError(t, packing.Evaluate(inst, a, 5, rng.New(7)))
	// Weights 5 and 6 can never both fit in a capacity-10 knapsack, so
	// exactly one item is admitted regardless of which sorts first.
	count := 0
	for _, chosen := range a.PackingPlan {
		if chosen {
			count++
		}
	}
	require.Equal(t, 1, count)
	// Both items sit at the same city, so the profit-10/weight-5 item always
	// scores ahead of the profit-3/weight-6 one; the best plan carries it.
	require.True(t, a.PackingPlan[0])
}
