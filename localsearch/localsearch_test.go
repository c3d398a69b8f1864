package localsearch_test

import (
	"testing"

	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/localsearch"
	"github.com/fenwicklab/thopaco/neighbor"
	"github.com/stretchr/testify/require"
)

// lineInstance returns a 6-node distance matrix (5 real cities on a line at
// x=0..4 plus an unused sentinel slot) and full neighbour lists.
func lineInstance(t *testing.T) ([][]int64, [][]int) {
	t.Helper()
	n := 6
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i != j {
				d := i - j
				if d < 0 {
					d = -d
				}
				dist[i][j] = int64(d)
			}
		}
	}
	neighbors, err := neighbor.Build(dist, 4, 1)
	require.NoError(t, err)
	return dist, neighbors
}

func TestRunTwoOptImprovesCrossedTour(t *testing.T) {
	dist, neighbors := lineInstance(t)
	a, err := ant.New(6, 0)
	require.NoError(t, err)
	a.Tour = []int{0, 3, 1, 2, 4, 5, 0}

	before := ant.TourLength(a.Tour, dist)
	require.NoError(t, localsearch.Run(a, dist, neighbors, localsearch.TwoOpt, 4, true))
	after := ant.TourLength(a.Tour, dist)

	require.Less(t, after, before)
	require.NoError(t, a.Validate())
	require.Equal(t, 0, a.Tour[0])
	require.Equal(t, 4, a.Tour[4])
	require.Equal(t, 5, a.Tour[5])
	require.Equal(t, a.Tour[0], a.Tour[6])
}

func TestRunReachesLocalOptimumOnAlreadyGoodTour(t *testing.T) {
	dist, neighbors := lineInstance(t)
	a, err := ant.New(6, 0)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 4, 5, 0}

	before := ant.TourLength(a.Tour, dist)
	require.NoError(t, localsearch.Run(a, dist, neighbors, localsearch.TwoOpt, 4, true))
	after := ant.TourLength(a.Tour, dist)

	require.Equal(t, before, after)
}

func TestRunTwoHalfOptAndThreeOptAcceptAnyValidVariant(t *testing.T) {
	dist, neighbors := lineInstance(t)
	for _, variant := range []localsearch.Variant{localsearch.TwoOpt, localsearch.TwoHalfOpt, localsearch.ThreeOpt} {
		a, err := ant.New(6, 0)
		require.NoError(t, err)
		a.Tour = []int{0, 3, 1, 2, 4, 5, 0}

		require.NoError(t, localsearch.Run(a, dist, neighbors, variant, 4, true))
		require.NoError(t, a.Validate())
	}
}

func TestRunWithoutDLBMatchesWithDLBResultQuality(t *testing.T) {
	dist, neighbors := lineInstance(t)

	a1, err := ant.New(6, 0)
	require.NoError(t, err)
	a1.Tour = []int{0, 3, 1, 2, 4, 5, 0}
	require.NoError(t, localsearch.Run(a1, dist, neighbors, localsearch.TwoOpt, 4, true))

	a2, err := ant.New(6, 0)
	require.NoError(t, err)
	a2.Tour = []int{0, 3, 1, 2, 4, 5, 0}
	require.NoError(t, localsearch.Run(a2, dist, neighbors, localsearch.TwoOpt, 4, false))

	require.Equal(t, ant.TourLength(a1.Tour, dist), ant.TourLength(a2.Tour, dist))
}

func TestRunRejectsUnknownVariant(t *testing.T) {
	dist, neighbors := lineInstance(t)
	a, err := ant.New(6, 0)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 4, 5, 0}

	err = localsearch.Run(a, dist, neighbors, localsearch.Variant(99), 4, true)
	require.ErrorIs(t, err, localsearch.ErrUnknownVariant)
}

func TestRunRejectsSizeMismatch(t *testing.T) {
	dist, neighbors := lineInstance(t)
	a, err := ant.New(5, 0)
	require.NoError(t, err)
	a.Tour = []int{0, 1, 2, 3, 0}

	err = localsearch.Run(a, dist, neighbors, localsearch.TwoOpt, 4, true)
	require.ErrorIs(t, err, localsearch.ErrSizeMismatch)
}
