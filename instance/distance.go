package instance

import "math"

// geoRadius is the TSPLIB earth radius used by the GEO metric.
const geoRadius = 6378.388

// dtrunc truncates toward zero via an int conversion, matching the
// original's dtrunc() (original_source/src/thop.c) bit for bit.
func dtrunc(x float64) float64 {
	return float64(int64(x))
}

// euc2D computes round(sqrt(dx^2+dy^2)) using the classic +0.5 truncation,
// grounded on original_source/src/thop.c round_distance().
func euc2D(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	r := math.Sqrt(dx*dx+dy*dy) + 0.5
	return int64(r)
}

// ceil2D computes ceil(sqrt(dx^2+dy^2)), grounded on thop.c ceil_distance().
func ceil2D(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return int64(math.Ceil(math.Sqrt(dx*dx + dy*dy)))
}

// geo computes the TSPLIB great-circle distance, grounded on
// thop.c geo_distance() (itself adapted from Concorde).
func geo(a, b Point) int64 {
	lat := func(x float64) float64 {
		deg := dtrunc(x)
		min := x - deg
		return math.Pi * (deg + 5.0*min/3.0) / 180.0
	}
	lati, longi := lat(a.X), lat(a.Y)
	latj, longj := lat(b.X), lat(b.Y)

	q1 := math.Cos(longi - longj)
	q2 := math.Cos(lati - latj)
	q3 := math.Cos(lati + latj)
	return int64(geoRadius*math.Acos(0.5*((1.0+q1)*q2-(1.0-q1)*q3)) + 1.0)
}

// att computes the pseudo-Euclidean ATT distance, grounded on
// thop.c att_distance().
func att(a, b Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rij := math.Sqrt((dx*dx + dy*dy) / 10.0)
	tij := dtrunc(rij)
	if tij < rij {
		return int64(tij) + 1
	}
	return int64(tij)
}

// distanceFunc returns the coordinate-pair distance function for a metric.
func distanceFunc(m DistanceMetric) (func(a, b Point) int64, error) {
	switch m {
	case Euc2D:
		return euc2D, nil
	case Ceil2D:
		return ceil2D, nil
	case Geo:
		return geo, nil
	case Att:
		return att, nil
	default:
		return nil, ErrUnknownMetric
	}
}

// parseMetric maps an EDGE_WEIGHT_TYPE token to a DistanceMetric.
func parseMetric(tok string) (DistanceMetric, error) {
	switch tok {
	case "EUC_2D":
		return Euc2D, nil
	case "CEIL_2D":
		return Ceil2D, nil
	case "GEO":
		return Geo, nil
	case "ATT":
		return Att, nil
	default:
		return 0, ErrUnknownMetric
	}
}

// computeDistances builds the full N×N matrix from coords and applies the
// sentinel structural edits, grounded on thop.c compute_distances().
func computeDistances(coords []Point, metric DistanceMetric) ([][]int64, error) {
	fn, err := distanceFunc(metric)
	if err != nil {
		return nil, err
	}
	realN := len(coords)
	n := realN + 1 // + sentinel

	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
	}

	var maxDistance int64
	for i := 0; i < realN; i++ {
		for j := 0; j < realN; j++ {
			d := fn(coords[i], coords[j])
			dist[i][j] = d
			if d > maxDistance {
				maxDistance = d
			}
		}
	}

	inflated := maxDistance * int64(n-1)
	for i := 0; i < n; i++ {
		dist[i][n-1] = inflated
		dist[n-1][i] = inflated
	}
	// Start<->sentinel and end<->sentinel are structurally free so the
	// cyclic bookkeeping edges never distort travel time/length.
	dist[0][n-1], dist[n-1][0] = 0, 0
	dist[n-2][n-1], dist[n-1][n-2] = 0, 0

	return dist, nil
}
