package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Load parses a TSPLIB-derived ThOP instance file from r.
//
// The file is line-oriented: a fixed header block, a NODE_COORD_SECTION
// header line, DIMENSION coordinate lines, an ITEMS SECTION header line,
// and NUMBER OF ITEMS item lines. Item city indices are 1-based in the
// file and converted to 0-based here.
func Load(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	inst := &Instance{}

	var dimension int
	var metricTok string

	fields := map[string]func(string) error{
		"PROBLEM NAME": func(v string) error { inst.Name = strings.TrimSpace(v); return nil },
		"KNAPSACK DATA TYPE": func(v string) error {
			inst.KnapsackDataType = strings.TrimSpace(v)
			return nil
		},
		"DIMENSION": func(v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return ErrMissingField
			}
			dimension = n
			return nil
		},
		"NUMBER OF ITEMS": func(v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return ErrMissingField
			}
			inst.M = n
			return nil
		},
		"CAPACITY OF KNAPSACK": func(v string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return ErrMissingField
			}
			inst.Capacity = n
			return nil
		},
		"MAX TIME": func(v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return ErrMissingField
			}
			inst.MaxTime = f
			return nil
		},
		"MIN SPEED": func(v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return ErrMissingField
			}
			inst.MinSpeed = f
			return nil
		},
		"MAX SPEED": func(v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return ErrMissingField
			}
			inst.MaxSpeed = f
			return nil
		},
		"EDGE_WEIGHT_TYPE": func(v string) error {
			metricTok = strings.TrimSpace(v)
			return nil
		},
	}

	order := []string{
		"PROBLEM NAME", "KNAPSACK DATA TYPE", "DIMENSION", "NUMBER OF ITEMS",
		"CAPACITY OF KNAPSACK", "MAX TIME", "MIN SPEED", "MAX SPEED",
		"EDGE_WEIGHT_TYPE",
	}
	for _, key := range order {
		if !sc.Scan() {
			return nil, ErrTruncated
		}
		line := sc.Text()
		prefix := key + ":"
		if !strings.HasPrefix(line, prefix) {
			return nil, fmt.Errorf("instance: expected %q header: %w", key, ErrMissingField)
		}
		if err := fields[key](strings.TrimPrefix(line, prefix)); err != nil {
			return nil, err
		}
	}

	metric, err := parseMetric(metricTok)
	if err != nil {
		return nil, err
	}
	inst.Metric = metric

	inst.N = dimension + 1
	if inst.N <= 3 || inst.N >= 6000 {
		return nil, ErrBadDimension
	}

	// NODE_COORD_SECTION header line.
	if !sc.Scan() {
		return nil, ErrTruncated
	}

	realN := inst.N - 1
	inst.Coords = make([]Point, realN)
	for i := 0; i < realN; i++ {
		if !sc.Scan() {
			return nil, ErrTruncated
		}
		parts := strings.Fields(sc.Text())
		if len(parts) < 3 {
			return nil, ErrMissingField
		}
		x, err1 := strconv.ParseFloat(parts[1], 64)
		y, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			return nil, ErrMissingField
		}
		inst.Coords[i] = Point{X: x, Y: y}
	}

	// ITEMS SECTION header line.
	if !sc.Scan() {
		return nil, ErrTruncated
	}

	inst.Items = make([]Item, inst.M)
	for i := 0; i < inst.M; i++ {
		if !sc.Scan() {
			return nil, ErrTruncated
		}
		parts := strings.Fields(sc.Text())
		if len(parts) < 4 {
			return nil, ErrMissingField
		}
		profit, err1 := strconv.ParseInt(parts[1], 10, 64)
		weight, err2 := strconv.ParseInt(parts[2], 10, 64)
		city1based, err3 := strconv.Atoi(parts[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, ErrMissingField
		}
		city := city1based - 1
		if city < 0 || city >= realN {
			return nil, ErrBadItemCity
		}
		inst.Items[i] = Item{Profit: profit, Weight: weight, City: city}
	}

	dist, err := computeDistances(inst.Coords, inst.Metric)
	if err != nil {
		return nil, err
	}
	inst.Dist = dist

	inst.UB = computeUB(inst.Items, inst.Capacity)

	return inst, nil
}

// computeUB is the fractional-knapsack profit upper bound, grounded on
// inout.c read_thop_instance(): sort items by profit/weight descending,
// greedily fill, and on the breaking item add the ceil'd fractional profit.
func computeUB(items []Item, capacity int64) int64 {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra := float64(items[idx[a]].Profit) / float64(items[idx[a]].Weight)
		rb := float64(items[idx[b]].Profit) / float64(items[idx[b]].Weight)
		return ra > rb
	})

	var ub int64
	var used int64
	for _, j := range idx {
		it := items[j]
		if used+it.Weight <= capacity {
			used += it.Weight
			ub += it.Profit
			continue
		}
		remaining := capacity - used
		if remaining > 0 {
			frac := float64(remaining) / float64(it.Weight) * float64(it.Profit)
			ub += int64(math.Ceil(frac))
		}
		break
	}
	return ub
}
