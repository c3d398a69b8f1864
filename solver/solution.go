package solver

import (
	"fmt"
	"io"
	"strings"

	"github.com/fenwicklab/thopaco/ant"
	"github.com/fenwicklab/thopaco/instance"
)

// WriteSolution writes best in the two-line solution format: the 1-based
// cities visited (excluding start, end and the sentinel) that carry at
// least one picked item, then the 1-based picked item indices. Grounded on
// inout.c's save_best_thop_solution bracket/comma bookkeeping.
func WriteSolution(w io.Writer, inst *instance.Instance, best *ant.Ant) error {
	carriesItem := make([]bool, inst.N)
	for j, it := range inst.Items {
		if best.PackingPlan[j] {
			carriesItem[it.City] = true
		}
	}

	var cities []string
	for i := 1; i < inst.N-2; i++ { // exclude start(pos 0), end(pos N-2), sentinel(pos N-1)
		c := best.Tour[i]
		if carriesItem[c] {
			cities = append(cities, fmt.Sprintf("%d", c+1))
		}
	}

	var items []string
	for j, it := range best.PackingPlan {
		if it {
			items = append(items, fmt.Sprintf("%d", j+1))
		}
	}

	if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(cities, ",")); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(items, ","))
	return err
}
