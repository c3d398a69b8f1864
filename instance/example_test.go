package instance_test

import (
	"fmt"
	"strings"

	"github.com/fenwicklab/thopaco/instance"
)

// ExampleLoad parses a minimal four-city instance and reports its derived
// fields: the sentinel-inclusive city count, and the fractional-knapsack
// upper bound used to convert profit maximisation into fitness minimisation.
func ExampleLoad() {
	const file = `PROBLEM NAME: toy
KNAPSACK DATA TYPE: bounded strongly corr
DIMENSION: 4
NUMBER OF ITEMS: 1
CAPACITY OF KNAPSACK: 10
MAX TIME: 100.0
MIN SPEED: 0.1
MAX SPEED: 1.0
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION (INDEX, X, Y):
1 0 0
2 10 0
3 10 10
4 0 10
ITEMS SECTION (INDEX, PROFIT, WEIGHT, ASSIGNED NODE NUMBER):
1 50 5 2
`
	inst, err := instance.Load(strings.NewReader(file))
	if err != nil {
		fmt.Println("load failed:", err)
		return
	}
	fmt.Printf("cities (incl. sentinel): %d, upper bound: %d\n", inst.N, inst.UB)

	// Output:
	// cities (incl. sentinel): 5, upper bound: 50
}
