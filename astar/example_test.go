package astar_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/astar"
)

// ExampleSearch finds the cheapest route through a weighted diamond.
func ExampleSearch() {
	space := adjacency{
		"A": {{ID: "B", Cost: 1}, {ID: "C", Cost: 5}, {ID: "D", Cost: 10}},
		"B": {{ID: "D", Cost: 2}},
		"C": {{ID: "D", Cost: 5}},
	}

	res, err := astar.Search[string](space, "A", "D", astar.Zero[string])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("path=%v cost=%.0f\n", res.Path, res.Cost)
	// Output: path=[A B D] cost=3
}
