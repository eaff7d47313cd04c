package mst_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/mst"
)

// ExampleKruskal builds a small weighted graph and prints the MST edges
// in acceptance order together with the total weight.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	edges, total, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("%s-%s (%.0f)\n", e.From, e.To, e.Weight)
	}
	fmt.Printf("total: %.0f\n", total)

	// Output:
	// A-B (1)
	// B-C (2)
	// total: 3
}

// ExamplePrim grows the same tree from a chosen root.
func ExamplePrim() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	_, total, err := mst.Prim(g, "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("total: %.0f\n", total)

	// Output:
	// total: 3
}

// ExampleCompute shows the dispatcher with a step-by-step trace.
func ExampleCompute() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 2)

	_, _, _ = mst.Compute(g,
		mst.WithMethod(mst.MethodKruskal),
		mst.WithOnAccept(func(e core.Edge, running float64) {
			fmt.Printf("accept %s-%s, running total %.0f\n", e.From, e.To, running)
		}),
	)

	// Output:
	// accept B-C, running total 1
	// accept A-C, running total 3
}
