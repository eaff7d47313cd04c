package core_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// ExampleGraph_Neighbors builds a small undirected square and lists the
// neighbors of one corner in deterministic order.
//
//	A───B
//	│   │
//	C───D
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("C", "D", 0)

	ids, _ := g.NeighborIDs("A")
	fmt.Println(ids)
	// Output: [B C]
}
