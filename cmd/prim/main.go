// Command prim demonstrates Prim's MST grown from a chosen root, and
// cross-checks the total against Kruskal on the same graph.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/mst"
)

func main() {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"1", "2", 4}, {"1", "3", 2}, {"2", "3", 1}, {"2", "4", 3},
		{"3", "4", 5}, {"3", "5", 6}, {"4", "5", 2}, {"4", "6", 7},
		{"5", "6", 4},
	} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			log.Fatalf("add edge %s-%s: %v", e.u, e.v, err)
		}
	}

	fmt.Println("Prim growth from root 1:")
	edges, total, err := mst.Prim(g, "1", mst.WithOnAccept(func(e core.Edge, running float64) {
		fmt.Printf("  attach %s via %s-%s (%.0f), running total %.0f\n",
			e.To, e.From, e.To, e.Weight, running)
	}))
	if err != nil {
		log.Fatalf("prim: %v", err)
	}
	fmt.Printf("\nMST: %d edges, total weight %.0f\n", len(edges), total)

	_, kruskalTotal, err := mst.Kruskal(g)
	if err != nil {
		log.Fatalf("kruskal: %v", err)
	}
	if total != kruskalTotal {
		log.Fatalf("prim total %.0f disagrees with kruskal %.0f", total, kruskalTotal)
	}
	fmt.Printf("Kruskal agrees: %.0f\n", kruskalTotal)
}
