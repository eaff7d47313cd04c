// Command kruskal demonstrates Kruskal's MST on the nine-vertex textbook
// graph, tracing each greedy acceptance.
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
		{"A", "B", 4}, {"A", "H", 8}, {"B", "C", 8}, {"B", "H", 11},
		{"C", "D", 7}, {"C", "F", 4}, {"C", "I", 2}, {"D", "E", 9},
		{"D", "F", 14}, {"E", "F", 10}, {"F", "G", 2}, {"G", "H", 1},
		{"G", "I", 6}, {"H", "I", 7},
	} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			log.Fatalf("add edge %s-%s: %v", e.u, e.v, err)
		}
	}

	fmt.Printf("Graph: %d vertices, %d edges\n\n", g.VertexCount(), g.EdgeCount())
	fmt.Println("Kruskal acceptance order:")

	edges, total, err := mst.Kruskal(g, mst.WithOnAccept(func(e core.Edge, running float64) {
		fmt.Printf("  take %s-%s (%.0f), running total %.0f\n", e.From, e.To, e.Weight, running)
	}))
	if err != nil {
		log.Fatalf("kruskal: %v", err)
	}

	fmt.Printf("\nMST: %d edges, total weight %.0f\n", len(edges), total)
	if len(edges) != g.VertexCount()-1 {
		log.Fatalf("expected %d edges, got %d", g.VertexCount()-1, len(edges))
	}
	if total != 37 {
		log.Fatalf("expected total 37, got %.0f", total)
	}
}
