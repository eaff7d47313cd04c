// Command spanning demonstrates the union-find structure behind Kruskal:
// every candidate edge is reported as taken or skipped, with the number
// of remaining components after each step.
package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/mst"
)

func main() {
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3},
		{"C", "D", 4}, {"B", "D", 5},
	} {
		if _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			log.Fatalf("add edge %s-%s: %v", e.u, e.v, err)
		}
	}

	// Replay Kruskal's scan by hand to show the union-find decisions.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	ds := mst.NewDisjointSet(g.Vertices())
	fmt.Printf("Start: %d singleton components\n\n", ds.Count())

	var total float64
	for _, e := range edges {
		if ds.Union(e.From, e.To) {
			total += e.Weight
			fmt.Printf("take %s-%s (%.0f)  components left: %d\n",
				e.From, e.To, e.Weight, ds.Count())
		} else {
			fmt.Printf("skip %s-%s (%.0f)  would close a cycle\n",
				e.From, e.To, e.Weight)
		}
	}
	fmt.Printf("\nSpanning tree weight: %.0f\n", total)

	// The library result must match the hand replay.
	_, libTotal, err := mst.Kruskal(g)
	if err != nil {
		log.Fatalf("kruskal: %v", err)
	}
	if total != libTotal {
		log.Fatalf("replay total %.0f disagrees with library %.0f", total, libTotal)
	}
	if ds.Count() != 1 {
		log.Fatalf("expected one component, got %d", ds.Count())
	}
	fmt.Println("Union-find replay matches mst.Kruskal.")
}
