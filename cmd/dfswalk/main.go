// Command dfswalk demonstrates depth-first traversal over an undirected
// graph with two components, including the full-forest sweep.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

func main() {
	// Two components: A..F connected, G isolated.
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"B", "E"},
		{"C", "F"}, {"E", "F"},
	} {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			log.Fatalf("add edge %v: %v", e, err)
		}
	}
	if err := g.AddVertex("G"); err != nil {
		log.Fatalf("add vertex G: %v", err)
	}

	fmt.Println("Adjacency list:")
	for _, v := range g.Vertices() {
		ns, err := g.NeighborIDs(v)
		if err != nil {
			log.Fatalf("neighbors of %s: %v", v, err)
		}
		fmt.Printf("  %s: %v\n", v, ns)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		log.Fatalf("dfs from A: %v", err)
	}
	fmt.Println("\nDFS from A (component of A):")
	fmt.Println(res.Order)

	full, err := dfs.DFS(g, "A", dfs.WithFullTraversal())
	if err != nil {
		log.Fatalf("full dfs: %v", err)
	}
	fmt.Println("\nFull DFS covering all vertices:")
	fmt.Println(full.Order)

	if len(full.Order) != g.VertexCount() {
		log.Fatalf("full traversal visited %d of %d vertices", len(full.Order), g.VertexCount())
	}
	fmt.Println("\nAll vertices visited.")
}
