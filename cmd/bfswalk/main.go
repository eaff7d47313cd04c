// Command bfswalk demonstrates breadth-first traversal: layer order,
// per-vertex depths, and a shortest hop path recovered from parents.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

func main() {
	// One cycle (5-6) plus an isolated vertex H.
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"1", "2"}, {"1", "3"},
		{"2", "4"}, {"2", "5"},
		{"3", "6"}, {"5", "6"},
		{"6", "7"},
	} {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			log.Fatalf("add edge %v: %v", e, err)
		}
	}
	if err := g.AddVertex("H"); err != nil {
		log.Fatalf("add vertex H: %v", err)
	}

	res, err := bfs.BFS(g, "1")
	if err != nil {
		log.Fatalf("bfs from 1: %v", err)
	}
	fmt.Println("BFS from 1 (component of 1):")
	fmt.Println(res.Order)

	fmt.Println("\nDepths:")
	for _, v := range res.Order {
		fmt.Printf("  %s: %d\n", v, res.Depth[v])
	}

	path, err := res.PathTo("7")
	if err != nil {
		log.Fatalf("path to 7: %v", err)
	}
	fmt.Println("\nShortest hop path 1 -> 7:")
	fmt.Println(path)

	full, err := bfs.BFS(g, "1", bfs.WithFullTraversal())
	if err != nil {
		log.Fatalf("full bfs: %v", err)
	}
	fmt.Println("\nFull BFS covering all vertices:")
	fmt.Println(full.Order)

	if len(full.Order) != g.VertexCount() {
		log.Fatalf("full traversal visited %d of %d vertices", len(full.Order), g.VertexCount())
	}
	fmt.Println("\nAll vertices visited.")
}
