package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

// ExampleBFS demonstrates level-order traversal of a small network and
// shortest-path recovery to the farthest vertex.
func ExampleBFS() {
	g := core.NewGraph()
	g.AddEdge("1", "2", 0)
	g.AddEdge("1", "3", 0)
	g.AddEdge("2", "4", 0)
	g.AddEdge("2", "5", 0)
	g.AddEdge("3", "6", 0)
	g.AddEdge("5", "6", 0)
	g.AddEdge("6", "7", 0)

	res, err := bfs.BFS(g, "1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", res.Order)
	path, _ := res.PathTo("7")
	fmt.Println("path to 7:", path)
	// Output:
	// order: [1 2 3 4 5 6 7]
	// path to 7: [1 3 6 7]
}

// ExampleBFS_fullTraversal shows forest mode covering an isolated vertex.
func ExampleBFS_fullTraversal() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddVertex("Z") // disconnected

	res, _ := bfs.BFS(g, "A", bfs.WithFullTraversal())
	fmt.Println(res.Order)
	// Output: [A B Z]
}
