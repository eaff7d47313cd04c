// Command gridpath demonstrates A* pathfinding on a 2D grid with walls:
// an 8×6 arena, 4-connected movement, Manhattan heuristic.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/algokit/grid"
)

func main() {
	const width, height = 8, 6
	walls := []grid.Cell{
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3},
		{X: 4, Y: 2}, {X: 5, Y: 2}, {X: 6, Y: 2},
	}

	g, err := grid.New(width, height)
	if err != nil {
		log.Fatalf("new grid: %v", err)
	}
	for _, w := range walls {
		if err = g.Block(w.X, w.Y); err != nil {
			log.Fatalf("block %v: %v", w, err)
		}
	}

	start := grid.Cell{X: 0, Y: 0}
	goal := grid.Cell{X: 7, Y: 5}
	fmt.Printf("Grid size: %d x %d\n", width, height)
	fmt.Printf("Start: %v  Goal: %v\n", start, goal)
	fmt.Printf("Walls: %v\n", walls)

	res, err := g.ShortestPath(start, goal)
	if err != nil {
		log.Fatalf("shortest path: %v", err)
	}

	fmt.Println("\nFound path length:", len(res.Path)-1)
	fmt.Println(res.Path)
	fmt.Printf("Cost: %.0f, expanded %d cells\n", res.Cost, res.Expanded)

	// Every step must be a unit move between adjacent cells.
	for i := 1; i < len(res.Path); i++ {
		if grid.Manhattan(res.Path[i-1], res.Path[i]) != 1 {
			log.Fatalf("non-adjacent step %v -> %v", res.Path[i-1], res.Path[i])
		}
	}
	fmt.Println("\nAll steps adjacent.")
}
