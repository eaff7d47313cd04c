// Command flightplan demonstrates visibility-graph route planning:
// the shortest corridor between two points around rectangular no-go zones.
package main

import (
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/algokit/vispath"
)

func main() {
	zones := []orb.Polygon{
		{{{20, -10}, {40, -10}, {40, 10}, {20, 10}, {20, -10}}},
		{{{50, 5}, {70, 5}, {70, 25}, {50, 25}, {50, 5}}},
	}
	start := orb.Point{0, 0}
	goal := orb.Point{90, 15}

	fmt.Printf("Start: %v  Goal: %v\n", start, goal)
	fmt.Printf("No-go zones: %d\n\n", len(zones))

	route, err := vispath.Plan(start, goal, zones)
	if err != nil {
		log.Fatalf("plan: %v", err)
	}

	fmt.Println("Waypoints:")
	for i, wp := range route.Waypoints {
		fmt.Printf("  %d: (%.0f, %.0f)\n", i, wp[0], wp[1])
	}
	fmt.Printf("\nRoute length: %.2f\n", route.Cost)

	// Sealing the corridor must make planning fail.
	sealed := append(zones, orb.Polygon{
		{{85, 10}, {95, 10}, {95, 20}, {85, 20}, {85, 10}},
	})
	if _, err = vispath.Plan(start, goal, sealed); err == nil {
		log.Fatal("expected goal inside a zone to fail")
	} else {
		fmt.Println("Blocked goal correctly rejected:", err)
	}
}
