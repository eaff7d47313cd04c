// Package vispath: visibility-graph construction and route planning.
package vispath

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/algokit/astar"
)

// visGraph is a visibility graph: every node sees its neighbors along an
// unobstructed straight line. It implements astar.Graph[orb.Point].
type visGraph struct {
	adjacency map[orb.Point][]astar.Neighbor[orb.Point]
}

// Neighbors returns the nodes visible from n with Euclidean edge costs.
func (g *visGraph) Neighbors(n orb.Point) []astar.Neighbor[orb.Point] {
	return g.adjacency[n]
}

// Plan computes the shortest obstacle-free route from start to goal
// around polygonal obstacles.
//
// Steps:
//  1. Validate endpoints: strictly inside an obstacle → ErrStartBlocked /
//     ErrGoalBlocked (boundary points are allowed).
//  2. Collect nodes: start, goal, and every distinct obstacle vertex —
//     on the shortest route, every interior waypoint is some obstacle
//     corner, so no other candidates are needed.
//  3. Index obstacle bounding boxes in an R-tree; for each node pair,
//     fetch only the polygons near the connecting segment and keep the
//     edge when no polygon obstructs it.
//  4. Run A* over the visibility graph with the straight-line distance
//     to the goal as the (admissible) heuristic.
//
// Returns the Route, or ErrNoRoute when the obstacles separate the two
// points, or the context error on cancellation.
//
// Complexity: O(V²·E_poly) graph construction for V nodes, then
// O(E log V) search. The R-tree filter cuts the construction constant
// when obstacles are spread out.
func Plan(start, goal orb.Point, obstacles []orb.Polygon, opts ...Option) (Route, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Endpoint validation.
	for _, poly := range obstacles {
		if pointBlocked(poly, start) {
			return Route{}, ErrStartBlocked
		}
		if pointBlocked(poly, goal) {
			return Route{}, ErrGoalBlocked
		}
	}

	// Trivial route.
	if start == goal {
		return Route{Waypoints: []orb.Point{start}, Cost: 0}, nil
	}

	// 2. Node collection, deduplicated (polygons may share corners).
	seen := map[orb.Point]bool{start: true, goal: true}
	nodes := []orb.Point{start, goal}
	for _, poly := range obstacles {
		for _, ring := range poly {
			n := len(ring)
			if n > 1 && ring[0] == ring[n-1] {
				n--
			}
			for _, v := range ring[:n] {
				if !seen[v] {
					seen[v] = true
					nodes = append(nodes, v)
				}
			}
		}
	}

	// 3. Visibility edges, filtered through the spatial index.
	idx := newObstacleIndex(obstacles)
	g := &visGraph{adjacency: make(map[orb.Point][]astar.Neighbor[orb.Point], len(nodes))}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			if !clear(idx, a, b) {
				continue
			}
			d := planar.Distance(a, b)
			g.adjacency[a] = append(g.adjacency[a], astar.Neighbor[orb.Point]{ID: b, Cost: d})
			g.adjacency[b] = append(g.adjacency[b], astar.Neighbor[orb.Point]{ID: a, Cost: d})
		}
	}

	// 4. Shortest route by A* with the straight-line heuristic.
	res, err := astar.Search(g, start, goal,
		func(from, to orb.Point) float64 { return planar.Distance(from, to) },
		astar.WithContext[orb.Point](o.Ctx),
	)
	if err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			return Route{}, ErrNoRoute
		}

		return Route{}, fmt.Errorf("vispath: search failed: %w", err)
	}

	return Route{Waypoints: res.Path, Cost: res.Cost}, nil
}

// clear reports whether segment ab is unobstructed by every nearby polygon.
func clear(idx *obstacleIndex, a, b orb.Point) bool {
	for _, poly := range idx.candidates(a, b) {
		if segmentBlocked(poly, a, b) {
			return false
		}
	}

	return true
}
