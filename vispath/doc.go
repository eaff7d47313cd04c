// Package vispath plans shortest obstacle-free routes in the plane using
// a visibility graph.
//
// # What
//
//   - Plan(start, goal, obstacles) — shortest polyline from start to
//     goal that avoids the interiors of the given orb.Polygon obstacles.
//   - Route — the waypoints and total Euclidean length.
//
// # Why
//
// In a polygonal world the shortest path is a polyline whose interior
// waypoints are obstacle corners. That makes the search space finite:
// connect every pair of points that can "see" each other (the segment
// between them crosses no obstacle) and run a shortest-path search over
// the result. This is the textbook approach for drone corridor planning,
// robot motion around no-go zones, and map routing around closed areas.
//
// # How
//
// Obstacle bounding boxes go into an R-tree (dhconnelly/rtreego), so each
// candidate edge is tested only against nearby polygons. Obstruction uses
// orientation-test segment intersection plus a midpoint containment check
// (paulmach/orb/planar); touching corners and running along boundary
// edges is allowed. The final search is astar.Search with the
// straight-line distance heuristic, which is admissible here.
//
// # Usage
//
//	wall := orb.Polygon{{{2, -1}, {4, -1}, {4, 1}, {2, 1}, {2, -1}}}
//	route, err := vispath.Plan(orb.Point{0, 0}, orb.Point{6, 0}, []orb.Polygon{wall})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(route.Waypoints, route.Cost)
//
// # Errors
//
//   - ErrStartBlocked / ErrGoalBlocked — endpoint strictly inside an obstacle.
//   - ErrNoRoute                       — obstacles separate the endpoints.
//   - context.Canceled / DeadlineExceeded — search cancelled via WithContext.
package vispath
