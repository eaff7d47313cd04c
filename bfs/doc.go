// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → distance (edges) from its component root
//   - Parent: map from vertex → its predecessor in the BFS forest
//   - Roots:  the start vertex of each traversed component
//   - Supports hooks on enqueue and visit, neighbor filtering, and a
//     MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - WithFullTraversal covers disconnected graphs: once the start
//     component is exhausted, BFS restarts from every unvisited vertex in
//     sorted order, so Order contains every vertex exactly once.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in sorted order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, "start")
//
//	// Forest traversal with a visit hook:
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithFullTraversal(),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an invalid Option is supplied (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
