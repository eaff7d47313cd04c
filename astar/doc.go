// Package astar provides a generic A* shortest-path search over any type
// that can expand a node into weighted successors.
//
// What
//
//   - Search(g, start, goal, h, opts...) runs A* on a Graph[N], any type
//     implementing Neighbors(N) []Neighbor[N] for a comparable node type N.
//   - The open set is an indexed min-heap ordered by f = g + h, with true
//     decrease-key via heap.Fix, so each node carries its best-known cost.
//   - Result reports the Path (start → goal), its Cost, the number of
//     Expanded nodes, and a Found flag; ErrNoPath when unreachable.
//
// Why
//
//   - A* is the workhorse of pathfinding: with an admissible heuristic
//     (one that never overestimates the remaining cost) the returned path
//     cost is provably optimal, and a good heuristic expands far fewer
//     nodes than Dijkstra.
//   - The Zero heuristic is always admissible and reduces Search to
//     Dijkstra's algorithm, which is why this module carries no separate
//     Dijkstra implementation.
//
// Admissibility
//
//	Manhattan distance on a 4-connected unit grid and straight-line
//	(Euclidean) distance in the plane are both admissible; see the grid
//	and vispath packages for ready-made search spaces using them.
//
// Complexity (V = reachable nodes, E = expanded edges)
//
//   - Time:   O(E log V)
//   - Memory: O(V) for the open set, scores, and parent links
//
// Usage
//
//	res, err := astar.Search(space, start, goal, heuristic)
//	if errors.Is(err, astar.ErrNoPath) { ... }
//	fmt.Println(res.Path, res.Cost)
//
// Errors
//
//   - ErrGraphNil if the search space is nil.
//   - ErrNoPath   if the goal is unreachable from start.
//   - The context error when cancelled via WithContext.
package astar
