// Package grid treats a rectangular field with blocked cells as an A*
// search space, the classic setup for game-style pathfinding demos.
//
// What
//
//   - Grid: immutable after construction (New for an open field plus
//     Block calls, FromRows for a 0/1 obstacle layout).
//   - Implements astar.Graph[Cell]: orthogonal steps cost 1, diagonal
//     steps (Conn8) cost √2, blocked and out-of-bounds cells never expand.
//   - ShortestPath wires the grid straight into astar.Search with the
//     heuristic that matches its connectivity: Manhattan for Conn4,
//     Chebyshev for Conn8. Both are admissible for their step model, so
//     returned paths are cost-optimal.
//   - ToCoreGraph converts free cells into a weighted *core.Graph so the
//     traversal and MST packages can run over terrain too.
//
// Why
//
//	Manhattan distance never overestimates on a 4-connected unit grid:
//	every move changes one coordinate by one, so at least |dx|+|dy| moves
//	remain. That admissibility is exactly what makes A* optimal here.
//
// Complexity
//
//   - Construction: O(W×H) time and memory.
//   - Neighbors: O(1) per cell (at most 8 offsets).
//   - ShortestPath: O(W×H log(W×H)) worst case.
//
// Usage
//
//	g, _ := grid.New(8, 6)
//	g.Block(2, 0); g.Block(2, 1); g.Block(2, 2)
//	res, err := g.ShortestPath(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 7, Y: 5})
//
// Errors
//
//   - ErrEmptyGrid / ErrNonRectangular for malformed construction input.
//   - ErrOutOfBounds / ErrBlockedCell for invalid path endpoints.
//   - astar.ErrNoPath when a goal is walled off.
package grid
