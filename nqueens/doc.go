// Package nqueens solves the N-Queens puzzle: place n queens on an n×n
// chessboard so that no two attack each other.
//
// # What
//
//   - Solve(n, opts...) returns every solution as a Board, where
//     Board[row] is the column of the queen on that row.
//   - Count(n, opts...) returns only the number of solutions, skipping
//     the per-solution allocations.
//   - Board.String() renders a placement as an ASCII grid.
//
// # Why
//
// N-Queens is the canonical backtracking exercise: a depth-first search
// over partial placements where constraint checks prune whole subtrees.
// The same place-check-recurse-unwind shape appears in scheduling,
// register allocation, and exact-cover solvers, so the engine here doubles
// as a template for those.
//
// # Algorithm
//
// Queens are placed one row at a time. Three occupancy sets — columns,
// rising diagonals (row+col), falling diagonals (row−col) — make each
// admissibility check O(1). On a dead end the engine unwinds the last
// placement and tries the next column.
//
// Solution counts grow fast: 1 board has 1 solution, 4 has 2, 8 has 92,
// 12 has 14,200. Sizes 2 and 3 have none, which Solve reports as an empty
// slice with a nil error.
//
// # Options
//
//   - WithContext(ctx): cancel a long search between row placements.
//   - WithMaxSolutions(k) / WithFirstOnly(): stop early.
//   - WithOnSolution(fn): stream solutions as they are found.
//
// # Usage
//
//	boards, err := nqueens.Solve(8, nqueens.WithFirstOnly())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(boards[0])
//
// # Errors
//
//   - ErrBadSize          — n < 1.
//   - ErrOptionViolation  — invalid option value.
//   - context.Canceled / DeadlineExceeded — search cancelled via ctx.
package nqueens
