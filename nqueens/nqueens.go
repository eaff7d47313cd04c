// Package nqueens: backtracking solver with column and diagonal pruning.
package nqueens

// Solve finds placements of n non-attacking queens on an n×n board.
//
// Steps:
//  1. Validate n and the options.
//  2. Depth-first placement, one row at a time: a column is admissible
//     when no earlier queen shares its column or either diagonal.
//  3. Occupancy is tracked in three boolean sets (columns, ↗ diagonals
//     keyed by row+col, ↘ diagonals keyed by row-col+n-1), so each
//     admissibility check is O(1) instead of rescanning placed queens.
//  4. A full placement is copied into the result slice and reported to
//     OnSolution; the search backtracks and continues until all rows are
//     exhausted or MaxSolutions is reached.
//
// Returns every solution found (each as a Board), or ErrBadSize /
// ErrOptionViolation / the context error. For n with no solutions
// (n = 2, 3) the slice is empty and the error nil.
//
// Complexity: O(n!) worst case, sharply cut by the pruning sets.
// Memory: O(n) for the search state plus the collected solutions.
func Solve(n int, opts ...Option) ([]Board, error) {
	// 1. Validate inputs.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < 1 {
		return nil, ErrBadSize
	}

	e := &engine{
		n:      n,
		opts:   o,
		queens: make(Board, n),
		cols:   make([]bool, n),
		diagUp: make([]bool, 2*n-1),
		diagDn: make([]bool, 2*n-1),
	}
	if err := e.place(0); err != nil {
		return nil, err
	}

	return e.solutions, nil
}

// Count returns the number of distinct solutions for an n×n board.
// It runs the same search as Solve without retaining the boards.
func Count(n int, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if n < 1 {
		return 0, ErrBadSize
	}

	e := &engine{
		n:         n,
		opts:      o,
		countOnly: true,
		queens:    make(Board, n),
		cols:      make([]bool, n),
		diagUp:    make([]bool, 2*n-1),
		diagDn:    make([]bool, 2*n-1),
	}
	if err := e.place(0); err != nil {
		return 0, err
	}

	return e.found, nil
}

// engine holds the mutable search state for one Solve or Count run.
type engine struct {
	n         int
	opts      Options
	countOnly bool

	queens Board  // queens[row] = column of the queen on that row
	cols   []bool // cols[c]: column c occupied
	diagUp []bool // diagUp[r+c]: ↗ diagonal occupied
	diagDn []bool // diagDn[r-c+n-1]: ↘ diagonal occupied

	solutions []Board
	found     int
}

// place tries every admissible column on row and recurses to row+1.
// Returns the context error on cancellation; a nil return with
// done() true means MaxSolutions was hit and the search unwound early.
func (e *engine) place(row int) error {
	// Cancellation check once per row, not per cell.
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}

	if row == e.n {
		e.record()
		return nil
	}

	for col := 0; col < e.n; col++ {
		if e.cols[col] || e.diagUp[row+col] || e.diagDn[row-col+e.n-1] {
			continue // attacked: prune this column without descending
		}

		e.queens[row] = col
		e.cols[col] = true
		e.diagUp[row+col] = true
		e.diagDn[row-col+e.n-1] = true

		err := e.place(row + 1)

		e.cols[col] = false
		e.diagUp[row+col] = false
		e.diagDn[row-col+e.n-1] = false

		if err != nil {
			return err
		}
		if e.done() {
			return nil
		}
	}

	return nil
}

// record captures the current full placement.
func (e *engine) record() {
	e.found++
	if e.countOnly && e.opts.OnSolution == nil {
		return
	}

	snapshot := make(Board, e.n)
	copy(snapshot, e.queens)
	if !e.countOnly {
		e.solutions = append(e.solutions, snapshot)
	}
	if e.opts.OnSolution != nil {
		e.opts.OnSolution(snapshot)
	}
}

// done reports whether the solution quota has been reached.
func (e *engine) done() bool {
	return e.opts.MaxSolutions > 0 && e.found >= e.opts.MaxSolutions
}
