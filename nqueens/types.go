// Package nqueens defines configuration options, sentinel errors, and the
// Board result type for the N-Queens solver.
package nqueens

import (
	"context"
	"errors"
	"strings"
)

// ErrBadSize indicates that the requested board size is not positive.
var ErrBadSize = errors.New("nqueens: board size must be >= 1")

// ErrOptionViolation indicates an invalid Option combination or value.
var ErrOptionViolation = errors.New("nqueens: invalid option")

// Board is one solution: Board[row] is the column of the queen placed on
// that row. Every solution holds exactly one queen per row, per column,
// and per diagonal.
type Board []int

// String renders the board as an ASCII grid, one row per line, with "Q"
// for a queen and "." for an empty square.
func (b Board) String() string {
	var sb strings.Builder
	for _, col := range b {
		for c := 0; c < len(b); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if c == col {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Options configures the N-Queens search.
type Options struct {
	// Ctx cancels a long-running search between row placements.
	// Defaults to context.Background().
	Ctx context.Context

	// MaxSolutions stops the search after this many solutions have been
	// found. Zero means unlimited.
	MaxSolutions int

	// OnSolution observes every complete placement as it is found. The
	// callback receives a copy, safe to retain.
	OnSolution func(Board)

	// err records the first invalid option, surfaced by Solve.
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context, unlimited
// solutions, and no callback.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxSolutions: 0,
	}
}

// WithContext sets the context used for cancellation checks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Ctx = ctx
	}
}

// WithMaxSolutions stops the search after n solutions. Negative n is an
// option violation; zero restores the unlimited default.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxSolutions = n
	}
}

// WithFirstOnly stops after the first solution. Shorthand for
// WithMaxSolutions(1).
func WithFirstOnly() Option {
	return func(o *Options) { o.MaxSolutions = 1 }
}

// WithOnSolution registers a callback fired on every complete placement.
func WithOnSolution(fn func(Board)) Option {
	return func(o *Options) { o.OnSolution = fn }
}
