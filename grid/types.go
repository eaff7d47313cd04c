// Package grid defines core types, options, and sentinel errors for
// treating a rectangular obstacle grid as an A* search space.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid was referenced.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBlockedCell indicates a start or goal cell sits on an obstacle.
	ErrBlockedCell = errors.New("grid: cell is blocked")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies one grid square by its coordinates.
// Cells are comparable, so they key maps and satisfy astar's node constraint.
type Cell struct {
	X, Y int
}

// Option configures grid construction.
type Option func(*Options)

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn4 connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity selects Conn4 or Conn8 neighbor expansion.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}
