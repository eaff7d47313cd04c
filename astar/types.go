// Package astar defines the search-space contract, configuration options,
// and sentinel errors for A* shortest-path search.
package astar

import (
	"context"
	"errors"
)

// Sentinel errors for A* execution.
var (
	// ErrGraphNil is returned when a nil search space is passed to Search.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrNoPath is returned when the open set empties before the goal is reached.
	ErrNoPath = errors.New("astar: no path between start and goal")
)

// Graph is the search space: anything that can expand a node into its
// weighted successors. N must be comparable so nodes can key maps.
type Graph[N comparable] interface {
	// Neighbors returns the nodes reachable from n in one step,
	// each with its non-negative step cost.
	Neighbors(n N) []Neighbor[N]
}

// Neighbor is one reachable node together with the cost of the step.
type Neighbor[N comparable] struct {
	ID   N
	Cost float64
}

// Heuristic estimates the remaining cost from a node to the goal.
// It must never overestimate (be admissible) for Search to guarantee
// optimal paths; Zero is always admissible.
type Heuristic[N comparable] func(from, goal N) float64

// Zero is the null heuristic; with it, Search degrades to Dijkstra's
// algorithm: correct on any graph with non-negative costs, just slower.
func Zero[N comparable](_, _ N) float64 { return 0 }

// Result holds the outcome of a search:
//   - Path:     start → goal, inclusive (nil when not found).
//   - Cost:     total path cost (sum of step costs).
//   - Expanded: number of nodes taken off the open set, a useful measure
//     of how much work the heuristic saved.
//   - Found:    whether the goal was reached.
type Result[N comparable] struct {
	Path     []N
	Cost     float64
	Expanded int
	Found    bool
}

// Option configures Search behavior via functional arguments.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize a search.
type Options[N comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnExpand is called each time a node is taken off the open set,
	// with its g-score (cost from start so far).
	OnExpand func(n N, gScore float64)
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		OnExpand: func(N, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback observing each node expansion.
func WithOnExpand[N comparable](fn func(n N, gScore float64)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
