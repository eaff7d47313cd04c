// Package vispath defines the Route result type, configuration options,
// and sentinel errors for visibility-graph route planning.
package vispath

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
)

// ErrStartBlocked indicates the start point lies strictly inside an
// obstacle, so no route can begin there.
var ErrStartBlocked = errors.New("vispath: start point inside an obstacle")

// ErrGoalBlocked indicates the goal point lies strictly inside an
// obstacle, so no route can end there.
var ErrGoalBlocked = errors.New("vispath: goal point inside an obstacle")

// ErrNoRoute indicates the obstacles separate start from goal completely.
var ErrNoRoute = errors.New("vispath: no obstacle-free route exists")

// Route is a planned path: straight-line waypoints from start to goal
// and the total Euclidean length.
type Route struct {
	// Waypoints begins at the start point and ends at the goal. Interior
	// waypoints are obstacle corners the route pivots around.
	Waypoints []orb.Point

	// Cost is the summed Euclidean length of the waypoint segments.
	Cost float64
}

// Options configures the planner.
type Options struct {
	// Ctx cancels the underlying search. Defaults to context.Background().
	Ctx context.Context
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation checks during the
// search phase. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
