// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering, full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit is the pre-order hook, invoked when a vertex is first
	// discovered. A returned error aborts the traversal.
	OnVisit func(id string) error

	// OnExit is the post-order hook, invoked after a vertex's descendants
	// are fully explored. A returned error aborts the traversal.
	OnExit func(id string) error

	// MaxDepth stops recursion beyond the given depth.
	// A negative value (the default) means no limit.
	MaxDepth int

	// FilterNeighbor skips a neighbor when it returns false.
	FilterNeighbor func(neighbor string) bool

	// FullTraversal restarts DFS from every unvisited vertex (in sorted
	// order) so the result covers disconnected components.
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns the baseline configuration:
// background context, no hooks, no depth limit, no filtering,
// single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the pre-order hook; an error aborts traversal.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit registers the post-order hook; an error aborts traversal.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion to the given depth (>= 0).
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(neighbor string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal makes DFS cover every vertex of the graph: after the
// start component is exhausted, traversal restarts from each unvisited
// vertex in sorted order.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order:   vertices in pre-order discovery sequence.
//   - Depth:   recursion depth per vertex, from its component root.
//   - Parent:  discovery-tree predecessor per vertex.
//   - Visited: membership set of every discovered vertex.
//   - SkippedNeighbors: diagnostic count from FilterNeighbor.
type Result struct {
	Order            []string
	Depth            map[string]int
	Parent           map[string]string
	Visited          map[string]bool
	SkippedNeighbors int
}
