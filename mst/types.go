// Package mst defines configuration options and sentinel errors for
// minimum-spanning-tree computation, and the Compute dispatcher that
// selects between Kruskal's and Prim's algorithms.
package mst

import (
	"errors"

	"github.com/katalvlaran/algokit/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected,
// weighted graph. Returned when the graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("mst: requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("mst: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a
// spanning tree covering all vertices cannot be formed. Use Forest for
// graphs where that is expected.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Method names for the Compute dispatcher.
const (
	// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
	MethodKruskal = "kruskal"
	// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
	MethodPrim = "prim"
)

// Options configures which MST algorithm Compute runs and how.
type Options struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// OnAccept observes each greedy acceptance: the edge just added to the
	// tree and the running total weight. Useful for step-by-step demos.
	OnAccept func(e core.Edge, runningTotal float64)
}

// Option configures Options via functional arguments.
type Option func(*Options)

// WithMethod sets the algorithm Method (MethodKruskal or MethodPrim).
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithOnAccept registers a callback fired on every accepted edge.
func WithOnAccept(fn func(e core.Edge, runningTotal float64)) Option {
	return func(o *Options) { o.OnAccept = fn }
}

// DefaultOptions returns Options initialized for Kruskal with no root
// and no tracing.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute selects and runs the MST algorithm based on opts.
//
//   - MethodKruskal: Kruskal(graph, opts...)
//   - MethodPrim:    Prim(graph, root, opts...)
//   - anything else: ErrInvalidGraph
//
// Returns the MST edges (empty for a single-vertex graph), the total
// weight, and an error when computation cannot proceed.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, o.Root, opts...)
	default:
		return nil, 0, ErrInvalidGraph
	}
}
