// Package mst: Kruskal's algorithm over an undirected, weighted *core.Graph.
package mst

import (
	"sort"

	"github.com/katalvlaran/algokit/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected, weighted
// graph using a DisjointSet for cycle detection.
//
// Steps:
//  1. Validate: graph != nil, weighted, undirected.
//  2. If |V| == 0 → ErrDisconnected; |V| == 1 → trivial empty MST.
//  3. Collect edges, skipping self-loops, and stable-sort by ascending
//     weight (graph.Edges() is ID-ordered, so ties break deterministically).
//  4. Walk the sorted edges; accept an edge exactly when its endpoints are
//     in different sets, union them, fire OnAccept, stop at |V|-1 edges.
//  5. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(V + E).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate that graph is non-nil, weighted, and undirected.
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Handle trivial vertex counts.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Collect candidate edges; self-loops can never join components.
	allEdges := graph.Edges()
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	// Stable sort by weight keeps the insertion-order tiebreak deterministic.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Greedy acceptance via union-find.
	ds := NewDisjointSet(vertices)
	tree := make([]core.Edge, 0, len(vertices)-1)
	var total float64
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			continue // endpoints already connected: edge would close a cycle
		}
		tree = append(tree, e)
		total += e.Weight
		if o.OnAccept != nil {
			o.OnAccept(e, total)
		}
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	// 5. A spanning tree needs exactly |V|-1 edges.
	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// Forest computes the minimum spanning forest of an undirected, weighted
// graph: one MST per connected component. Unlike Kruskal, a disconnected
// graph is not an error; the result simply spans each component.
//
// Returns the accepted edges (|V| − #components of them), the total
// weight, and ErrInvalidGraph for nil/directed/unweighted input.
//
// Complexity: identical to Kruskal — the loop just never stops early.
func Forest(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	edges := make([]core.Edge, 0, graph.EdgeCount())
	for _, e := range graph.Edges() {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := NewDisjointSet(vertices)
	forest := make([]core.Edge, 0, len(vertices))
	var total float64
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			continue
		}
		forest = append(forest, e)
		total += e.Weight
		if o.OnAccept != nil {
			o.OnAccept(e, total)
		}
		// |V| - 1 accepted edges means everything is already connected.
		if len(forest) == len(vertices)-1 {
			break
		}
	}

	return forest, total, nil
}
