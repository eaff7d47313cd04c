// Package mst: Prim's algorithm over an undirected, weighted *core.Graph.
package mst

import (
	"container/heap"

	"github.com/katalvlaran/algokit/core"
)

// Prim computes the Minimum Spanning Tree of an undirected, weighted
// graph by growing outward from root using a min-heap of frontier edges.
//
// Steps:
//  1. Validate: graph != nil, weighted, undirected.
//  2. |V| == 0 → ErrDisconnected; |V| == 1 → trivial MST if root matches.
//  3. Validate root: non-empty and present (core.ErrVertexNotFound).
//  4. Mark root visited; push its incident edges onto the heap.
//  5. Repeatedly pop the cheapest frontier edge; skip it when its far
//     endpoint is already in the tree (cycle), otherwise accept it, fire
//     OnAccept, and push the new vertex's outgoing edges.
//  6. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, opts ...Option) ([]core.Edge, float64, error) {
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
		if vertices[0] != root {
			return nil, 0, core.ErrVertexNotFound
		}

		return []core.Edge{}, 0, nil
	}

	// 3. Validate the root.
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	// 4. Seed the frontier with the root's incident edges.
	n := len(vertices)
	visited := make(map[string]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var total float64

	pq := &edgeHeap{}
	heap.Init(pq)

	visited[root] = true
	neighbors, err := graph.Neighbors(root)
	if err != nil {
		return nil, 0, err
	}
	for _, e := range neighbors {
		if !visited[e.To] {
			heap.Push(pq, e)
		}
	}

	// 5. Grow the tree one cheapest frontier edge at a time.
	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		if visited[e.To] {
			continue // both endpoints already in the tree: would close a cycle
		}

		visited[e.To] = true
		tree = append(tree, e)
		total += e.Weight
		if o.OnAccept != nil {
			o.OnAccept(e, total)
		}

		next, nerr := graph.Neighbors(e.To)
		if nerr != nil {
			return nil, 0, nerr
		}
		for _, ne := range next {
			if !visited[ne.To] {
				heap.Push(pq, ne)
			}
		}
	}

	// 6. A spanning tree needs exactly |V|-1 edges.
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgeHeap implements heap.Interface as a min-heap of core.Edge,
// ordered by Weight with edge ID as the deterministic tiebreak.
type edgeHeap []core.Edge

// Len returns the number of frontier edges. Complexity: O(1).
func (pq edgeHeap) Len() int { return len(pq) }

// Less orders by ascending weight, then ascending edge ID. Complexity: O(1).
func (pq edgeHeap) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].ID < pq[j].ID
}

// Swap exchanges two entries. Complexity: O(1).
func (pq edgeHeap) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new edge. Called by heap.Push. Complexity: O(log N) amortized.
func (pq *edgeHeap) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the cheapest edge. Called by heap.Pop.
// Complexity: O(log N) amortized.
func (pq *edgeHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
