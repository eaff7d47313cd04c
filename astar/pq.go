package astar

// item is an open-set entry: a node with its g-score (cost from start)
// and f-score (g + heuristic), plus its position in the heap so that
// heap.Fix can re-sift it after a decrease-key.
type item[N comparable] struct {
	node   N
	gScore float64
	fScore float64
	index  int // position in the heap; -1 once popped
}

// openSet implements heap.Interface as a min-heap of *item ordered by fScore.
type openSet[N comparable] []*item[N]

// Len returns the number of queued items. Complexity: O(1).
func (pq openSet[N]) Len() int { return len(pq) }

// Less orders by ascending f-score; ties break on the lower g-score,
// which prefers nodes closer to the goal estimate and keeps expansion
// order stable for equal-cost frontiers. Complexity: O(1).
func (pq openSet[N]) Less(i, j int) bool {
	if pq[i].fScore != pq[j].fScore {
		return pq[i].fScore < pq[j].fScore
	}

	return pq[i].gScore > pq[j].gScore
}

// Swap exchanges two items and fixes their recorded indices. Complexity: O(1).
func (pq openSet[N]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push appends a new *item. Called by heap.Push. Complexity: O(log N) amortized.
func (pq *openSet[N]) Push(x interface{}) {
	it := x.(*item[N])
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the minimum-f item. Called by heap.Pop.
// Complexity: O(log N) amortized.
func (pq *openSet[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // release for GC
	it.index = -1
	*pq = old[:n-1]

	return it
}
