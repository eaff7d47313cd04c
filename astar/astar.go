// Package astar implements A* shortest-path search over any Graph[N].
package astar

import (
	"container/heap"
)

// Search runs A* from start to goal on g, guided by heuristic h.
//
// Steps:
//  1. Validate g; seed the open set with start (g-score 0, f-score h(start)).
//  2. Pop the lowest-f node. If it is the goal, reconstruct and return the path.
//  3. Otherwise close it and relax every neighbor: a strictly better g-score
//     either inserts the neighbor into the open set or decrease-keys it in
//     place via heap.Fix.
//  4. When the open set empties without reaching goal, return ErrNoPath.
//
// With an admissible heuristic the returned Cost is the optimal path cost.
// Cancellation is checked once per expansion; the context error is returned.
//
// Complexity: O(E log V) time, O(V) memory (lazy decrease-key heap).
func Search[N comparable](g Graph[N], start, goal N, h Heuristic[N], opts ...Option[N]) (Result[N], error) {
	// 1. Validate input and apply options.
	if g == nil {
		return Result[N]{}, ErrGraphNil
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Seed the open set with the start node.
	open := make(openSet[N], 0)
	heap.Init(&open)
	startItem := &item[N]{node: start, gScore: 0, fScore: h(start, goal)}
	heap.Push(&open, startItem)

	cameFrom := make(map[N]N)              // discovery-tree parent links
	gScore := map[N]float64{start: 0}      // best known cost from start
	closed := make(map[N]bool)             // fully expanded nodes
	inOpen := map[N]*item[N]{start: startItem} // open-set membership index

	res := Result[N]{}

	// 3. Main loop: expand the cheapest frontier node.
	for open.Len() > 0 {
		// Cancellation check, once per expansion.
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		cur := heap.Pop(&open).(*item[N])
		delete(inOpen, cur.node)
		if closed[cur.node] {
			continue // stale duplicate entry
		}
		closed[cur.node] = true
		res.Expanded++
		o.OnExpand(cur.node, cur.gScore)

		// Goal test on expansion keeps the optimality guarantee.
		if cur.node == goal {
			res.Path = reconstruct(cameFrom, start, goal)
			res.Cost = cur.gScore
			res.Found = true

			return res, nil
		}

		// 4. Relax every outgoing step.
		for _, nbr := range g.Neighbors(cur.node) {
			if closed[nbr.ID] {
				continue
			}
			tentative := cur.gScore + nbr.Cost
			if best, seen := gScore[nbr.ID]; seen && tentative >= best {
				continue // no improvement
			}
			gScore[nbr.ID] = tentative
			cameFrom[nbr.ID] = cur.node
			f := tentative + h(nbr.ID, goal)

			if it, queued := inOpen[nbr.ID]; queued {
				// Decrease-key in place.
				it.gScore = tentative
				it.fScore = f
				heap.Fix(&open, it.index)
			} else {
				it = &item[N]{node: nbr.ID, gScore: tentative, fScore: f}
				heap.Push(&open, it)
				inOpen[nbr.ID] = it
			}
		}
	}

	// 5. Open set exhausted: goal unreachable.
	return res, ErrNoPath
}

// reconstruct walks the parent links goal → start and reverses them.
func reconstruct[N comparable](cameFrom map[N]N, start, goal N) []N {
	path := []N{goal}
	for cur := goal; cur != start; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
