// Package dfs implements depth-first search (single-source and forest)
// on a core.Graph, with cancellation, pre- and post-order hooks, depth
// and neighbor limits, and diagnostics.
//
// What
//
//   - DFS(g, startID, opts...): traverse from a root, or the whole forest
//     via WithFullTraversal (every disconnected component is covered).
//   - Result reports pre-order Order, per-vertex Depth and Parent links,
//     the Visited set, and a SkippedNeighbors diagnostic count.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order); a returned error
//     aborts the traversal and is wrapped with the vertex ID.
//   - Limits: MaxDepth (negative = unlimited), FilterNeighbor pruning.
//   - Cancellation via context.Context, checked on every vertex entry.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in ascending order and DFS recurses
//	in that order, so Order is fully reproducible - the same property the
//	rest of this module's algorithms rely on for stable demo output.
//
// Complexity
//
//   - Time:   O(V + E) plus hook and filter overhead.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Usage
//
//	res, err := dfs.DFS(g, "A")                         // one component
//	res, err := dfs.DFS(g, "A", dfs.WithFullTraversal()) // whole forest
//
// Errors
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartVertexNotFound if startID is missing.
//   - context.Canceled       if the context is done.
//   - any error returned by OnVisit or OnExit.
package dfs
