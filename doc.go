// Package algokit is a teaching-grade collection of classic algorithms,
// with one self-contained package per topic and one runnable demo per
// package under cmd/.
//
// What lives here:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/        — breadth-first traversal with level order, depth map and path recovery
//	dfs/        — depth-first traversal with pre-/post-order hooks and forest mode
//	astar/      — generic A* search over any neighbor-expanding graph
//	grid/       — obstacle grids as A* search spaces (4- or 8-connected)
//	mst/        — minimum spanning trees: Kruskal, Prim, spanning forests, DisjointSet
//	nqueens/    — N-Queens backtracking with branch pruning
//	selectsort/ — selection sort, the textbook greedy sorter
//	chatbot/    — keyword-rule chatbot with an interactive session loop
//	vispath/    — collision-free routes around polygonal obstacles (visibility graph + A*)
//
// Every algorithm package follows the same conventions: sentinel errors,
// functional options with DefaultOptions(), context-aware long loops, and
// deterministic iteration order so that demo output is reproducible.
//
// The cmd/ directory holds one standalone binary per demonstration; each
// prints a worked example to stdout and verifies the properties stated in
// its package documentation.
package algokit
