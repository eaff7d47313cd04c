// Package mst provides the two classic greedy algorithms for computing a
// Minimum Spanning Tree on an undirected, weighted *core.Graph — Kruskal
// and Prim — plus a spanning-forest variant and the DisjointSet
// (union-find) structure Kruskal is built on.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is
//     a subset T ⊆ E that connects all of V with minimal total weight.
//   - Both algorithms are canonical examples of the greedy paradigm: each
//     step makes the locally cheapest safe choice, and the cut property
//     guarantees the global optimum.
//
// Algorithms provided
//
//   - Kruskal(g, opts...) — sort all edges ascending by weight, accept an
//     edge exactly when its endpoints lie in different DisjointSet sets,
//     stop after |V|−1 acceptances.
//     Time O(E log E + α(V)·E) ≈ O(E log V); space O(V + E).
//   - Prim(g, root, opts...) — grow a single tree from root, always taking
//     the cheapest edge that reaches a new vertex, via a min-heap frontier.
//     Time O(E log V); space O(V + E).
//   - Forest(g, opts...) — Kruskal without the connectivity requirement:
//     returns the minimum spanning forest of a disconnected graph (one
//     tree per component) instead of ErrDisconnected.
//   - Compute(g, opts...) — dispatcher selecting a method by option, with
//     WithOnAccept(fn) tracing every greedy acceptance for step-by-step
//     demonstrations.
//
// Determinism
//
//	Edges are stable-sorted by weight over the ID-ordered Edges() slice
//	(Kruskal) or tie-broken by edge ID in the heap (Prim), so equal-weight
//	graphs always produce the same tree.
//
// Properties (verified in tests)
//
//   - Kruskal and Prim agree on the total weight of any connected input.
//   - A spanning tree has exactly |V|−1 edges and touches every vertex.
//   - A forest has |V|−c edges for c components.
//
// Errors
//
//   - ErrInvalidGraph        when the graph is nil, directed, or unweighted.
//   - ErrEmptyRoot           when Prim is started without a root.
//   - core.ErrVertexNotFound when Prim's root is absent.
//   - ErrDisconnected        when no spanning tree exists (use Forest instead).
package mst
