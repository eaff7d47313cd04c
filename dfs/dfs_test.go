package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildComponents constructs the two-component undirected demo graph:
//
//	A──B──D
//	│  │
//	C  E
//	╲  │
//	 ╲ F──╯        G (isolated)
//
// Edges: A-B, A-C, B-D, B-E, C-F, E-F; G has no edges.
func buildComponents() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("B", "E", 0)
	_, _ = g.AddEdge("C", "F", 0)
	_, _ = g.AddEdge("E", "F", 0)
	_ = g.AddVertex("G")

	return g
}

// TestDFS_Validation covers nil graphs and missing start vertices.
func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildComponents()
	_, err = dfs.DFS(g, "missing")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// TestDFS_PreOrder verifies depth-first discovery order with sorted neighbors.
func TestDFS_PreOrder(t *testing.T) {
	g := buildComponents()

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	// A dives through B,D, backtracks to E, reaches F and finally C.
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, 4, res.Depth["C"])
	assert.Equal(t, "F", res.Parent["C"])

	// The isolated vertex stays untouched in single-source mode.
	assert.False(t, res.Visited["G"])
}

// TestDFS_VisitsReachableExactlyOnce checks the core traversal property.
func TestDFS_VisitsReachableExactlyOnce(t *testing.T) {
	g := buildComponents()

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, id := range res.Order {
		seen[id]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "vertex %q visited more than once", id)
	}
	assert.Len(t, res.Order, 6)
}

// TestDFS_FullTraversal verifies the forest covers every vertex exactly once.
func TestDFS_FullTraversal(t *testing.T) {
	g := buildComponents()

	res, err := dfs.DFS(g, "A", dfs.WithFullTraversal())
	require.NoError(t, err)

	assert.Len(t, res.Order, g.VertexCount())
	assert.Equal(t, "G", res.Order[len(res.Order)-1])
	assert.True(t, res.Visited["G"])
	assert.Equal(t, 0, res.Depth["G"], "new component roots restart at depth 0")
}

// TestDFS_MaxDepth verifies the recursion horizon.
func TestDFS_MaxDepth(t *testing.T) {
	g := buildComponents()

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)

	// Only A and its immediate neighbors are recorded.
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestDFS_FilterAndDiagnostics verifies pruning and the skip counter.
func TestDFS_FilterAndDiagnostics(t *testing.T) {
	g := buildComponents()

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(nbr string) bool {
		return nbr != "E"
	}))
	require.NoError(t, err)

	// E is pruned wherever it appears (under B and under F).
	assert.NotContains(t, res.Order, "E")
	assert.Equal(t, []string{"A", "B", "D", "C", "F"}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

// TestDFS_Hooks verifies pre-/post-order hook sequencing and error wrapping.
func TestDFS_Hooks(t *testing.T) {
	g := buildComponents()

	var pre, post []string
	_, err := dfs.DFS(g, "A",
		dfs.WithOnVisit(func(id string) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string) error { post = append(post, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "F", "C"}, pre)
	// Post-order: leaves first, root last.
	assert.Equal(t, []string{"D", "C", "F", "E", "B", "A"}, post)

	// A failing hook aborts and is wrapped.
	hookErr := errors.New("stop here")
	_, err = dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		if id == "D" {
			return hookErr
		}

		return nil
	}))
	assert.ErrorIs(t, err, hookErr)
}

// TestDFS_Cancellation verifies the context contract.
func TestDFS_Cancellation(t *testing.T) {
	g := buildComponents()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
