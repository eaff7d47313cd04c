package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNetwork constructs the undirected demo graph used throughout:
//
//	1──2──4      6──7
//	│  │        ╱
//	3──┼──────6
//	   5──────╯      H (isolated)
//
// Edges: 1-2, 1-3, 2-4, 2-5, 3-6, 5-6, 6-7; H has no edges.
func buildNetwork() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2", 0)
	_, _ = g.AddEdge("1", "3", 0)
	_, _ = g.AddEdge("2", "4", 0)
	_, _ = g.AddEdge("2", "5", 0)
	_, _ = g.AddEdge("3", "6", 0)
	_, _ = g.AddEdge("5", "6", 0)
	_, _ = g.AddEdge("6", "7", 0)
	_ = g.AddVertex("H")

	return g
}

// TestBFS_Validation covers nil graphs, missing starts, and bad options.
func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, "1")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := buildNetwork()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "1", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_LevelOrder verifies the deterministic level-by-level visit order.
func TestBFS_LevelOrder(t *testing.T) {
	g := buildNetwork()

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)

	// Level 0: 1. Level 1: 2,3. Level 2: 4,5,6. Level 3: 7.
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, res.Order)
	assert.Equal(t, 0, res.Depth["1"])
	assert.Equal(t, 1, res.Depth["3"])
	assert.Equal(t, 2, res.Depth["6"])
	assert.Equal(t, 3, res.Depth["7"])

	// The isolated vertex is not reached in single-source mode.
	_, reached := res.Depth["H"]
	assert.False(t, reached)
}

// TestBFS_VisitsReachableExactlyOnce checks the core traversal property.
func TestBFS_VisitsReachableExactlyOnce(t *testing.T) {
	g := buildNetwork()

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, id := range res.Order {
		seen[id]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "vertex %q visited more than once", id)
	}
	assert.Len(t, res.Order, 7)
}

// TestBFS_FullTraversal verifies forest mode covers every vertex once.
func TestBFS_FullTraversal(t *testing.T) {
	g := buildNetwork()

	res, err := bfs.BFS(g, "1", bfs.WithFullTraversal())
	require.NoError(t, err)

	// All 8 vertices, the isolated one last, each exactly once.
	assert.Len(t, res.Order, g.VertexCount())
	assert.Equal(t, "H", res.Order[len(res.Order)-1])
	assert.Equal(t, []string{"1", "H"}, res.Roots)
	assert.Equal(t, 0, res.Depth["H"], "component roots restart at depth 0")
}

// TestBFS_PathTo verifies shortest-path reconstruction in edge counts.
func TestBFS_PathTo(t *testing.T) {
	g := buildNetwork()

	res, err := bfs.BFS(g, "1")
	require.NoError(t, err)

	path, err := res.PathTo("7")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "6", "7"}, path)
	assert.Len(t, path, res.Depth["7"]+1)

	// Unreached destination errors out.
	_, err = res.PathTo("H")
	assert.Error(t, err)
}

// TestBFS_MaxDepth verifies the exploration horizon.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildNetwork()

	res, err := bfs.BFS(g, "1", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, res.Order)
}

// TestBFS_FilterNeighbor verifies edge-level pruning.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildNetwork()

	// Cut the 1→3 edge; 3 is still reached, but via the detour 1-2-5-6-3.
	res, err := bfs.BFS(g, "1", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "1" && nbr == "3")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "5", "6", "3", "7"}, res.Order)
	assert.Equal(t, 4, res.Depth["3"])
}

// TestBFS_Hooks verifies hook ordering and error propagation.
func TestBFS_Hooks(t *testing.T) {
	g := buildNetwork()

	var enqueued []string
	_, err := bfs.BFS(g, "1",
		bfs.WithOnEnqueue(func(id string, _ int) { enqueued = append(enqueued, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, enqueued)

	// A failing OnVisit hook aborts the walk and is wrapped.
	hookErr := errors.New("boom")
	_, err = bfs.BFS(g, "1", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "3" {
			return hookErr
		}

		return nil
	}))
	assert.ErrorIs(t, err, hookErr)
}

// TestBFS_Cancellation verifies the context contract.
func TestBFS_Cancellation(t *testing.T) {
	g := buildNetwork()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before the walk starts

	_, err := bfs.BFS(g, "1", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
