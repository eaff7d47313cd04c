package astar_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/algokit/astar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacency is a minimal map-backed search space for tests.
type adjacency map[string][]astar.Neighbor[string]

func (a adjacency) Neighbors(n string) []astar.Neighbor[string] { return a[n] }

// buildDiamond returns a weighted diamond where the cheap route is the
// two-hop A→B→D (cost 3) rather than the direct A→D (cost 10):
//
//	    B
//	  1╱ ╲2
//	  A───D      A→C→D costs 5+5
//	 5 ╲ ╱5  10
//	    C
func buildDiamond() adjacency {
	return adjacency{
		"A": {{ID: "B", Cost: 1}, {ID: "C", Cost: 5}, {ID: "D", Cost: 10}},
		"B": {{ID: "D", Cost: 2}},
		"C": {{ID: "D", Cost: 5}},
		"D": nil,
	}
}

// TestSearch_Validation covers the nil search space.
func TestSearch_Validation(t *testing.T) {
	_, err := astar.Search[string](nil, "A", "D", astar.Zero[string])
	assert.ErrorIs(t, err, astar.ErrGraphNil)
}

// TestSearch_OptimalCost verifies the cheapest route wins over the direct edge.
func TestSearch_OptimalCost(t *testing.T) {
	res, err := astar.Search[string](buildDiamond(), "A", "D", astar.Zero[string])
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

// TestSearch_StartIsGoal verifies the degenerate single-node search.
func TestSearch_StartIsGoal(t *testing.T) {
	res, err := astar.Search[string](buildDiamond(), "A", "A", astar.Zero[string])
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Expanded)
}

// TestSearch_NoPath verifies ErrNoPath on an unreachable goal.
func TestSearch_NoPath(t *testing.T) {
	g := adjacency{
		"A": {{ID: "B", Cost: 1}},
		"B": nil,
		"Z": nil, // disconnected
	}

	res, err := astar.Search[string](g, "A", "Z", astar.Zero[string])
	assert.ErrorIs(t, err, astar.ErrNoPath)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

// TestSearch_DecreaseKey forces a queued node to be improved in place.
func TestSearch_DecreaseKey(t *testing.T) {
	// D is first queued through the expensive direct edge (cost 10), then
	// improved in place to 3 when B is expanded.
	res, err := astar.Search[string](buildDiamond(), "A", "D", astar.Zero[string])
	require.NoError(t, err)

	assert.Equal(t, 3.0, res.Cost)
	// Every node is expanded at most once despite the re-queues.
	assert.LessOrEqual(t, res.Expanded, 4)
}

// TestSearch_HeuristicPrunesExpansions compares A* against Dijkstra on a
// grid-shaped space where the heuristic is informative and admissible.
func TestSearch_HeuristicPrunesExpansions(t *testing.T) {
	// 20-node line with a branch at every node; goal at the far end.
	g := adjacency{}
	for i := 0; i < 20; i++ {
		id := string(rune('a' + i))
		if i < 19 {
			next := string(rune('a' + i + 1))
			g[id] = append(g[id], astar.Neighbor[string]{ID: next, Cost: 1})
		}
		// dead-end spur
		g[id] = append(g[id], astar.Neighbor[string]{ID: id + "'", Cost: 1})
	}

	// Admissible: remaining letters to 't'.
	h := func(from, goal string) float64 {
		return float64(int(goal[0]) - int(from[0]))
	}

	guided, err := astar.Search[string](g, "a", "t", h)
	require.NoError(t, err)
	blind, err := astar.Search[string](g, "a", "t", astar.Zero[string])
	require.NoError(t, err)

	assert.Equal(t, blind.Cost, guided.Cost, "heuristic must not change the optimum")
	assert.Less(t, guided.Expanded, blind.Expanded, "informative heuristic should prune work")
}

// TestSearch_OnExpandHook verifies the expansion observer.
func TestSearch_OnExpandHook(t *testing.T) {
	var order []string
	_, err := astar.Search[string](buildDiamond(), "A", "D", astar.Zero[string],
		astar.WithOnExpand[string](func(n string, _ float64) { order = append(order, n) }),
	)
	require.NoError(t, err)

	assert.Equal(t, "A", order[0], "start expands first")
	assert.Equal(t, "D", order[len(order)-1], "goal expands last")
}

// TestSearch_Cancellation verifies the context contract.
func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := astar.Search[string](buildDiamond(), "A", "D", astar.Zero[string],
		astar.WithContext[string](ctx),
	)
	assert.ErrorIs(t, err, context.Canceled)
}
