package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

// buildChainWithShortcuts builds a line V0—V1—…—V(n-1) plus a shortcut
// every 10 vertices, giving a connected sparse graph for benchmarking.
func buildChainWithShortcuts(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%04d", i-1), fmt.Sprintf("V%04d", i), 0)
	}
	for i := 10; i < n; i += 10 {
		_, _ = g.AddEdge(fmt.Sprintf("V%04d", i-10), fmt.Sprintf("V%04d", i), 0)
	}

	return g
}

// BenchmarkBFS measures traversal cost on a 2000-vertex sparse graph.
func BenchmarkBFS(b *testing.B) {
	g := buildChainWithShortcuts(2000) // pre-build graph once
	b.ResetTimer()                     // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "V0000")
	}
}
