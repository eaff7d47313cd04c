package astar_test

import (
	"testing"

	"github.com/katalvlaran/algokit/astar"
)

// lattice is an n×n unit-cost 4-connected lattice over [2]int nodes.
type lattice int

func (l lattice) Neighbors(n [2]int) []astar.Neighbor[[2]int] {
	size := int(l)
	out := make([]astar.Neighbor[[2]int], 0, 4)
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		x, y := n[0]+d[0], n[1]+d[1]
		if x >= 0 && x < size && y >= 0 && y < size {
			out = append(out, astar.Neighbor[[2]int]{ID: [2]int{x, y}, Cost: 1})
		}
	}

	return out
}

func manhattan(from, goal [2]int) float64 {
	dx, dy := goal[0]-from[0], goal[1]-from[1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return float64(dx + dy)
}

func BenchmarkSearch_Lattice64(b *testing.B) {
	g := lattice(64)
	start, goal := [2]int{0, 0}, [2]int{63, 63}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search[[2]int](g, start, goal, manhattan); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Lattice64_Blind(b *testing.B) {
	g := lattice(64)
	start, goal := [2]int{0, 0}, [2]int{63, 63}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search[[2]int](g, start, goal, astar.Zero[[2]int]); err != nil {
			b.Fatal(err)
		}
	}
}
