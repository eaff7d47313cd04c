package nqueens_test

import (
	"testing"

	"github.com/katalvlaran/algokit/nqueens"
)

func BenchmarkSolve8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := nqueens.Solve(8); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCount10(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := nqueens.Count(10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve8_FirstOnly(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := nqueens.Solve(8, nqueens.WithFirstOnly()); err != nil {
			b.Fatal(err)
		}
	}
}
