// Command queens demonstrates the N-Queens backtracking solver: the
// first 8-Queens board, the total solution count, and small-size counts.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/algokit/nqueens"
)

func main() {
	boards, err := nqueens.Solve(8, nqueens.WithFirstOnly())
	if err != nil {
		log.Fatalf("solve: %v", err)
	}
	fmt.Println("First 8-Queens solution:")
	fmt.Print(boards[0])
	fmt.Println("Columns by row:", []int(boards[0]))

	total, err := nqueens.Count(8)
	if err != nil {
		log.Fatalf("count: %v", err)
	}
	fmt.Printf("\n8-Queens has %d solutions\n", total)
	if total != 92 {
		log.Fatalf("expected 92 solutions, got %d", total)
	}

	fmt.Println("\nSolutions by board size:")
	for n := 1; n <= 8; n++ {
		c, cerr := nqueens.Count(n)
		if cerr != nil {
			log.Fatalf("count %d: %v", n, cerr)
		}
		fmt.Printf("  n=%d: %d\n", n, c)
	}
}
