package nqueens_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/nqueens"
)

// ExampleSolve finds the first 4-Queens placement and draws it.
func ExampleSolve() {
	boards, err := nqueens.Solve(4, nqueens.WithFirstOnly())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(boards[0])

	// Output:
	// . Q . .
	// . . . Q
	// Q . . .
	// . . Q .
}

// ExampleCount reports the classic eight-queens figure.
func ExampleCount() {
	n, err := nqueens.Count(8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("8-Queens has %d solutions\n", n)

	// Output:
	// 8-Queens has 92 solutions
}
