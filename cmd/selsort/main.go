// Command selsort demonstrates selection sort with a per-pass trace.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/algokit/selectsort"
)

func main() {
	nums := []int{64, 25, 12, 22, 11}
	fmt.Println("Before:", nums)

	selectsort.Sort(nums, selectsort.WithOnPass(func(pass, minIdx int) {
		fmt.Printf("  pass %d: min found at index %d -> %v\n", pass, minIdx, nums)
	}))

	fmt.Println("After: ", nums)
	if !selectsort.IsSorted(nums) {
		log.Fatal("result is not sorted")
	}

	words := selectsort.Sorted([]string{"pear", "apple", "cherry"})
	fmt.Println("Words:  ", words)
}
