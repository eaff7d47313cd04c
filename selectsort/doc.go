// Package selectsort implements selection sort over generic slices.
//
// # What
//
//   - Sort(s)              — in-place ascending sort for any cmp.Ordered type.
//   - SortFunc(s, less)    — in-place sort under a caller-supplied ordering.
//   - Sorted(s)            — sorted copy, input untouched.
//   - IsSorted(s)          — order check.
//   - WithOnPass(fn)       — per-pass trace hook for step-by-step demos.
//
// # Why
//
// Selection sort is the simplest comparison sort worth writing down: scan
// for the minimum, swap it to the front, repeat on the rest. It is Θ(n²)
// and never the right tool for large inputs — the standard library's
// slices.Sort is — but it performs at most n−1 swaps, and its fixed pass
// structure makes it the usual vehicle for teaching loop invariants.
//
// # Usage
//
//	nums := []int{64, 25, 12, 22, 11}
//	selectsort.Sort(nums)
//	// nums == [11 12 22 25 64]
//
// # Errors
//
// None. Sorting cannot fail; an empty or single-element slice is a no-op.
package selectsort
