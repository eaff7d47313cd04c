package selectsort

import "cmp"

// Option configures a sort run via functional arguments.
type Option func(*options)

type options struct {
	// onPass observes each completed pass: the pass index (also the slot
	// being filled) and the index the minimum was found at before the swap.
	onPass func(pass, minIndex int)
}

// WithOnPass registers a callback fired after every pass with the slot
// index and the position the minimum was found at. Pass == minIndex means
// the element was already in place and no swap happened.
func WithOnPass(fn func(pass, minIndex int)) Option {
	return func(o *options) { o.onPass = fn }
}

// Sort sorts s in place into ascending order by selection sort: each pass
// scans the unsorted suffix for its minimum and swaps it into position.
//
// The invariant after pass i is that s[:i+1] holds the i+1 smallest
// elements in final order, so the sorted prefix only ever grows.
//
// Selection sort performs at most n-1 swaps regardless of input order,
// which is its one practical edge over insertion sort when writes are
// expensive. Not stable.
//
// Complexity: Θ(n²) comparisons in every case. Memory: O(1).
func Sort[T cmp.Ordered](s []T, opts ...Option) {
	SortFunc(s, cmp.Less[T], opts...)
}

// SortFunc is Sort with an explicit ordering: less reports whether a must
// sort before b. Use it for types without a natural order or to reverse one.
func SortFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := len(s)
	for pass := 0; pass < n-1; pass++ {
		// Scan the unsorted suffix for the minimum.
		minIdx := pass
		for j := pass + 1; j < n; j++ {
			if less(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != pass {
			s[pass], s[minIdx] = s[minIdx], s[pass]
		}
		if o.onPass != nil {
			o.onPass(pass, minIdx)
		}
	}
}

// Sorted returns an ascending copy of s, leaving the input untouched.
func Sorted[T cmp.Ordered](s []T, opts ...Option) []T {
	out := make([]T, len(s))
	copy(out, s)
	Sort(out, opts...)

	return out
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if cmp.Less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}
