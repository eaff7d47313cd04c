package selectsort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/selectsort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSort_Basic verifies the classic demo input.
func TestSort_Basic(t *testing.T) {
	nums := []int{64, 25, 12, 22, 11}
	selectsort.Sort(nums)
	assert.Equal(t, []int{11, 12, 22, 25, 64}, nums)
}

// TestSort_EdgeCases verifies degenerate inputs are handled in place.
func TestSort_EdgeCases(t *testing.T) {
	var empty []int
	selectsort.Sort(empty)
	assert.Empty(t, empty)

	single := []int{7}
	selectsort.Sort(single)
	assert.Equal(t, []int{7}, single)

	sorted := []int{1, 2, 3, 4}
	selectsort.Sort(sorted)
	assert.Equal(t, []int{1, 2, 3, 4}, sorted)

	reversed := []int{4, 3, 2, 1}
	selectsort.Sort(reversed)
	assert.Equal(t, []int{1, 2, 3, 4}, reversed)

	dupes := []int{5, 1, 5, 1, 5}
	selectsort.Sort(dupes)
	assert.Equal(t, []int{1, 1, 5, 5, 5}, dupes)
}

// TestSort_OtherOrderedTypes verifies the generic instantiations.
func TestSort_OtherOrderedTypes(t *testing.T) {
	words := []string{"pear", "apple", "cherry"}
	selectsort.Sort(words)
	assert.Equal(t, []string{"apple", "cherry", "pear"}, words)

	floats := []float64{2.5, -1.0, 0.5}
	selectsort.Sort(floats)
	assert.Equal(t, []float64{-1.0, 0.5, 2.5}, floats)
}

// TestSortFunc_Descending verifies a caller-supplied ordering.
func TestSortFunc_Descending(t *testing.T) {
	nums := []int{3, 1, 4, 1, 5}
	selectsort.SortFunc(nums, func(a, b int) bool { return a > b })
	assert.Equal(t, []int{5, 4, 3, 1, 1}, nums)
}

// TestSorted_LeavesInputUntouched verifies the copying variant.
func TestSorted_LeavesInputUntouched(t *testing.T) {
	in := []int{3, 1, 2}
	out := selectsort.Sorted(in)
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in)
}

// TestSort_OnPass verifies the trace hook fires once per pass with the
// position the minimum was found at.
func TestSort_OnPass(t *testing.T) {
	nums := []int{64, 25, 12, 22, 11}

	type step struct{ pass, minIdx int }
	var trace []step
	selectsort.Sort(nums, selectsort.WithOnPass(func(pass, minIdx int) {
		trace = append(trace, step{pass, minIdx})
	}))

	// n-1 passes for n elements.
	require.Len(t, trace, 4)
	assert.Equal(t, []step{
		{0, 4}, // 11 found at the end
		{1, 2}, // 12
		{2, 3}, // 22
		{3, 3}, // 25 already in place
	}, trace)
}

// TestSort_Random cross-checks against IsSorted on seeded random input.
func TestSort_Random(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	nums := make([]int, 500)
	for i := range nums {
		nums[i] = r.Intn(1000)
	}
	selectsort.Sort(nums)
	assert.True(t, selectsort.IsSorted(nums))
}
