package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProductCanonicalOrder verifies last-dimension-fastest enumeration.
func TestProductCanonicalOrder(t *testing.T) {
	p := productOf(replayOfSlice([]int{1, 2}), replayOfSlice([]int{10, 20, 30}))

	var got [][]int
	for tuple, ok := p.next(); ok; tuple, ok = p.next() {
		got = append(got, tuple)
	}
	want := [][]int{
		{1, 10}, {1, 20}, {1, 30},
		{2, 10}, {2, 20}, {2, 30},
	}
	require.Equal(t, want, got)

	// Exhausted products stay exhausted.
	_, ok := p.next()
	require.False(t, ok)
}

// TestProductZeroDimensions yields exactly one empty tuple.
func TestProductZeroDimensions(t *testing.T) {
	p := productOf[int]()
	tuple, ok := p.next()
	require.True(t, ok)
	require.Empty(t, tuple)
	_, ok = p.next()
	require.False(t, ok)
}

// TestProductEmptyDimension empties the whole product.
func TestProductEmptyDimension(t *testing.T) {
	p := productOf(replayOfSlice([]int{1, 2}), replayOfSlice[int](nil))
	_, ok := p.next()
	require.False(t, ok)
}

// TestReplayPullsEachPositionOnce checks memoization over repeated passes.
func TestReplayPullsEachPositionOnce(t *testing.T) {
	pulls := 0
	next := 0
	dim := replayOf(func() (int, bool) {
		if next == 2 {
			return 0, false
		}
		pulls++
		next++

		return next, true
	})

	// The fast dimension is replayed once per slow-dimension step.
	p := productOf(replayOfSlice([]int{10, 20, 30}), dim)
	count := 0
	for _, ok := p.next(); ok; _, ok = p.next() {
		count++
	}
	require.Equal(t, 6, count)
	require.Equal(t, 2, pulls)
}

// TestProductLazySlowDimension verifies that later positions of the slow
// dimension are not pulled until needed.
func TestProductLazySlowDimension(t *testing.T) {
	pulled := 0
	slow := replayOf(func() (int, bool) {
		pulled++

		return pulled, true
	})
	p := productOf(slow, replayOfSlice([]int{1, 2}))

	tuple, ok := p.next()
	require.True(t, ok)
	require.Equal(t, []int{1, 1}, tuple)
	require.Equal(t, 1, pulled, "only the first slow position should be materialized")

	_, ok = p.next()
	require.True(t, ok)
	require.Equal(t, 1, pulled)

	tuple, ok = p.next()
	require.True(t, ok)
	require.Equal(t, []int{2, 1}, tuple)
	require.Equal(t, 2, pulled)
}
