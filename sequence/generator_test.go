package sequence

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnfold(t *testing.T) {
	g := Unfold(1, func(s int) (int, int) { return s, 2 * s })
	got, err := Take[int](g, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64, 128}, got)
}

func TestUnfoldReset(t *testing.T) {
	g := Unfold(1, func(s int) (int, int) { return s, s + 1 })
	first, err := Take[int](g, 10)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		g.Next()
	}
	second, err := Take[int](g, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAt(t *testing.T) {
	g := Unfold(0, func(s int) (int, int) { return s, s + 3 })
	tests := []struct {
		id   int
		n    int
		want int
	}{
		{1, 0, 0},
		{2, 1, 3},
		{3, 10, 30},
		{4, 1000, 3000},
	}
	for _, tt := range tests {
		got, err := At[int](g, tt.n)
		require.NoError(t, err, "test %d", tt.id)
		assert.Equal(t, tt.want, got, "test %d", tt.id)
	}
}

func TestAtNegativeIndex(t *testing.T) {
	g := Unfold(0, func(s int) (int, int) { return s, s + 1 })
	_, err := At[int](g, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTakeNegativeCount(t *testing.T) {
	g := Unfold(0, func(s int) (int, int) { return s, s + 1 })
	_, err := Take[int](g, -5)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTakeZero(t *testing.T) {
	g := Unfold(0, func(s int) (int, int) { return s, s + 1 })
	got, err := Take[int](g, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Advancing a generator must not allocate: any hidden retention of emitted
// history would show up here as a non-zero allocation rate.
func TestUnfoldDoesNotRetainHistory(t *testing.T) {
	g := Unfold(0, func(s int) (int, int) { return s, s + 1 })
	allocs := testing.AllocsPerRun(10000, func() {
		g.Next()
	})
	assert.Zero(t, allocs)
}

func TestFibBoundedCarry(t *testing.T) {
	f := NewFib()
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	for i := 0; i < 100000; i++ {
		f.Next()
	}
	runtime.GC()
	runtime.ReadMemStats(&after)
	// The carry after 100000 steps is two integers of roughly 9 KB each.
	// Growth beyond a megabyte means discarded values are being retained.
	growth := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	assert.Less(t, growth, int64(1<<20))
}
