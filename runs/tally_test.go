package runs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	heads := Equal(byte('h'))
	tests := []struct {
		id     int
		n      int
		step   int
		source string
		want   []int
	}{
		{1, 3, 1, "hhtht", []int{2, 2, 1}},
		{2, 2, 2, "hhhh", []int{2, 2}},
		{3, 2, 1, "ht", []int{1}},
		{4, 3, 1, "ht", nil},
		{5, 1, 1, "hth", []int{1, 0, 1}},
	}
	for _, tt := range tests {
		got, err := Tally(tt.n, tt.step, heads, FromSlice([]byte(tt.source)))
		require.NoError(t, err, "test %d", tt.id)
		assert.Equal(t, tt.want, got, "test %d", tt.id)
	}
}

func TestTallyInvalidArguments(t *testing.T) {
	heads := Equal(byte('h'))
	_, err := Tally(0, 1, heads, FromSlice([]byte("hh")))
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Tally(2, -1, heads, FromSlice([]byte("hh")))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTallyAgreesWithCount(t *testing.T) {
	heads := Equal(byte('h'))
	source := "hhtthhhthhhhtt"
	n := 3
	tally, err := Tally(n, 1, heads, FromSlice([]byte(source)))
	require.NoError(t, err)
	count, err := Count(n, heads, FromSlice([]byte(source)))
	require.NoError(t, err)
	full := 0
	for _, m := range tally {
		if m == n {
			full++
		}
	}
	assert.Equal(t, count, full)
}
