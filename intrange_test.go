package seqview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intRangeElems(start, stop, step int64) []any {
	var elems []any
	if step > 0 {
		for v := start; v < stop; v += step {
			elems = append(elems, v)
		}
	} else {
		for v := start; v > stop; v += step {
			elems = append(elems, v)
		}
	}
	return elems
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		start, stop, step int64
	}{
		{0, 5, 1},
		{0, 0, 1},
		{5, 0, 1},
		{20, 30, 3},
		{10, -1, -2},
		{-5, 5, 4},
		{3, 4, 100},
	}
	for _, tt := range tests {
		r, err := NewIntRange(tt.start, tt.stop, tt.step)
		require.NoError(t, err)
		checkSeqLaws(t, r, intRangeElems(tt.start, tt.stop, tt.step))
	}
}

func TestIntRangeZeroStep(t *testing.T) {
	_, err := NewIntRange(0, 5, 0)
	require.ErrorIs(t, err, ErrZeroStep)
}

func TestUpTo(t *testing.T) {
	checkSeqLaws(t, UpTo(4), []any{int64(0), int64(1), int64(2), int64(3)})
	checkSeqLaws(t, UpTo(0), nil)
}

func TestIntRangeSearch(t *testing.T) {
	r, err := NewIntRange(20, 30, 3) // 20, 23, 26, 29
	require.NoError(t, err)

	found, err := r.Contains(int64(26))
	require.NoError(t, err)
	require.True(t, found)

	// 27 lies between two progression values.
	found, err = r.Contains(int64(27))
	require.NoError(t, err)
	require.False(t, found)

	// 32 continues the progression but is past the end.
	found, err = r.Contains(int64(32))
	require.NoError(t, err)
	require.False(t, found)

	// Only int64 values are contained.
	found, err = r.Contains(26)
	require.NoError(t, err)
	require.False(t, found)

	index, found, err := r.IndexOf(int64(29))
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, 3, index.Int64())

	_, found, err = r.IndexOf(int64(19))
	require.NoError(t, err)
	require.False(t, found)

	count, err := r.Count(int64(20))
	require.NoError(t, err)
	require.EqualValues(t, 1, count.Int64())

	count, err = r.Count(int64(21))
	require.NoError(t, err)
	require.Zero(t, count.Sign())
}

func TestIntRangeReversed(t *testing.T) {
	r, err := NewIntRange(10, -1, -2) // 10, 8, 6, 4, 2, 0
	require.NoError(t, err)

	rev := Reverse(r)
	require.IsType(t, new(IntRange), rev)
	checkSeqLaws(t, rev, []any{int64(0), int64(2), int64(4), int64(6), int64(8), int64(10)})
}

func TestIntRangeString(t *testing.T) {
	r, err := NewIntRange(20, 30, 3)
	require.NoError(t, err)
	require.Equal(t, "IntRange(20, 30, 3)", r.String())
}
