package digits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/daysin/internal/types"
)

func TestReverse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{7, 7},
		{123, 321},
		{-123, -321},
		{120, 21},
		{1000, 1},
		{-1221, -1221},
	}
	for _, tc := range tests {
		got, err := Reverse(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Reverse(%d)", tc.in)
	}
}

func TestReverseLimits(t *testing.T) {
	t.Parallel()

	got, err := Reverse(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, 7085774586302733229, got)

	got, err = Reverse(math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, -8085774586302733229, got)

	for _, in := range []int{1999999999999999999, -1999999999999999999, 8999999999999999999} {
		got, err := Reverse(in)
		assert.Zero(t, got)
		assert.ErrorIs(t, err, ErrOverflow, "Reverse(%d)", in)
		assert.ErrorIs(t, err, tt.ErrInvalidInput)
	}
}

func TestIsPalindrome(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   int
		want bool
	}{
		{0, true},
		{5, true},
		{11, true},
		{121, true},
		{-1221, true},
		{707, true},
		{10, false},
		{123, false},
		{-222, true},
		{math.MinInt64, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsPalindrome(tc.in), "IsPalindrome(%d)", tc.in)
	}
}

func TestDigitCount(t *testing.T) {
	t.Parallel()
	for in, want := range map[int]int{0: 1, 9: 1, 10: 2, 12345: 5, math.MaxInt64: 19} {
		got, err := DigitCount(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "DigitCount(%d)", in)
	}

	_, err := DigitCount(-1)
	assert.ErrorIs(t, err, ErrNegative)
	assert.ErrorIs(t, err, tt.ErrInvalidInput)
}

func TestSumFirstAndLastDigit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{5, 10},
		{252, 4},
		{257, 9},
		{10, 1},
		{9008, 17},
	}
	for _, tc := range tests {
		got, err := SumFirstAndLastDigit(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "SumFirstAndLastDigit(%d)", tc.in)
	}

	_, err := SumFirstAndLastDigit(-10)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestToWords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   int
		want []string
	}{
		{0, []string{"Zero"}},
		{7, []string{"Seven"}},
		{100, []string{"One", "Zero", "Zero"}},
		{1010, []string{"One", "Zero", "One", "Zero"}},
		{123, []string{"One", "Two", "Three"}},
	}
	for _, tc := range tests {
		got, err := ToWords(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	got, err := ToWords(-12)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, tt.ErrInvalidInput)
}
