package minimum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/daysin/internal/types"
)

func TestFind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"single", []int{4}, 4},
		{"first is min", []int{-3, 2, 9}, -3},
		{"last is min", []int{5, 4, 3, 2, 1}, 1},
		{"duplicates", []int{2, 1, 1, 2}, 1},
		{"negatives", []int{-1, -10, -5}, -10},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Find(tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindEmpty(t *testing.T) {
	t.Parallel()
	_, err := Find(nil)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, err, tt.ErrInvalidInput)
}

func TestParse(t *testing.T) {
	t.Parallel()
	values, err := Parse([]string{"3,1", "  7", "-2"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 7, -2}, values)

	_, err = Parse([]string{"1", "two"})
	assert.ErrorIs(t, err, tt.ErrInvalidInput)

	values, err = Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}
