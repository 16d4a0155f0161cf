package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		i      int
		length int
		want   int
	}{
		{"in range", 3, 5, 3},
		{"exact length", 5, 5, 0},
		{"above length", 12, 5, 2},
		{"minus one", -1, 5, 4},
		{"minus seven", -7, 5, 3},
		{"minus length", -5, 5, 0},
		{"zero length", 42, 0, 0},
		{"zero length negative", -3, 0, 0},
		{"single item", -9, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.i, tt.length))
		})
	}
}

func TestWrapRangeAndIdempotence(t *testing.T) {
	for length := 1; length <= 7; length++ {
		for i := -50; i <= 50; i++ {
			got := Wrap(i, length)
			require.GreaterOrEqual(t, got, 0, "Wrap(%d, %d)", i, length)
			require.Less(t, got, length, "Wrap(%d, %d)", i, length)
			require.Equal(t, got, Wrap(got, length), "Wrap not idempotent for (%d, %d)", i, length)
		}
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		length int
		want   []int
	}{
		{"empty", 3, 0, []int{}},
		{"single", 7, 1, []int{0}},
		{"two items even index", 0, 2, []int{0, 1}},
		{"two items odd index", 1, 2, []int{1, 0}},
		{"three from zero", 0, 3, []int{0, 1}},
		{"three from one", 1, 3, []int{1, 2}},
		{"three straddles wrap", 2, 3, []int{2, 0}},
		{"negative index", -1, 4, []int{3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VisibleWindow(tt.index, tt.length))
		})
	}
}

func TestVisibleWindowLength(t *testing.T) {
	for length := 0; length <= 6; length++ {
		want := 2
		if length < 2 {
			want = length
		}
		for i := -4; i <= 4; i++ {
			assert.Len(t, VisibleWindow(i, length), want, "index %d length %d", i, length)
		}
	}
}

func TestAdvanceRetreatInverse(t *testing.T) {
	for length := 1; length <= 7; length++ {
		for i := -10; i <= 10; i++ {
			assert.Equal(t, Wrap(i, length), Retreat(Advance(i, length), length), "index %d length %d", i, length)
			assert.Equal(t, Wrap(i, length), Advance(Retreat(i, length), length), "index %d length %d", i, length)
		}
	}
}

func TestAdvanceOddLengthPairing(t *testing.T) {
	// Five items: starts visit 0,2,4,1,3 and the pairs straddle the wrap on the way.
	index := 0
	var pairs [][]int
	for i := 0; i < 5; i++ {
		pairs = append(pairs, VisibleWindow(index, 5))
		index = Advance(index, 5)
	}
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4, 0}, {1, 2}, {3, 4}}, pairs)
	assert.Equal(t, 0, index)
}

func TestAdvanceEvenLengthPairing(t *testing.T) {
	index := 0
	var starts []int
	for i := 0; i < 3; i++ {
		starts = append(starts, index)
		index = Advance(index, 4)
	}
	assert.Equal(t, []int{0, 2, 0}, starts)
	assert.Equal(t, 2, Retreat(0, 4))
}

func TestAdvanceEmpty(t *testing.T) {
	assert.Equal(t, 0, Advance(3, 0))
	assert.Equal(t, 0, Retreat(3, 0))
}

func TestRebase(t *testing.T) {
	assert.Equal(t, 5, Rebase(5, 6))
	assert.Equal(t, 1, Rebase(5, 2))
	assert.Equal(t, 0, Rebase(5, 0))
	assert.Equal(t, 2, Rebase(-1, 3))
}

func TestWindow(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, []string{"c", "a"}, Window(items, 2))
	assert.Equal(t, []string{"b", "c"}, Window(items, -2))
	assert.Equal(t, []string{"a"}, Window([]string{"a"}, 9))
	assert.Empty(t, Window([]string(nil), 1))
}
