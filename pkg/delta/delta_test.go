package delta

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplace(t *testing.T) {
	stored := map[string]int{"a": 1, "b": 2, "c": 3}
	listed := map[string]int{"b": 2, "c": 30, "d": 4}

	deltas := Replace(stored, listed, func(a, b int) bool { return a == b })

	assert.Equal(t, []string{"d"}, Keys(deltas, Added))
	assert.Equal(t, []string{"c"}, Keys(deltas, Updated))
	assert.Equal(t, []string{"a"}, Keys(deltas, Deleted))
	for _, d := range deltas {
		if d.Type == Updated {
			assert.Equal(t, 3, d.Old)
			assert.Equal(t, 30, d.New)
		}
	}
}

func TestReplaceNilEqualReportsEveryCommonKey(t *testing.T) {
	stored := Set[int64](1, 2)
	listed := Set[int64](2, 3)

	deltas := Replace(stored, listed, nil)

	assert.Equal(t, []int64{3}, SortedInt64(deltas, Added))
	assert.Equal(t, []int64{2}, SortedInt64(deltas, Updated))
	assert.Equal(t, []int64{1}, SortedInt64(deltas, Deleted))
}

func TestReplaceEmpty(t *testing.T) {
	deltas := Replace(map[string]int{}, nil, nil)
	assert.Empty(t, deltas)

	deltas = Replace(nil, map[string]int{"x": 1}, nil)
	keys := Keys(deltas, Added)
	sort.Strings(keys)
	assert.Equal(t, []string{"x"}, keys)
}
