package linearlist

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i5heu/boundedkit/pkg/errs"
)

func newList(t *testing.T, capacity int, keys ...int) *List {
	t.Helper()
	l, err := New(capacity)
	require.NoError(t, err)
	for _, k := range keys {
		_, err := l.InsertRepeated(k)
		require.NoError(t, err)
	}
	return l
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	l, err := New(0)
	require.ErrorIs(t, err, errs.ErrInvalidCapacity)
	assert.Nil(t, l)
}

func TestSearch(t *testing.T) {
	l := newList(t, 5)
	_, found := l.Search(1)
	assert.False(t, found, "empty list")

	l = newList(t, 5, 3, 1, 4, 1)
	pos, found := l.Search(1)
	require.True(t, found)
	assert.Equal(t, 1, pos, "first match wins")

	_, found = l.Search(9)
	assert.False(t, found)
}

func TestInsertUnique(t *testing.T) {
	l := newList(t, 2)

	pos, err := l.Insert(8)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	_, err = l.Insert(8)
	require.ErrorIs(t, err, ErrDuplicate)

	pos, err = l.Insert(3)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	// duplicate is reported before capacity
	_, err = l.Insert(3)
	require.ErrorIs(t, err, ErrDuplicate)
	_, err = l.Insert(4)
	require.ErrorIs(t, err, ErrFull)
}

func TestInsertRepeated(t *testing.T) {
	l := newList(t, 3)
	for want := 0; want < 3; want++ {
		pos, err := l.InsertRepeated(5)
		require.NoError(t, err)
		assert.Equal(t, want, pos)
	}
	_, err := l.InsertRepeated(5)
	require.ErrorIs(t, err, ErrFull)
	assert.Equal(t, []int{5, 5, 5}, l.Values())
}

func TestRemovePreservesOrder(t *testing.T) {
	l := newList(t, 5)
	for _, k := range []int{9, 2, 7, 4} {
		_, err := l.Insert(k)
		require.NoError(t, err)
	}

	v, err := l.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{9, 7, 4}, l.Values())

	_, found := l.Search(2)
	assert.False(t, found)

	_, err = l.Remove(2)
	require.ErrorIs(t, err, ErrNotFound)

	v, err = l.Remove(4)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{9, 7}, l.Values())
}

func TestBinarySearch(t *testing.T) {
	l := newList(t, 8)
	_, found := l.BinarySearch(3)
	assert.False(t, found)

	l = newList(t, 8, 1, 3, 5, 7, 9, 11)
	for i, k := range []int{1, 3, 5, 7, 9, 11} {
		pos, found := l.BinarySearch(k)
		require.True(t, found)
		assert.Equal(t, i, pos)
	}
	for _, k := range []int{0, 2, 6, 12} {
		_, found := l.BinarySearch(k)
		assert.False(t, found, "key %d", k)
	}
}

func TestInsertionPoint(t *testing.T) {
	assert.Equal(t, 0, newList(t, 4).InsertionPoint(42))

	l := newList(t, 8, 10, 20, 30)
	cases := map[int]int{5: 0, 10: 0, 15: 1, 20: 1, 25: 2, 30: 2, 35: 3}
	for key, want := range cases {
		assert.Equal(t, want, l.InsertionPoint(key), "key %d", key)
	}
}

func TestSortedScenario(t *testing.T) {
	l := newList(t, 4)

	pos, err := l.InsertSorted(5)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	pos, err = l.InsertSorted(2)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
	assert.Equal(t, []int{2, 5}, l.Values())

	pos, err = l.InsertSorted(8)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	_, err = l.InsertSorted(2)
	require.ErrorIs(t, err, ErrDuplicate)

	v, err := l.RemoveSorted(5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, []int{2, 8}, l.Values())
}

func TestInsertSortedFull(t *testing.T) {
	l := newList(t, 2, 1, 2)
	// capacity is reported before duplicate
	_, err := l.InsertSorted(2)
	require.ErrorIs(t, err, ErrFull)
	_, err = l.InsertSorted(0)
	require.ErrorIs(t, err, ErrFull)
}

func TestRemoveSortedPastEndAtFullOccupancy(t *testing.T) {
	l := newList(t, 3, 1, 2, 3)
	require.True(t, l.IsFull())

	_, err := l.RemoveSorted(99)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = l.RemoveSorted(0)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []int{1, 2, 3}, l.Values())
}

func TestRemoveSortedEmpty(t *testing.T) {
	_, err := newList(t, 3).RemoveSorted(1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestShiftRight(t *testing.T) {
	l := newList(t, 5, 1, 2, 3)
	l.shiftRight(1)
	assert.Equal(t, []int{1, 2, 2, 3, 0}, l.buf, "buf[1:3] moved to buf[2:4]")

	l = newList(t, 4, 1, 2, 3)
	l.shiftRight(3)
	assert.Equal(t, []int{1, 2, 3, 0}, l.buf, "shift at count moves nothing")
}

func TestShiftLeft(t *testing.T) {
	l := newList(t, 4, 1, 2, 3, 4)
	l.shiftLeft(1)
	assert.Equal(t, []int{1, 3, 4, 4}, l.buf, "buf[2:4] moved to buf[1:3]")

	l = newList(t, 4, 1, 2, 3)
	l.shiftLeft(2)
	assert.Equal(t, []int{1, 2, 3, 0}, l.buf, "removing the last element moves nothing")
}

// TestSortedInvariant inserts and removes random distinct keys and checks
// ordering plus the position of every key after each step.
func TestSortedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const capacity = 32
	l := newList(t, capacity)
	present := map[int]bool{}

	for step := 0; step < 4000; step++ {
		key := rng.Intn(64)
		if rng.Intn(3) > 0 {
			_, err := l.InsertSorted(key)
			switch {
			case len(present) == capacity:
				require.ErrorIs(t, err, ErrFull)
			case present[key]:
				require.ErrorIs(t, err, ErrDuplicate)
			default:
				require.NoError(t, err)
				present[key] = true
			}
		} else {
			v, err := l.RemoveSorted(key)
			if present[key] {
				require.NoError(t, err)
				require.Equal(t, key, v)
				delete(present, key)
			} else {
				require.ErrorIs(t, err, ErrNotFound)
			}
		}

		require.True(t, l.IsSorted())
		want := make([]int, 0, len(present))
		for k := range present {
			want = append(want, k)
		}
		sort.Ints(want)
		require.Equal(t, want, l.Values())
		for i, k := range want {
			pos, found := l.BinarySearch(k)
			require.True(t, found)
			require.Equal(t, i, pos)
		}
	}
}

func TestAt(t *testing.T) {
	l := newList(t, 3, 4, 5)
	v, ok := l.At(1)
	require.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = l.At(2)
	assert.False(t, ok)
	_, ok = l.At(-1)
	assert.False(t, ok)
}

func TestClose(t *testing.T) {
	l := newList(t, 3, 1, 2)
	require.NoError(t, l.Close())
	require.ErrorIs(t, l.Close(), ErrClosed)

	for _, op := range []func(int) (int, error){l.Insert, l.InsertRepeated, l.Remove, l.InsertSorted, l.RemoveSorted} {
		_, err := op(1)
		require.ErrorIs(t, err, ErrClosed)
	}
	_, found := l.Search(1)
	assert.False(t, found)
	_, found = l.BinarySearch(1)
	assert.False(t, found)
	assert.True(t, l.IsEmpty())
	assert.False(t, l.IsFull())
	assert.Equal(t, 0, l.Cap())
}
