package digits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorRemove(t *testing.T) {
	s := mustOf(t, 3, 0, 1, 0, 2, 0)

	it := s.Iterator()
	assert.ErrorIs(t, it.Remove(), ErrState)

	var seen []int
	for it.Next() {
		seen = append(seen, it.Value())
		if it.Value() == 0 {
			require.NoError(t, it.Remove())
			assert.ErrorIs(t, it.Remove(), ErrState)
		}
	}
	assert.Equal(t, []int{0, 1, 0, 2, 0}, seen)
	assertLinks(t, s, 1, 2)
	assert.False(t, it.Next())
}

func TestListIteratorWalk(t *testing.T) {
	s := mustOf(t, 10, 1, 2, 3)

	it, err := s.ListIterator(0)
	require.NoError(t, err)
	assert.False(t, it.HasPrevious())
	assert.Equal(t, -1, it.PreviousIndex())

	var fwd []int
	for it.HasNext() {
		d, err := it.Next()
		require.NoError(t, err)
		fwd = append(fwd, d)
	}
	assert.Equal(t, []int{1, 2, 3}, fwd)
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 3, it.NextIndex())

	var back []int
	for it.HasPrevious() {
		d, err := it.Previous()
		require.NoError(t, err)
		back = append(back, d)
	}
	assert.Equal(t, []int{3, 2, 1}, back)
	_, err = it.Previous()
	assert.ErrorIs(t, err, ErrExhausted)

	_, err = s.ListIterator(4)
	assert.ErrorIs(t, err, ErrIndex)
	it, err = s.ListIterator(3)
	require.NoError(t, err)
	d, err := it.Previous()
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestListIteratorRemove(t *testing.T) {
	s := mustOf(t, 10, 1, 2, 3, 4)

	it, err := s.ListIterator(1)
	require.NoError(t, err)
	d, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	require.NoError(t, it.Remove())
	assert.Equal(t, 1, it.NextIndex())
	assertLinks(t, s, 1, 3, 4)

	d, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = it.Previous()
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	require.NoError(t, it.Remove())
	assert.Equal(t, 1, it.NextIndex())
	assertLinks(t, s, 1, 4)

	d, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, d)
	assert.ErrorIs(t, it.Set(11), ErrRange)
	require.NoError(t, it.Set(9))
	assertLinks(t, s, 1, 9)
}

func TestListIteratorInsert(t *testing.T) {
	s := mustOf(t, 10, 1, 3)

	it, err := s.ListIterator(0)
	require.NoError(t, err)
	_, err = it.Next()
	require.NoError(t, err)

	require.NoError(t, it.Insert(2))
	assert.ErrorIs(t, it.Remove(), ErrState)
	assert.ErrorIs(t, it.Set(5), ErrState)
	assert.Equal(t, 2, it.NextIndex())

	d, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	require.NoError(t, it.Insert(4))
	assert.False(t, it.HasNext())
	assertLinks(t, s, 1, 2, 3, 4)

	d, err = it.Previous()
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	assert.ErrorIs(t, it.Insert(10), ErrRange)
	assertLinks(t, s, 1, 2, 3, 4)

	empty := mustOf(t, 10)
	it, err = empty.ListIterator(0)
	require.NoError(t, err)
	require.NoError(t, it.Insert(7))
	assertLinks(t, empty, 7)
}
