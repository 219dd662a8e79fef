package segkit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		l := newIntList(t, 4)
		it := l.Iterator()
		assert.False(t, it.HasNext())
		assert.Panics(t, it.Next)
	})

	t.Run("forward", func(t *testing.T) {
		l := newIntList(t, 3)
		for i := 0; i < 10; i++ {
			l.PushBack(i)
		}

		var got []int
		for it := l.Iterator(); it.HasNext(); it.Next() {
			assert.Equal(t, len(got), it.Index())
			got = append(got, it.Value())
		}
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	})

	t.Run("mutable value", func(t *testing.T) {
		l := newIntList(t, 3)
		for i := 0; i < 5; i++ {
			l.PushBack(i)
		}

		for it := l.Iterator(); it.HasNext(); it.Next() {
			p := it.MutableValue()
			assert.Same(t, l.GetRefUnchecked(it.Index()), p)
			*p *= 10
		}
		assert.Equal(t, []int{0, 10, 20, 30, 40}, slices.Collect(l.Values()))
	})

	t.Run("sees pushes made during iteration", func(t *testing.T) {
		l := newIntList(t, 2)
		l.PushBack(0)

		n := 0
		for it := l.Iterator(); it.HasNext(); it.Next() {
			if it.Value() < 4 {
				l.PushBack(it.Value() + 1)
			}
			n++
		}
		assert.Equal(t, 5, n)
	})

	t.Run("past end panics", func(t *testing.T) {
		l := newIntList(t, 2)
		l.PushBack(1)
		it := l.Iterator()
		it.Next()
		require.False(t, it.HasNext())
		assert.Panics(t, it.Next)
	})
}

func TestReverseIterator(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		l := newIntList(t, 4)
		it := l.ReverseIterator()
		assert.False(t, it.HasNext())
		assert.Panics(t, it.Next)
	})

	t.Run("backward", func(t *testing.T) {
		l := newIntList(t, 3)
		for i := 0; i < 7; i++ {
			l.PushBack(i)
		}

		var got, idx []int
		for it := l.ReverseIterator(); it.HasNext(); it.Next() {
			got = append(got, it.Value())
			idx = append(idx, it.Index())
			*it.MutableValue() = -it.Value()
		}
		assert.Equal(t, []int{6, 5, 4, 3, 2, 1, 0}, got)
		assert.Equal(t, []int{6, 5, 4, 3, 2, 1, 0}, idx)
		assert.Equal(t, -6, l.LastUnchecked())
	})
}

func TestStableList_RangeFunc(t *testing.T) {
	l := newIntList(t, 4)
	for i := 0; i < 9; i++ {
		l.PushBack(i * i)
	}

	t.Run("all", func(t *testing.T) {
		for i, p := range l.All() {
			assert.Same(t, l.GetRefUnchecked(i), p)
			assert.Equal(t, i*i, *p)
		}
	})

	t.Run("values", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49, 64}, slices.Collect(l.Values()))
	})

	t.Run("backward", func(t *testing.T) {
		var idx []int
		for i, p := range l.Backward() {
			assert.Equal(t, i*i, *p)
			idx = append(idx, i)
		}
		assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}, idx)
	})

	t.Run("early break", func(t *testing.T) {
		n := 0
		for range l.All() {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)

		n = 0
		for range l.Values() {
			n++
			break
		}
		assert.Equal(t, 1, n)

		n = 0
		for range l.Backward() {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})
}
