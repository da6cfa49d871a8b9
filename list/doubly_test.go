package list

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddnerd/collections/collection"
)

func TestDoublyFresh(t *testing.T) {
	l := NewDoubly[int]()
	require.Equal(t, 0, l.Len())
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
	require.NoError(t, l.Validate())

	_, err := l.PopFront()
	require.ErrorIs(t, err, collection.ErrEmpty)
	_, err = l.PopBack()
	require.ErrorIs(t, err, collection.ErrEmpty)
}

func TestDoublyMirrorTraversal(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushFront(0)

	require.Equal(t, []int{0, 1, 2}, collection.Drain(l.Forward()))
	require.Equal(t, []int{2, 1, 0}, collection.Drain(l.Backward()))
	require.NoError(t, l.Validate())
}

func TestDoublyEndpoints(t *testing.T) {
	l := NewDoubly[int]()
	l.PushBack(1)
	require.Equal(t, l.Front(), l.Back())

	l.PushBack(2)
	require.Equal(t, 1, l.Front().Value)
	require.Equal(t, 2, l.Back().Value)
	require.Equal(t, l.Back(), l.Front().Next())
	require.Equal(t, l.Front(), l.Back().Prev())
	require.Nil(t, l.Front().Prev())
	require.Nil(t, l.Back().Next())
}

func TestDoublyPopBothEnds(t *testing.T) {
	l := NewDoubly[int]()
	for i := 1; i <= 4; i++ {
		l.PushBack(i)
	}

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 4, v)

	require.Equal(t, []int{2, 3}, collection.Drain(l.Forward()))
	require.NoError(t, l.Validate())
}

func TestDoublyRemoveByHandle(t *testing.T) {
	l := NewDoubly[int]()
	a := l.PushBack(1)
	b := l.PushBack(2)
	c := l.PushBack(3)

	// Interior removal relinks both neighbors.
	v, err := l.Remove(b)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.Equal(t, []int{1, 3}, collection.Drain(l.Forward()))
	require.NoError(t, l.Validate())

	// Head removal moves head.
	v, err = l.Remove(a)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, c, l.Front())
	require.NoError(t, l.Validate())

	// Tail removal empties the list.
	v, err = l.Remove(c)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	require.Equal(t, 0, l.Len())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
	require.NoError(t, l.Validate())
}

func TestDoublyDetachedHandleRejected(t *testing.T) {
	l := NewDoubly[int]()
	n := l.PushBack(1)

	_, err := l.Remove(n)
	require.NoError(t, err)

	_, err = l.Remove(n)
	require.ErrorIs(t, err, ErrOtherList)
	_, err = l.InsertAfter(n, 2)
	require.ErrorIs(t, err, ErrOtherList)
}

func TestDoublyForeignHandleRejected(t *testing.T) {
	l := NewDoubly[int]()
	other := NewDoubly[int]()
	n := other.PushBack(1)

	_, err := l.Remove(n)
	require.ErrorIs(t, err, ErrOtherList)
	_, err = l.InsertBefore(n, 2)
	require.ErrorIs(t, err, ErrOtherList)
	_, err = l.Remove(nil)
	require.ErrorIs(t, err, ErrOtherList)
}

func TestDoublyInsertNeighbors(t *testing.T) {
	l := NewDoubly[int]()
	a := l.PushBack(1)
	c := l.PushBack(3)

	b, err := l.InsertAfter(a, 2)
	require.NoError(t, err)
	require.Equal(t, b, a.Next())
	require.Equal(t, b, c.Prev())

	z, err := l.InsertBefore(a, 0)
	require.NoError(t, err)
	require.Equal(t, z, l.Front())

	d, err := l.InsertAfter(c, 4)
	require.NoError(t, err)
	require.Equal(t, d, l.Back())

	require.Equal(t, []int{0, 1, 2, 3, 4}, collection.Drain(l.Forward()))
	require.Equal(t, []int{4, 3, 2, 1, 0}, collection.Drain(l.Backward()))
	require.NoError(t, l.Validate())
}

func TestDoublyIndexedAccess(t *testing.T) {
	l := NewDoubly[int]()
	for i := 0; i < 10; i++ {
		l.PushBack(i * 10)
	}

	// Both halves, to cover traversal from either end.
	for _, index := range []int{0, 2, 5, 7, 9} {
		v, err := l.Get(index)
		require.NoError(t, err)
		require.Equal(t, index*10, v)
	}

	require.NoError(t, l.Set(8, -1))
	v, err := l.Get(8)
	require.NoError(t, err)
	require.Equal(t, -1, v)

	require.NoError(t, l.Swap(1, 9))
	first, _ := l.Get(1)
	last, _ := l.Get(9)
	require.Equal(t, 90, first)
	require.Equal(t, 10, last)

	_, err = l.Get(10)
	require.ErrorIs(t, err, collection.ErrOutOfBounds)
}

func TestDoublyClear(t *testing.T) {
	l := NewDoubly[int]()
	n := l.PushBack(1)
	l.PushBack(2)

	l.Clear()
	require.Equal(t, 0, l.Len())
	require.NoError(t, l.Validate())

	_, err := l.Remove(n)
	require.ErrorIs(t, err, ErrOtherList)

	l.PushBack(3)
	require.Equal(t, []int{3}, collection.Drain(l.Forward()))
	require.NoError(t, l.Validate())
}

func TestDoublyRandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	l := NewDoubly[int]()
	var handles []*Node[int]

	for step := 0; step < 1000; step++ {
		switch op := rng.Intn(4); {
		case op == 0 || l.Len() == 0:
			handles = append(handles, l.PushBack(step))
		case op == 1:
			handles = append(handles, l.PushFront(step))
		case op == 2 && len(handles) > 0:
			i := rng.Intn(len(handles))
			n := handles[i]
			handles = append(handles[:i], handles[i+1:]...)
			if _, err := l.Remove(n); err != nil {
				t.Fatalf("step %d: remove: %v", step, err)
			}
		default:
			if _, err := l.PopBack(); err != nil {
				t.Fatalf("step %d: pop back: %v", step, err)
			}
			handles = handles[:0] // stale set; rebuild lazily
		}
		if err := l.Validate(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		forward := collection.Drain(l.Forward())
		backward := collection.Drain(l.Backward())
		if len(forward) != l.Len() || len(backward) != l.Len() {
			t.Fatalf("step %d: traversal length mismatch", step)
		}
		for i := range forward {
			if forward[i] != backward[len(backward)-1-i] {
				t.Fatalf("step %d: traversals are not mirrored", step)
			}
		}
	}
}

func BenchmarkDoublyPushBack(b *testing.B) {
	l := NewDoubly[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.PushBack(i)
	}
}
