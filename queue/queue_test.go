package queue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddnerd/collections/collection"
)

func TestQueueFIFO(t *testing.T) {
	q := New[int]()
	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 3, q.Len())

	for want := 1; want <= 3; want++ {
		v, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	_, err := q.Dequeue()
	require.ErrorIs(t, err, collection.ErrEmpty)
	require.Equal(t, 0, q.Len())
}

func TestQueuePeek(t *testing.T) {
	q := New[string]()
	_, err := q.Peek()
	require.ErrorIs(t, err, collection.ErrEmpty)

	q.Enqueue("first")
	q.Enqueue("second")

	front, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "first", front)
	require.Equal(t, 2, q.Len())
}

func TestQueueInterleaved(t *testing.T) {
	q := New[int]()
	next := 0
	want := 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < 2; i++ {
			v, err := q.Dequeue()
			require.NoError(t, err)
			require.Equal(t, want, v)
			want++
		}
	}
	require.Equal(t, 10, q.Len())
}

func TestQueueClear(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()
	require.True(t, q.IsEmpty())
	_, err := q.Peek()
	require.ErrorIs(t, err, collection.ErrEmpty)

	q.Enqueue(3)
	v, err := q.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func BenchmarkQueueEnqueueDequeue(b *testing.B) {
	q := New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if _, err := q.Dequeue(); err != nil {
			b.Fatal(err)
		}
	}
}
