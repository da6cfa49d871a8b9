// Package queue provides a FIFO adapter over a doubly linked list
// backing store.
//
// Backing-store choice: a queue needs back insertion and front removal
// to both be cheap. list.Doubly gives O(1) worst-case at both ends
// through its tail reference. A singly linked list without a tail
// would degrade enqueue to O(n); a plain dynamic array without front
// capacity would degrade dequeue to O(n). The list pays one node
// allocation per enqueue in exchange for no amortized spikes.
package queue

import (
	"github.com/cockroachdb/errors"

	"github.com/oddnerd/collections/collection"
	"github.com/oddnerd/collections/list"
)

// Queue is a first-in-first-out adapter: Dequeue returns elements in
// the order they were enqueued.
type Queue[T any] struct {
	store *list.Doubly[T]
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{store: list.NewDoubly[T]()}
}

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.store.Len()
}

// IsEmpty reports whether no elements are queued.
func (q *Queue[T]) IsEmpty() bool {
	return q.store.IsEmpty()
}

// Enqueue appends a value at the back of the queue. O(1).
func (q *Queue[T]) Enqueue(value T) {
	q.store.PushBack(value)
}

// Dequeue removes and returns the front value, or reports ErrEmpty.
// O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	value, err := q.store.PopFront()
	if err != nil {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "queue: dequeue")
	}
	return value, nil
}

// Peek returns the front value without removing it, or reports
// ErrEmpty.
func (q *Queue[T]) Peek() (T, error) {
	front := q.store.Front()
	if front == nil {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "queue: peek")
	}
	return front.Value, nil
}

// Clear drops every queued element.
func (q *Queue[T]) Clear() {
	q.store.Clear()
}
