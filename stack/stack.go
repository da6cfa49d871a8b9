// Package stack provides a LIFO adapter over a dynamic array backing
// store.
//
// Backing-store choice: array.Dynamic gives amortized O(1) push and
// O(1) pop at the back with contiguous storage and no per-element
// allocation. A linked-list backing would make every push O(1)
// worst-case but pay a node allocation each time; the array was chosen
// as the default for its memory locality.
package stack

import (
	"github.com/cockroachdb/errors"

	"github.com/oddnerd/collections/array"
	"github.com/oddnerd/collections/collection"
)

// Stack is a last-in-first-out adapter. LIFO ordering holds regardless
// of the backing store: Pop always returns the most recent Push.
type Stack[T any] struct {
	store *array.Dynamic[T]
}

// New creates an empty stack with no allocation.
func New[T any]() *Stack[T] {
	return &Stack[T]{store: array.NewDynamic[T]()}
}

// WithCapacity creates an empty stack with room for capacity elements
// before the first growth. It surfaces the allocator's failure.
func WithCapacity[T any](capacity int) (*Stack[T], error) {
	store, err := array.WithCapacity[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{store: store}, nil
}

// Len reports the number of stacked elements.
func (s *Stack[T]) Len() int {
	return s.store.Len()
}

// IsEmpty reports whether no elements are stacked.
func (s *Stack[T]) IsEmpty() bool {
	return s.store.IsEmpty()
}

// Push places a value on top of the stack. Growth of the backing
// array is the only way this can fail; the stack is unchanged then.
func (s *Stack[T]) Push(value T) error {
	return s.store.Push(value)
}

// Pop removes and returns the top value, or reports ErrEmpty.
func (s *Stack[T]) Pop() (T, error) {
	value, err := s.store.Pop()
	if err != nil {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "stack: pop")
	}
	return value, nil
}

// Peek returns the top value without removing it, or reports ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	if s.store.IsEmpty() {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "stack: peek")
	}
	return s.store.Get(s.store.Len() - 1)
}

// Clear drops every element, keeping the backing capacity.
func (s *Stack[T]) Clear() {
	s.store.Clear()
}
