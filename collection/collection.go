// Package collection defines the capability interfaces shared by the
// linear containers (arrays, lists, and the adapters built on them)
// together with the error taxonomy they report.
package collection

import "github.com/cockroachdb/errors"

// Containers report these sentinels for every recoverable failure.
// Callers classify them with errors.Is; wrapped variants carry the
// operation that failed.
var (
	// ErrOutOfBounds reports an index outside the valid range for the
	// attempted operation. Indices are never clamped.
	ErrOutOfBounds = errors.New("collection: index out of bounds")

	// ErrEmpty reports a pop, dequeue, or peek on an empty container.
	ErrEmpty = errors.New("collection: container is empty")

	// ErrInvalidRange reports slice bounds where start exceeds end or
	// end exceeds the length of the source.
	ErrInvalidRange = errors.New("collection: invalid range")

	// ErrStaleView reports access through a view whose source buffer
	// was reallocated after the view was taken.
	ErrStaleView = errors.New("collection: view invalidated by reallocation")
)

// Collection is the base capability: a finite group of elements of a
// single type. Implementations are single-owner and not safe for
// concurrent mutation.
type Collection[T any] interface {
	// Len reports the number of contained elements.
	Len() int

	// IsEmpty reports whether no elements are contained.
	IsEmpty() bool
}

// Linear is a Collection whose elements have a sequential ordering
// addressable by index.
type Linear[T any] interface {
	Collection[T]

	// Get returns the element at index, or ErrOutOfBounds.
	Get(index int) (T, error)

	// Set replaces the element at index, or reports ErrOutOfBounds.
	Set(index int, value T) error

	// Swap exchanges the elements at i and j, or reports ErrOutOfBounds.
	Swap(i, j int) error

	// Forward returns a cursor over the elements in order. Each call
	// starts a fresh traversal.
	Forward() Cursor[T]
}

// Bidirectional is a Linear collection that can also be traversed from
// its last element toward its first.
type Bidirectional[T any] interface {
	Linear[T]

	// Backward returns a cursor over the elements in reverse order.
	Backward() Cursor[T]
}

// Cursor walks a finite sequence of elements. Next advances to the
// next element and reports whether one exists; Value returns the
// element the cursor currently rests on. A cursor is not resumable
// after its source mutates; restart with a fresh Forward or Backward
// call instead.
type Cursor[T any] struct {
	next func() (T, bool)
	cur  T
	ok   bool
}

// NewCursor builds a cursor from a pull function returning successive
// elements. Implementations use this; callers only range with Next.
func NewCursor[T any](next func() (T, bool)) Cursor[T] {
	return Cursor[T]{next: next}
}

// Next advances the cursor, reporting whether an element is available.
func (c *Cursor[T]) Next() bool {
	if c.next == nil {
		return false
	}
	c.cur, c.ok = c.next()
	if !c.ok {
		c.next = nil
	}
	return c.ok
}

// Value returns the element the cursor rests on. Valid only after a
// Next call that returned true.
func (c *Cursor[T]) Value() T {
	return c.cur
}

// Drain advances the cursor to exhaustion and returns the remaining
// elements in traversal order.
func Drain[T any](c Cursor[T]) []T {
	var out []T
	for c.Next() {
		out = append(out, c.Value())
	}
	return out
}
