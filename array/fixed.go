package array

import (
	"github.com/cockroachdb/errors"

	"github.com/oddnerd/collections/collection"
)

// ErrFull reports an insertion into a fixed array whose capacity is
// exhausted. Fixed storage never grows; that is the point of the type.
var ErrFull = errors.New("array: fixed array full")

// Fixed is an owning array whose capacity is set once at construction
// and never changes. It models a partially filled buffer: elements are
// pushed into reserved slots and the buffer itself is never
// reallocated, so element addresses stay stable for the container's
// whole lifetime and no allocation can fail after construction.
type Fixed[T any] struct {
	buf    []T
	length int
}

var _ collection.Linear[int] = (*Fixed[int])(nil)

// New creates a fixed array with the given capacity, all slots
// reserved up front and length zero. A non-positive capacity yields a
// zero-capacity array.
func New[T any](capacity int) *Fixed[T] {
	if capacity <= 0 {
		return &Fixed[T]{}
	}
	return &Fixed[T]{buf: make([]T, capacity)}
}

// Wrap adopts caller-supplied storage, typically a stack-resident
// array, without copying or allocating. Capacity is len(buf) and
// length starts at zero; the caller must not touch buf directly while
// the fixed array owns it.
func Wrap[T any](buf []T) *Fixed[T] {
	return &Fixed[T]{buf: buf[:len(buf)]}
}

// Len reports the number of live elements.
func (f *Fixed[T]) Len() int {
	return f.length
}

// IsEmpty reports whether no elements are contained.
func (f *Fixed[T]) IsEmpty() bool {
	return f.length == 0
}

// Capacity reports the fixed slot count.
func (f *Fixed[T]) Capacity() int {
	return len(f.buf)
}

func (f *Fixed[T]) check(index int) error {
	if index < 0 || index >= f.length {
		return errors.Wrapf(collection.ErrOutOfBounds,
			"array: fixed index %d of %d", index, f.length)
	}
	return nil
}

// Push appends a value into the next reserved slot. It reports ErrFull
// when length has reached capacity.
func (f *Fixed[T]) Push(value T) error {
	if f.length == len(f.buf) {
		return errors.Wrapf(ErrFull, "capacity %d", len(f.buf))
	}
	f.buf[f.length] = value
	f.length++
	return nil
}

// Pop removes and returns the last element, or reports ErrEmpty.
func (f *Fixed[T]) Pop() (T, error) {
	var zero T
	if f.length == 0 {
		return zero, errors.Wrapf(collection.ErrEmpty, "array: fixed pop")
	}
	f.length--
	value := f.buf[f.length]
	f.buf[f.length] = zero
	return value, nil
}

// Get returns the element at index.
func (f *Fixed[T]) Get(index int) (T, error) {
	if err := f.check(index); err != nil {
		var zero T
		return zero, err
	}
	return f.buf[index], nil
}

// Ref returns a pointer to the element at index. Fixed storage never
// moves, so the pointer stays valid until the element is popped.
func (f *Fixed[T]) Ref(index int) (*T, error) {
	if err := f.check(index); err != nil {
		return nil, err
	}
	return &f.buf[index], nil
}

// Set replaces the element at index.
func (f *Fixed[T]) Set(index int, value T) error {
	if err := f.check(index); err != nil {
		return err
	}
	f.buf[index] = value
	return nil
}

// Swap exchanges the elements at i and j.
func (f *Fixed[T]) Swap(i, j int) error {
	if err := f.check(i); err != nil {
		return err
	}
	if err := f.check(j); err != nil {
		return err
	}
	f.buf[i], f.buf[j] = f.buf[j], f.buf[i]
	return nil
}

// Clear drops every live element, keeping the reserved slots.
func (f *Fixed[T]) Clear() {
	var zero T
	for i := 0; i < f.length; i++ {
		f.buf[i] = zero
	}
	f.length = 0
}

// View borrows the live elements. Fixed storage never reallocates, so
// the view stays valid until elements are popped below its length.
func (f *Fixed[T]) View() View[T] {
	return FromSlice(f.buf[:f.length])
}

// Forward returns a cursor over the live elements in order.
func (f *Fixed[T]) Forward() collection.Cursor[T] {
	index := 0
	return collection.NewCursor(func() (T, bool) {
		var zero T
		if index >= f.length {
			return zero, false
		}
		element := f.buf[index]
		index++
		return element, true
	})
}
