package array

import (
	"github.com/cockroachdb/errors"

	"github.com/oddnerd/collections/collection"
	"github.com/oddnerd/collections/mem"
)

// Dynamic is an owning, growable array. The buffer is allocated
// through the mem package and may keep spare capacity at both ends:
// uninitialized slots before the live elements serve PushFront and
// PopFront, slots after them serve Push and Pop, so both ends are
// amortized O(1).
//
// Growth reallocates to a strictly larger capacity (doubling, minimum
// one slot), moves every live element into the new buffer, and only
// then frees the old one; a failed allocation leaves the array exactly
// as it was. Capacity never shrinks except through ShrinkToFit or Free.
//
// Every mutation that moves or drops elements bumps an internal
// generation counter, invalidating outstanding Views. Appends that
// only consume existing end capacity, and in-place Set/Swap, keep
// views valid.
type Dynamic[T any] struct {
	buf    []T
	front  int
	length int
	gen    uint64
}

var _ collection.Bidirectional[int] = (*Dynamic[int])(nil)
var _ generational = (*Dynamic[int])(nil)

// NewDynamic creates an empty array with no allocation.
func NewDynamic[T any]() *Dynamic[T] {
	return &Dynamic[T]{}
}

// WithCapacity creates an empty array with capacity slots reserved up
// front. It surfaces the allocator's failure unchanged.
func WithCapacity[T any](capacity int) (*Dynamic[T], error) {
	buf, err := mem.Alloc[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Dynamic[T]{buf: buf}, nil
}

// FromValues creates an array holding the given values in order.
func FromValues[T any](values ...T) (*Dynamic[T], error) {
	d, err := WithCapacity[T](len(values))
	if err != nil {
		return nil, err
	}
	copy(d.buf, values)
	d.length = len(values)
	return d, nil
}

// Len reports the number of live elements.
func (d *Dynamic[T]) Len() int {
	return d.length
}

// IsEmpty reports whether no elements are contained.
func (d *Dynamic[T]) IsEmpty() bool {
	return d.length == 0
}

// Capacity reports the total allocated slot count, live or spare.
func (d *Dynamic[T]) Capacity() int {
	return len(d.buf)
}

// CapacityFront reports the spare slots before the first element.
func (d *Dynamic[T]) CapacityFront() int {
	return d.front
}

// CapacityBack reports the spare slots after the last element.
func (d *Dynamic[T]) CapacityBack() int {
	return len(d.buf) - d.front - d.length
}

func (d *Dynamic[T]) generation() uint64 {
	return d.gen
}

func (d *Dynamic[T]) check(index int) error {
	if index < 0 || index >= d.length {
		return errors.Wrapf(collection.ErrOutOfBounds,
			"array: dynamic index %d of %d", index, d.length)
	}
	return nil
}

// live returns the slice of live elements.
func (d *Dynamic[T]) live() []T {
	return d.buf[d.front : d.front+d.length]
}

// realloc moves the live elements into a fresh buffer of newCap slots,
// placing them at newFront, and frees the old buffer. The old state is
// untouched if allocation fails.
func (d *Dynamic[T]) realloc(newCap, newFront int) error {
	buf, err := mem.Alloc[T](newCap)
	if err != nil {
		return err
	}
	copy(buf[newFront:], d.live())
	old := d.buf
	d.buf = buf
	d.front = newFront
	var zero T
	for i := range old {
		old[i] = zero
	}
	mem.Free(old)
	d.gen++
	return nil
}

// growBack ensures at least need spare slots after the last element.
func (d *Dynamic[T]) growBack(need int) error {
	if d.CapacityBack() >= need {
		return nil
	}
	newCap := max(1, 2*len(d.buf))
	for newCap < d.length+need {
		newCap *= 2
	}
	return d.realloc(newCap, 0)
}

// growFront ensures at least need spare slots before the first
// element. All spare capacity moves to the front of the new buffer.
func (d *Dynamic[T]) growFront(need int) error {
	if d.front >= need {
		return nil
	}
	newCap := max(1, 2*len(d.buf))
	for newCap < d.length+need {
		newCap *= 2
	}
	return d.realloc(newCap, newCap-d.length)
}

// Push appends a value at the back, growing if back capacity is
// exhausted. Amortized O(1).
func (d *Dynamic[T]) Push(value T) error {
	if err := d.growBack(1); err != nil {
		return err
	}
	d.buf[d.front+d.length] = value
	d.length++
	return nil
}

// Pop removes and returns the last element, or reports ErrEmpty.
func (d *Dynamic[T]) Pop() (T, error) {
	var zero T
	if d.length == 0 {
		return zero, errors.Wrapf(collection.ErrEmpty, "array: dynamic pop")
	}
	d.length--
	index := d.front + d.length
	value := d.buf[index]
	d.buf[index] = zero
	d.gen++
	return value, nil
}

// PushFront prepends a value, growing if front capacity is exhausted.
// Amortized O(1).
func (d *Dynamic[T]) PushFront(value T) error {
	if err := d.growFront(1); err != nil {
		return err
	}
	d.front--
	d.buf[d.front] = value
	d.length++
	return nil
}

// PopFront removes and returns the first element, or reports ErrEmpty.
// O(1): the slot is surrendered to front capacity, not shifted out.
func (d *Dynamic[T]) PopFront() (T, error) {
	var zero T
	if d.length == 0 {
		return zero, errors.Wrapf(collection.ErrEmpty, "array: dynamic pop front")
	}
	value := d.buf[d.front]
	d.buf[d.front] = zero
	d.front++
	d.length--
	d.gen++
	return value, nil
}

// Insert places a value at index, shifting the trailing elements right
// by one. Valid indices are [0, Len()]; inserting at Len() appends and
// inserting at 0 prepends, both without shifting. O(n) otherwise.
func (d *Dynamic[T]) Insert(index int, value T) error {
	if index < 0 || index > d.length {
		return errors.Wrapf(collection.ErrOutOfBounds,
			"array: dynamic insert at %d of %d", index, d.length)
	}
	switch index {
	case d.length:
		return d.Push(value)
	case 0:
		return d.PushFront(value)
	}
	if err := d.growBack(1); err != nil {
		return err
	}
	at := d.front + index
	copy(d.buf[at+1:d.front+d.length+1], d.buf[at:d.front+d.length])
	d.buf[at] = value
	d.length++
	d.gen++
	return nil
}

// Remove deletes and returns the element at index, shifting the
// trailing elements left by one. Valid indices are [0, Len());
// removing index 0 is O(1) via PopFront. O(n) otherwise.
func (d *Dynamic[T]) Remove(index int) (T, error) {
	var zero T
	if err := d.check(index); err != nil {
		return zero, err
	}
	if index == 0 {
		return d.PopFront()
	}
	at := d.front + index
	value := d.buf[at]
	copy(d.buf[at:], d.buf[at+1:d.front+d.length])
	d.length--
	d.buf[d.front+d.length] = zero
	d.gen++
	return value, nil
}

// Get returns the element at index.
func (d *Dynamic[T]) Get(index int) (T, error) {
	if err := d.check(index); err != nil {
		var zero T
		return zero, err
	}
	return d.buf[d.front+index], nil
}

// Ref returns a pointer to the element at index. The pointer is
// invalidated by any mutation that moves elements.
func (d *Dynamic[T]) Ref(index int) (*T, error) {
	if err := d.check(index); err != nil {
		return nil, err
	}
	return &d.buf[d.front+index], nil
}

// Set replaces the element at index in place. Views stay valid.
func (d *Dynamic[T]) Set(index int, value T) error {
	if err := d.check(index); err != nil {
		return err
	}
	d.buf[d.front+index] = value
	return nil
}

// Swap exchanges the elements at i and j in place. Views stay valid.
func (d *Dynamic[T]) Swap(i, j int) error {
	if err := d.check(i); err != nil {
		return err
	}
	if err := d.check(j); err != nil {
		return err
	}
	d.buf[d.front+i], d.buf[d.front+j] = d.buf[d.front+j], d.buf[d.front+i]
	return nil
}

// Reserve grows total capacity to at least capacity slots, moving the
// elements once. It never shrinks and never grows beyond the exact
// request.
func (d *Dynamic[T]) Reserve(capacity int) error {
	if capacity <= len(d.buf) {
		return nil
	}
	return d.realloc(capacity, 0)
}

// ShrinkToFit reallocates to exactly Len() slots, releasing all spare
// capacity. An empty array frees its buffer entirely.
func (d *Dynamic[T]) ShrinkToFit() error {
	if len(d.buf) == d.length && d.front == 0 {
		return nil
	}
	if d.length == 0 {
		d.Free()
		return nil
	}
	return d.realloc(d.length, 0)
}

// Clear drops every element, keeping the allocated capacity.
func (d *Dynamic[T]) Clear() {
	var zero T
	for i := range d.live() {
		d.buf[d.front+i] = zero
	}
	d.front = 0
	d.length = 0
	d.gen++
}

// Free drops every element and releases the buffer, returning the
// array to its freshly constructed state.
func (d *Dynamic[T]) Free() {
	var zero T
	for i := range d.buf {
		d.buf[i] = zero
	}
	mem.Free(d.buf)
	d.buf = nil
	d.front = 0
	d.length = 0
	d.gen++
}

// View borrows the live elements. The view is stamped with the current
// generation and reports ErrStaleView once this array reallocates,
// shifts, or drops elements.
func (d *Dynamic[T]) View() View[T] {
	return View[T]{data: d.live(), src: d, gen: d.gen}
}

// Forward returns a cursor over the elements in order.
func (d *Dynamic[T]) Forward() collection.Cursor[T] {
	index := 0
	return collection.NewCursor(func() (T, bool) {
		var zero T
		if index >= d.length {
			return zero, false
		}
		element := d.buf[d.front+index]
		index++
		return element, true
	})
}

// Backward returns a cursor over the elements in reverse order.
func (d *Dynamic[T]) Backward() collection.Cursor[T] {
	index := d.length - 1
	return collection.NewCursor(func() (T, bool) {
		var zero T
		if index < 0 || index >= d.length {
			return zero, false
		}
		element := d.buf[d.front+index]
		index--
		return element, true
	})
}
