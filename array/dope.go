// Package array implements the contiguous-memory collections: the
// non-owning View, the fixed-capacity Fixed, and the growable Dynamic.
package array

import (
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/oddnerd/collections/collection"
)

// generational is implemented by owners whose buffer can move. A view
// remembers the generation it was taken at and refuses access once the
// owner reallocates.
type generational interface {
	generation() uint64
}

// View is a non-owning descriptor over contiguous, externally owned
// elements: a base plus a length. It never frees anything and must not
// outlive the memory it describes. Views over a Dynamic are stamped
// with the array's generation counter, so any growth or shrink of the
// source invalidates them in a checkable way.
type View[T any] struct {
	data []T
	src  generational
	gen  uint64
}

var _ collection.Linear[int] = View[int]{}

// FromSlice borrows an existing slice. Such a view has no generation
// source and stays valid as long as the slice's backing array does.
func FromSlice[T any](s []T) View[T] {
	return View[T]{data: s}
}

// FromRaw constructs a view from a raw element pointer and a length.
// It reports an error when ptr is nil while length is positive. The
// caller is responsible for ptr addressing length initialized elements.
func FromRaw[T any](ptr *T, length int) (View[T], error) {
	if length < 0 {
		return View[T]{}, errors.Wrapf(collection.ErrInvalidRange,
			"array: negative view length %d", length)
	}
	if ptr == nil {
		if length > 0 {
			return View[T]{}, errors.New("array: nil base with nonzero length")
		}
		return View[T]{}, nil
	}
	return View[T]{data: unsafe.Slice(ptr, length)}, nil
}

// Valid reports whether the view still describes its source. Views
// without a generation source are always valid.
func (v View[T]) Valid() bool {
	return v.src == nil || v.src.generation() == v.gen
}

func (v View[T]) check(index int) error {
	if !v.Valid() {
		return errors.Wrapf(collection.ErrStaleView, "array: view access")
	}
	if index < 0 || index >= len(v.data) {
		return errors.Wrapf(collection.ErrOutOfBounds,
			"array: view index %d of %d", index, len(v.data))
	}
	return nil
}

// Len reports the number of elements described.
func (v View[T]) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the view describes no elements.
func (v View[T]) IsEmpty() bool {
	return len(v.data) == 0
}

// Get returns the element at index.
func (v View[T]) Get(index int) (T, error) {
	if err := v.check(index); err != nil {
		var zero T
		return zero, err
	}
	return v.data[index], nil
}

// Ref returns a pointer to the element at index. The pointer obeys the
// same lifetime discipline as the view itself.
func (v View[T]) Ref(index int) (*T, error) {
	if err := v.check(index); err != nil {
		return nil, err
	}
	return &v.data[index], nil
}

// Set writes the element at index in place.
func (v View[T]) Set(index int, value T) error {
	if err := v.check(index); err != nil {
		return err
	}
	v.data[index] = value
	return nil
}

// Swap exchanges the elements at i and j.
func (v View[T]) Swap(i, j int) error {
	if err := v.check(i); err != nil {
		return err
	}
	if err := v.check(j); err != nil {
		return err
	}
	v.data[i], v.data[j] = v.data[j], v.data[i]
	return nil
}

// Slice derives a narrower view covering [start, end). It reports
// ErrInvalidRange when start exceeds end or end exceeds the length.
// The sub-view shares the parent's generation stamp.
func (v View[T]) Slice(start, end int) (View[T], error) {
	if start < 0 || start > end || end > len(v.data) {
		return View[T]{}, errors.Wrapf(collection.ErrInvalidRange,
			"array: slice [%d, %d) of %d", start, end, len(v.data))
	}
	if !v.Valid() {
		return View[T]{}, errors.Wrapf(collection.ErrStaleView, "array: slice")
	}
	return View[T]{data: v.data[start:end], src: v.src, gen: v.gen}, nil
}

// Forward returns a cursor over the described elements in order. The
// cursor stops early if the source is invalidated mid-traversal.
func (v View[T]) Forward() collection.Cursor[T] {
	index := 0
	return collection.NewCursor(func() (T, bool) {
		var zero T
		if !v.Valid() || index >= len(v.data) {
			return zero, false
		}
		element := v.data[index]
		index++
		return element, true
	})
}
