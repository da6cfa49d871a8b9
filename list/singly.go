// Package list implements the node-based collections: the forward-only
// Singly linked list and the Doubly linked list with O(1) removal
// through node handles.
package list

import (
	"github.com/cockroachdb/errors"

	"github.com/oddnerd/collections/collection"
	"github.com/oddnerd/collections/mem"
)

// snode is a singly linked node. The forward chain is the owning
// relation: a node is live exactly while reachable from the list head.
type snode[T any] struct {
	value T
	next  *snode[T]
}

// Singly is an owning chain of forward-linked nodes. Front operations
// are O(1); anything addressed by index costs O(index) because there
// is no backward link to traverse from the tail. That is the
// deliberate tradeoff against Doubly.
type Singly[T any] struct {
	head   *snode[T]
	length int
	pool   *mem.Pool[snode[T]]
}

var _ collection.Linear[int] = (*Singly[int])(nil)

// NewSingly creates an empty list.
func NewSingly[T any]() *Singly[T] {
	return &Singly[T]{
		pool: mem.NewPool(func() *snode[T] { return new(snode[T]) }),
	}
}

// Len reports the number of contained elements.
func (l *Singly[T]) Len() int {
	return l.length
}

// IsEmpty reports whether no elements are contained.
func (l *Singly[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *Singly[T]) newNode(value T) *snode[T] {
	node := l.pool.Get()
	node.value = value
	node.next = nil
	return node
}

// release detaches a node's value and recycles the node.
func (l *Singly[T]) release(node *snode[T]) T {
	var zero T
	value := node.value
	node.value = zero
	node.next = nil
	l.pool.Put(node)
	return value
}

// PushFront links a new node as the head. O(1).
func (l *Singly[T]) PushFront(value T) {
	node := l.newNode(value)
	node.next = l.head
	l.head = node
	l.length++
}

// PopFront detaches the head node and returns its value, or reports
// ErrEmpty. O(1).
func (l *Singly[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "list: singly pop front")
	}
	node := l.head
	l.head = node.next
	l.length--
	return l.release(node), nil
}

// PeekFront returns the first value without removing it.
func (l *Singly[T]) PeekFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "list: singly peek front")
	}
	return l.head.value, nil
}

// at returns the node at index. Caller checks bounds.
func (l *Singly[T]) at(index int) *snode[T] {
	node := l.head
	for i := 0; i < index; i++ {
		node = node.next
	}
	return node
}

func (l *Singly[T]) check(index int) error {
	if index < 0 || index >= l.length {
		return errors.Wrapf(collection.ErrOutOfBounds,
			"list: singly index %d of %d", index, l.length)
	}
	return nil
}

// Insert links a new node at index, after O(index) forward traversal.
// Valid indices are [0, Len()]; Len() appends.
func (l *Singly[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return errors.Wrapf(collection.ErrOutOfBounds,
			"list: singly insert at %d of %d", index, l.length)
	}
	if index == 0 {
		l.PushFront(value)
		return nil
	}
	prev := l.at(index - 1)
	node := l.newNode(value)
	node.next = prev.next
	prev.next = node
	l.length++
	return nil
}

// Remove unlinks and returns the element at index. The predecessor is
// tracked during the O(index) traversal so the chain can be relinked
// around the removed node.
func (l *Singly[T]) Remove(index int) (T, error) {
	var zero T
	if err := l.check(index); err != nil {
		return zero, err
	}
	if index == 0 {
		return l.PopFront()
	}
	prev := l.at(index - 1)
	node := prev.next
	prev.next = node.next
	l.length--
	return l.release(node), nil
}

// Get returns the element at index. O(index).
func (l *Singly[T]) Get(index int) (T, error) {
	if err := l.check(index); err != nil {
		var zero T
		return zero, err
	}
	return l.at(index).value, nil
}

// Set replaces the element at index. O(index).
func (l *Singly[T]) Set(index int, value T) error {
	if err := l.check(index); err != nil {
		return err
	}
	l.at(index).value = value
	return nil
}

// Swap exchanges the elements at i and j. O(max(i, j)).
func (l *Singly[T]) Swap(i, j int) error {
	if err := l.check(i); err != nil {
		return err
	}
	if err := l.check(j); err != nil {
		return err
	}
	a, b := l.at(i), l.at(j)
	a.value, b.value = b.value, a.value
	return nil
}

// Clear drops every element with an iterative teardown, recycling the
// nodes. O(n).
func (l *Singly[T]) Clear() {
	node := l.head
	for node != nil {
		next := node.next
		l.release(node)
		node = next
	}
	l.head = nil
	l.length = 0
}

// Forward returns a cursor over the elements from the head. The
// cursor holds its own link and must not be used across mutation.
func (l *Singly[T]) Forward() collection.Cursor[T] {
	node := l.head
	return collection.NewCursor(func() (T, bool) {
		var zero T
		if node == nil {
			return zero, false
		}
		value := node.value
		node = node.next
		return value, true
	})
}
