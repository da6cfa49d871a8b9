package list

import (
	"github.com/cockroachdb/errors"

	"github.com/oddnerd/collections/collection"
)

// ErrOtherList reports a node handle passed to a list it does not
// belong to, including handles already detached by a removal.
var ErrOtherList = errors.New("list: node belongs to another list")

// Node is a handle to an element of a Doubly list. Holding a handle
// permits O(1) removal and neighbor navigation without traversal. The
// forward chain owns the nodes; prev is the non-owning back-reference.
type Node[T any] struct {
	// Value is the contained element and may be mutated in place.
	Value T

	next  *Node[T]
	prev  *Node[T]
	owner *Doubly[T]
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Doubly is an owning chain of nodes linked in both directions, with a
// non-owning tail reference. Both ends support O(1) insertion and
// removal, and any node can be unlinked in O(1) through its handle, at
// the cost of maintaining the back-reference invariant
// (node.next.prev == node, node.prev.next == node) on every mutation.
type Doubly[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

var _ collection.Bidirectional[int] = (*Doubly[int])(nil)

// NewDoubly creates an empty list.
func NewDoubly[T any]() *Doubly[T] {
	return &Doubly[T]{}
}

// Len reports the number of contained elements.
func (l *Doubly[T]) Len() int {
	return l.length
}

// IsEmpty reports whether no elements are contained.
func (l *Doubly[T]) IsEmpty() bool {
	return l.length == 0
}

// Front returns the first node, or nil when the list is empty.
func (l *Doubly[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node, or nil when the list is empty.
func (l *Doubly[T]) Back() *Node[T] {
	return l.tail
}

// Nodes are not recycled through a pool: a stale handle to a recycled
// node would alias a new element and defeat the detached-handle check.
func (l *Doubly[T]) newNode(value T) *Node[T] {
	return &Node[T]{Value: value, owner: l}
}

// release detaches the node's value and clears its links so a retained
// handle cannot reach the list and is rejected on reuse.
func (l *Doubly[T]) release(node *Node[T]) T {
	var zero T
	value := node.Value
	node.Value = zero
	node.next = nil
	node.prev = nil
	node.owner = nil
	return value
}

// PushFront links a new node as the head and returns its handle. O(1).
func (l *Doubly[T]) PushFront(value T) *Node[T] {
	node := l.newNode(value)
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.length++
	return node
}

// PushBack links a new node as the tail and returns its handle. O(1).
func (l *Doubly[T]) PushBack(value T) *Node[T] {
	node := l.newNode(value)
	node.prev = l.tail
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
	l.length++
	return node
}

// PopFront removes the head and returns its value, or reports
// ErrEmpty. O(1).
func (l *Doubly[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "list: doubly pop front")
	}
	value, _ := l.Remove(l.head)
	return value, nil
}

// PopBack removes the tail and returns its value, or reports
// ErrEmpty. O(1).
func (l *Doubly[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errors.Wrapf(collection.ErrEmpty, "list: doubly pop back")
	}
	value, _ := l.Remove(l.tail)
	return value, nil
}

// Remove unlinks the node its handle points at and returns the value.
// All four surrounding links, head, tail, and length are updated in
// one step, then the handle is detached and will be rejected on reuse.
// O(1); reports ErrOtherList for foreign or detached handles.
func (l *Doubly[T]) Remove(node *Node[T]) (T, error) {
	var zero T
	if node == nil || node.owner != l {
		return zero, errors.Wrapf(ErrOtherList, "remove")
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	l.length--
	return l.release(node), nil
}

// InsertAfter links a new node after at and returns its handle. O(1);
// reports ErrOtherList for foreign or detached handles.
func (l *Doubly[T]) InsertAfter(at *Node[T], value T) (*Node[T], error) {
	if at == nil || at.owner != l {
		return nil, errors.Wrapf(ErrOtherList, "insert after")
	}
	node := l.newNode(value)
	node.prev = at
	node.next = at.next
	if at.next != nil {
		at.next.prev = node
	} else {
		l.tail = node
	}
	at.next = node
	l.length++
	return node, nil
}

// InsertBefore links a new node before at and returns its handle.
// O(1); reports ErrOtherList for foreign or detached handles.
func (l *Doubly[T]) InsertBefore(at *Node[T], value T) (*Node[T], error) {
	if at == nil || at.owner != l {
		return nil, errors.Wrapf(ErrOtherList, "insert before")
	}
	node := l.newNode(value)
	node.next = at
	node.prev = at.prev
	if at.prev != nil {
		at.prev.next = node
	} else {
		l.head = node
	}
	at.prev = node
	l.length++
	return node, nil
}

func (l *Doubly[T]) checkIndex(index int) error {
	if index < 0 || index >= l.length {
		return errors.Wrapf(collection.ErrOutOfBounds,
			"list: doubly index %d of %d", index, l.length)
	}
	return nil
}

// at returns the node at index, walking from whichever end is nearer.
// Caller checks bounds.
func (l *Doubly[T]) at(index int) *Node[T] {
	if index < l.length/2 {
		node := l.head
		for i := 0; i < index; i++ {
			node = node.next
		}
		return node
	}
	node := l.tail
	for i := l.length - 1; i > index; i-- {
		node = node.prev
	}
	return node
}

// Get returns the element at index, traversing from the nearer end.
func (l *Doubly[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.at(index).Value, nil
}

// Set replaces the element at index.
func (l *Doubly[T]) Set(index int, value T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.at(index).Value = value
	return nil
}

// Swap exchanges the elements at i and j.
func (l *Doubly[T]) Swap(i, j int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if err := l.checkIndex(j); err != nil {
		return err
	}
	a, b := l.at(i), l.at(j)
	a.Value, b.Value = b.Value, a.Value
	return nil
}

// Clear drops every element with an iterative teardown. O(n).
func (l *Doubly[T]) Clear() {
	node := l.head
	for node != nil {
		next := node.next
		l.release(node)
		node = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Forward returns a cursor over the elements from head to tail.
func (l *Doubly[T]) Forward() collection.Cursor[T] {
	node := l.head
	return collection.NewCursor(func() (T, bool) {
		var zero T
		if node == nil {
			return zero, false
		}
		value := node.Value
		node = node.next
		return value, true
	})
}

// Backward returns a cursor over the elements from tail to head. It
// visits exactly Len() nodes, the mirror image of Forward.
func (l *Doubly[T]) Backward() collection.Cursor[T] {
	node := l.tail
	return collection.NewCursor(func() (T, bool) {
		var zero T
		if node == nil {
			return zero, false
		}
		value := node.Value
		node = node.prev
		return value, true
	})
}

// Validate walks the list and checks the linkage invariants: the head
// reaches the tail in exactly Len() steps, every node's neighbors
// point back at it, and the end nodes terminate the chain.
func (l *Doubly[T]) Validate() error {
	if l.length == 0 {
		if l.head != nil || l.tail != nil {
			return errors.New("list: empty list with linked endpoints")
		}
		return nil
	}
	if l.head == nil || l.tail == nil {
		return errors.Newf("list: length %d with missing endpoint", l.length)
	}
	if l.head.prev != nil {
		return errors.New("list: head has a predecessor")
	}
	if l.tail.next != nil {
		return errors.New("list: tail has a successor")
	}
	node := l.head
	for i := 0; i < l.length-1; i++ {
		if node.next == nil {
			return errors.Newf("list: chain ends after %d of %d nodes", i+1, l.length)
		}
		if node.next.prev != node {
			return errors.Newf("list: broken back-reference at node %d", i)
		}
		if node.owner != l {
			return errors.Newf("list: foreign node at %d", i)
		}
		node = node.next
	}
	if node != l.tail {
		return errors.New("list: head does not reach tail in length steps")
	}
	return nil
}
