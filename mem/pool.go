package mem

import "sync"

// Pool is a typed object pool. The lists use one per instance to
// recycle nodes across insert/remove churn instead of allocating a
// fresh node on every push.
type Pool[T any] struct {
	p sync.Pool
}

// NewPool creates a pool producing new objects with ctor when empty.
func NewPool[T any](ctor func() *T) *Pool[T] {
	pool := &Pool[T]{}
	pool.p.New = func() any { return ctor() }
	return pool
}

// Get takes an object from the pool, constructing one if necessary.
func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put returns an object to the pool. The caller must have cleared any
// state it does not want resurrected.
func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	p.p.Put(v)
}
