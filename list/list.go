package list

import (
	"fmt"

	"github.com/NewbieGameCoder/BetterList/internal/bounds"
	"github.com/NewbieGameCoder/BetterList/list/alloc"
)

// List is a growable array-backed sequence. Elements at indices
// [0, Len()) are live; slots beyond that hold stale values and must
// never be read as data.
//
// A pooled List obtains every backing buffer from its alloc.Pool and
// returns outgrown buffers to it, so churn-heavy workloads stop
// allocating once the pool warms up. A List owns its buffer
// exclusively; the pool never touches a buffer while the List holds it.
type List[T any] struct {
	buf  []T // backing buffer, always len == cap; nil when empty
	size int // number of live elements
	pool *alloc.Pool[T]
	cfg  alloc.Config
}

// New creates an empty pooled list. All capacity changes go through
// pool, which must not be nil.
func New[T any](pool *alloc.Pool[T]) *List[T] {
	if pool == nil {
		panic("list: New requires a pool, use NewUnpooled instead")
	}
	return &List[T]{pool: pool, cfg: pool.Config()}
}

// NewUnpooled creates an empty list that allocates directly and leaves
// discarded buffers to the garbage collector. Semantics are otherwise
// identical to a pooled list.
func NewUnpooled[T any]() *List[T] {
	return &List[T]{cfg: alloc.DefaultConfig}
}

// Len returns the number of live elements.
func (l *List[T]) Len() int { return l.size }

// Cap returns the capacity of the backing buffer.
func (l *List[T]) Cap() int { return cap(l.buf) }

// Get returns the element at index i. It panics when i is outside
// [0, Len()); reading a stale slot silently would corrupt callers, so
// out-of-range access fails fast.
func (l *List[T]) Get(i int) T {
	l.check(i)
	return l.buf[i]
}

// Set overwrites the element at index i. Panics when i is outside
// [0, Len()).
func (l *List[T]) Set(i int, v T) {
	l.check(i)
	l.buf[i] = v
}

func (l *List[T]) check(i int) {
	if !bounds.InRange(i, l.size) {
		panic(fmt.Sprintf("list: index %d out of range [0,%d)", i, l.size))
	}
}

// Slice returns the live elements as a view over the backing buffer.
// The view stays valid until the next operation that changes capacity.
// Combined with Trim it yields an exactly-sized snapshot without a
// copy.
func (l *List[T]) Slice() []T {
	return l.buf[:l.size]
}

// Append adds v after the last element, growing the buffer when full.
func (l *List[T]) Append(v T) {
	if l.size == cap(l.buf) {
		l.grow(l.size + 1)
	}
	l.buf[l.size] = v
	l.size++
}

// Insert places v at index, shifting later elements one slot right.
// An index outside [0, Len()) degrades to Append.
func (l *List[T]) Insert(index int, v T) {
	if !bounds.InRange(index, l.size) {
		l.Append(v)
		return
	}
	if l.size == cap(l.buf) {
		l.grow(l.size + 1)
	}
	copy(l.buf[index+1:l.size+1], l.buf[index:l.size])
	l.buf[index] = v
	l.size++
}

// RemoveAt deletes the element at index, shifting later elements one
// slot left, and reports whether anything was removed. The vacated
// trailing slot is zeroed so it releases any reference it held.
func (l *List[T]) RemoveAt(index int) bool {
	if !bounds.InRange(index, l.size) {
		return false
	}
	copy(l.buf[index:l.size-1], l.buf[index+1:l.size])
	l.size--
	var zero T
	l.buf[l.size] = zero
	return true
}

// Pop removes and returns the last element. The second return is false
// when the list is empty.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	if l.size == 0 {
		return zero, false
	}
	l.size--
	v := l.buf[l.size]
	l.buf[l.size] = zero
	return v, true
}

// Clear forgets the live elements but keeps the buffer, so the next
// appends reuse it without touching the pool. This is the cheap reset
// the pooling design is built around.
func (l *List[T]) Clear() {
	l.size = 0
}

// Release empties the list and returns the backing buffer to the pool.
// The list goes back to its initial bufferless state.
func (l *List[T]) Release() {
	l.size = 0
	if l.buf != nil {
		l.releaseBuf(l.buf)
		l.buf = nil
	}
}

// Trim shrinks the backing buffer to exactly Len() elements: an empty
// list behaves as Release, an exactly-sized one is untouched, anything
// else copies the live elements into an exactly-sized buffer and
// releases the old one.
func (l *List[T]) Trim() {
	switch {
	case l.size == 0:
		l.Release()
	case l.size < cap(l.buf):
		buf := l.acquireExact(l.size)
		copy(buf, l.buf[:l.size])
		old := l.buf
		l.buf = buf
		l.releaseBuf(old)
	}
}

// grow swaps the backing buffer for one that holds at least need
// elements, carrying the live elements over and releasing the old
// buffer. The new capacity is the larger of need and the configured
// doubling target, so repeated single appends stay amortized O(1).
func (l *List[T]) grow(need int) {
	target := l.cfg.GrowTarget(cap(l.buf), need)
	buf := l.acquireBuf(need, target)
	copy(buf, l.buf[:l.size])
	old := l.buf
	l.buf = buf
	if old != nil {
		l.releaseBuf(old)
	}
}

func (l *List[T]) acquireBuf(minCap, desiredCap int) []T {
	if l.pool != nil {
		return l.pool.Acquire(minCap, desiredCap)
	}
	return make([]T, desiredCap)
}

func (l *List[T]) acquireExact(capacity int) []T {
	if l.pool != nil {
		return l.pool.AcquireExact(capacity)
	}
	return make([]T, capacity)
}

func (l *List[T]) releaseBuf(buf []T) {
	if l.pool != nil {
		l.pool.Release(buf)
	}
}
