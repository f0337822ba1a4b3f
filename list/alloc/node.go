package alloc

import "github.com/eapache/queue"

// node threads one pooled buffer into a bucket's free list.
// Nodes outlive the buffers they reference: when a buffer leaves a
// free list its node is parked in the recycler instead of being
// discarded, so filing the next released buffer needs no allocation.
type node[T any] struct {
	buf  []T
	next *node[T]
}

// nodeRecycler is the process-wide spare pool for detached linkage
// nodes. A parked node never references a buffer; its payload is
// cleared before it enters the pool.
type nodeRecycler[T any] struct {
	spare *queue.Queue
}

func newNodeRecycler[T any]() nodeRecycler[T] {
	return nodeRecycler[T]{spare: queue.New()}
}

// acquire returns a node holding buf, reusing a spare node when one
// exists. The second return reports whether a spare was reused.
func (r *nodeRecycler[T]) acquire(buf []T) (*node[T], bool) {
	if r.spare.Length() > 0 {
		n := r.spare.Remove().(*node[T])
		n.buf = buf
		return n, true
	}
	return &node[T]{buf: buf}, false
}

// recycle clears the node's payload and links and parks it in the
// spare pool. The pool is unbounded.
func (r *nodeRecycler[T]) recycle(n *node[T]) {
	n.buf = nil
	n.next = nil
	r.spare.Add(n)
}

// spares returns the number of parked nodes.
func (r *nodeRecycler[T]) spares() int {
	return r.spare.Length()
}
