package alloc

import "sort"

// bucket collects every currently pooled buffer of one exact capacity.
// The free list is LIFO: the most recently released buffer is the next
// one handed out, which keeps recently touched memory in circulation.
type bucket[T any] struct {
	capacity int
	free     *node[T] // head of the free list
	length   int      // number of pooled buffers
}

// push files n at the head of the free list.
func (b *bucket[T]) push(n *node[T]) {
	n.next = b.free
	b.free = n
	b.length++
}

// pop detaches and returns the head node, or nil when the free list is
// empty. The caller owns the node and its buffer afterwards.
func (b *bucket[T]) pop() *node[T] {
	n := b.free
	if n == nil {
		return nil
	}
	b.free = n.next
	n.next = nil
	b.length--
	return n
}

// capacityIndex keeps buckets sorted by ascending capacity so lookups
// are a binary search and "next larger available" queries walk forward
// from the insertion point instead of scanning every bucket.
//
// Buckets are created lazily and never torn down, only drained and
// refilled.
type capacityIndex[T any] struct {
	buckets []*bucket[T]
}

// search returns the position of the first bucket whose capacity is at
// least c, which is also the sorted insertion point for c.
func (ix *capacityIndex[T]) search(c int) int {
	return sort.Search(len(ix.buckets), func(i int) bool {
		return ix.buckets[i].capacity >= c
	})
}

// find locates the bucket for capacity c.
//
// Strict lookups accept only an exact capacity match. Non-strict
// lookups prefer an exact match with a non-empty free list and
// otherwise advance forward through larger capacities to the first
// non-empty bucket, skipping empty ones.
//
// When no suitable bucket exists a new empty bucket for c is inserted
// at its sorted position and returned; the caller is expected to
// populate it or allocate fresh. The second return reports whether a
// bucket was created.
func (ix *capacityIndex[T]) find(c int, strict bool) (*bucket[T], bool) {
	i := ix.search(c)
	exact := i < len(ix.buckets) && ix.buckets[i].capacity == c

	if exact {
		if strict || ix.buckets[i].length > 0 {
			return ix.buckets[i], false
		}
	}
	if !strict {
		// First-fit upward: the slice is sorted, so every bucket from
		// the insertion point on has capacity >= c.
		for j := i; j < len(ix.buckets); j++ {
			if ix.buckets[j].length > 0 {
				return ix.buckets[j], false
			}
		}
		if exact {
			return ix.buckets[i], false
		}
	}

	b := &bucket[T]{capacity: c}
	ix.buckets = append(ix.buckets, nil)
	copy(ix.buckets[i+1:], ix.buckets[i:])
	ix.buckets[i] = b
	return b, true
}

// exact returns the bucket of exactly capacity c, or nil. Unlike find
// it never creates a bucket, so it is safe to use as a cheap probe.
func (ix *capacityIndex[T]) exact(c int) *bucket[T] {
	i := ix.search(c)
	if i < len(ix.buckets) && ix.buckets[i].capacity == c {
		return ix.buckets[i]
	}
	return nil
}

// len returns the number of buckets in the index.
func (ix *capacityIndex[T]) len() int {
	return len(ix.buckets)
}
