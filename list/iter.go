package list

import "iter"

// All returns an iterator over index/element pairs of the live
// elements. Mutating the list while iterating is the caller's problem,
// same as indexing it directly.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, l.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(l.buf[i]) {
				return
			}
		}
	}
}
