package list

// Sort orders the live elements in place using cmp, which returns a
// negative, zero, or positive value for less, equal, and greater.
//
// The algorithm is an adjacent-swap sort with a moving lower bound:
// once a pass stops swapping below some position the bound advances to
// just before the last swap, so later passes skip the settled prefix.
// Quadratic in the worst case, but it never allocates and never calls
// into the pool. Do not swap in a library sort here: sort.Slice and
// friends allocate for their comparator adapters.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	start := 0
	max := l.size - 1
	changed := true
	for changed {
		changed = false
		for i := start; i < max; i++ {
			if cmp(l.buf[i], l.buf[i+1]) > 0 {
				l.buf[i], l.buf[i+1] = l.buf[i+1], l.buf[i]
				changed = true
			} else if !changed {
				if i == 0 {
					start = 0
				} else {
					start = i - 1
				}
			}
		}
	}
}
