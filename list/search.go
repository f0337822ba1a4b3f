package list

// Linear-scan membership helpers. These are thin wrappers over the
// container core, shaped like the stdlib slices package: comparable
// element types get value-based helpers, everything else goes through
// the Func variants.

// IndexOf returns the index of the first element equal to v, or -1.
func IndexOf[T comparable](l *List[T], v T) int {
	for i := 0; i < l.size; i++ {
		if l.buf[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether l holds an element equal to v.
func Contains[T comparable](l *List[T], v T) bool {
	return IndexOf(l, v) >= 0
}

// Remove deletes the first element equal to v and reports whether a
// match was found.
func Remove[T comparable](l *List[T], v T) bool {
	i := IndexOf(l, v)
	if i < 0 {
		return false
	}
	return l.RemoveAt(i)
}

// Equal reports whether a and b hold the same elements in the same
// order. A nil list equals an empty one.
func Equal[T comparable](a, b *List[T]) bool {
	if a.lenOrZero() != b.lenOrZero() {
		return false
	}
	for i := 0; i < a.lenOrZero(); i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// IndexFunc returns the index of the first element for which match
// returns true, or -1.
func IndexFunc[T any](l *List[T], match func(T) bool) int {
	for i := 0; i < l.size; i++ {
		if match(l.buf[i]) {
			return i
		}
	}
	return -1
}

// RemoveFunc deletes the first element for which match returns true
// and reports whether a match was found.
func RemoveFunc[T any](l *List[T], match func(T) bool) bool {
	i := IndexFunc(l, match)
	if i < 0 {
		return false
	}
	return l.RemoveAt(i)
}

func (l *List[T]) lenOrZero() int {
	if l == nil {
		return 0
	}
	return l.size
}
