package list

import "github.com/NewbieGameCoder/BetterList/internal/bounds"

// InsertRange copies count elements of src, starting at srcStart, into
// l at index. Later elements of l shift right by count.
//
// A nil src is a no-op, and count is clamped so the copied range never
// runs past src's live elements; a clamped count of zero or less is
// also a no-op. index may be anywhere in [0, l.Len()] (inserting at
// exactly Len appends) and srcStart anywhere in [0, src.Len()];
// positions beyond that return ErrOutOfRange.
//
// src may be l itself. The tail is shifted before the range is copied,
// and source positions at or past index are read from their shifted
// location, so a self-insert sees the pre-insert values.
func (l *List[T]) InsertRange(index int, src *List[T], srcStart, count int) error {
	if src == nil {
		return nil
	}
	if index < 0 || index > l.size || srcStart < 0 || srcStart > src.size {
		return ErrOutOfRange
	}
	if count > src.size-srcStart {
		count = src.size - srcStart
	}
	if count <= 0 {
		return nil
	}

	need, ok := bounds.AddOverflowSafe(l.size, count)
	if !ok {
		return ErrOutOfRange
	}
	if need > cap(l.buf) {
		// Bulk growth still follows the doubling policy: grow requests
		// the larger of need and the doubled capacity.
		l.grow(need)
	}

	// Shift the tail right; copy is overlap-safe.
	copy(l.buf[index+count:l.size+count], l.buf[index:l.size])

	if src == l {
		// Self-copy semantics: source elements at or past index just
		// moved count slots right.
		for i := 0; i < count; i++ {
			from := srcStart + i
			if from >= index {
				from += count
			}
			l.buf[index+i] = l.buf[from]
		}
	} else {
		copy(l.buf[index:index+count], src.buf[srcStart:srcStart+count])
	}
	l.size += count
	return nil
}
