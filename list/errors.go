package list

import "errors"

var (
	// ErrOutOfRange indicates an InsertRange position beyond the live
	// elements of the destination or source list.
	ErrOutOfRange = errors.New("list: position out of range")
)
