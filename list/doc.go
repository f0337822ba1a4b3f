// Package list implements a growable array-backed sequence whose
// backing buffers are recycled through a shared capacity-bucketed pool.
//
// # Overview
//
// List behaves like an ordinary dynamic array: append, indexed insert
// and removal, range insertion, pop, and an in-place sort. What sets it
// apart is the capacity protocol. Growing, shrinking, and releasing a
// list all move whole buffers to and from an alloc.Pool instead of
// leaving garbage behind, so a workload that builds and discards lists
// every frame converges to zero allocation.
//
// # Usage Example
//
//	pool := alloc.NewPool[int](nil)
//	l := list.New(pool)
//
//	for i := range 100 {
//	    l.Append(i)
//	}
//	l.Sort(func(a, b int) int { return b - a })
//
//	l.Clear()   // size 0, buffer kept: cheap per-frame reset
//	l.Release() // buffer handed back to the pool
//
// # Growth and Shrink Protocol
//
// A full list grows to max(32, cap*2), or to the exact need when a bulk
// InsertRange wants more than that. Capacity only ever shrinks through
// Trim (to exactly Len) or Release (to nothing). Clear touches neither
// the buffer nor the pool.
//
// # Error Handling
//
// Single-element operations degrade gracefully: Insert with a bad index
// appends, RemoveAt with a bad index is a no-op. InsertRange is the one
// operation with validated preconditions and returns ErrOutOfRange.
// Indexed access via Get and Set is a programming contract and fails
// fast with a panic rather than returning stale data.
//
// # Thread Safety
//
// Lists and their pool share an owner thread. See the alloc package
// for the ownership discipline.
package list
