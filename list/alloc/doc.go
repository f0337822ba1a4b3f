// Package alloc provides capacity-bucketed buffer pooling for list containers.
//
// # Overview
//
// This package recycles the backing buffers that list containers grow
// into and discard. Released buffers are filed into buckets keyed by
// their exact capacity; buckets live in an index ordered by capacity so
// a request can binary-search for an exact match and fall forward to
// the nearest larger non-empty bucket. The linkage nodes threading each
// bucket's free list are themselves recycled, so returning a buffer to
// the pool allocates nothing in steady state.
//
// # Usage Example
//
//	pool := alloc.NewPool[int](nil)
//
//	buf := pool.Acquire(1, 32) // fresh or recycled, cap >= 1
//	// ... use buf ...
//	pool.Release(buf)          // buf now belongs to the pool
//
//	buf = pool.Acquire(1, 32)  // same backing array comes back
//
// # Lookup Discipline
//
// Acquire prefers an exact-capacity match at the desired capacity,
// then takes the first non-empty bucket at or above the minimum
// capacity, and only then allocates fresh. Release always files under
// the buffer's exact capacity, creating the bucket on first sight.
// Buckets are never torn down, only drained and refilled. Each free
// list is LIFO ordered.
//
// # Thread Safety
//
// Pool instances are not thread-safe. The design assumes a single
// logical owner (typical of a per-frame update loop); concurrent use
// requires external mutual exclusion around every pool operation.
//
// # Instrumentation
//
// Stats exposes raw counters. NewCollector adapts them to a
// prometheus.Collector for embedders that already scrape. Setting the
// BETTERLIST_LOG_ALLOC environment variable emits debug records of
// misses and releases through the configured go-kit logger.
package alloc
