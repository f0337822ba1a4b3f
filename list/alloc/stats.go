package alloc

// Stats holds internal pool counters for testing and instrumentation.
type Stats struct {
	AcquireCalls   int64 // Total Acquire() calls
	PoolHits       int64 // Acquires satisfied from a free list
	PoolMisses     int64 // Acquires that allocated a fresh buffer
	ReleaseCalls   int64 // Total Release() calls
	BucketsCreated int64 // Capacity buckets created so far
	NodesReused    int64 // Free-list insertions served by a spare node
	NodesAllocated int64 // Free-list insertions that built a new node
	ElemsPooled    int64 // Element slots currently parked across all free lists
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	return p.stats
}

// Buckets returns the number of capacity buckets in the index.
func (p *Pool[T]) Buckets() int {
	return p.index.len()
}

// SpareNodes returns the number of parked linkage nodes.
func (p *Pool[T]) SpareNodes() int {
	return p.nodes.spares()
}
