package alloc

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Runtime flag for allocation logging - controlled by BETTERLIST_LOG_ALLOC env var.
var logAlloc = os.Getenv("BETTERLIST_LOG_ALLOC") != ""

// Pool is a capacity-bucketed buffer allocator. Released buffers are
// filed under their exact capacity and handed back to later requests,
// so steady-state container churn stops allocating.
//
// A Pool is an explicitly constructed object with a single logical
// owner; it performs no synchronization. Callers that share one across
// goroutines must wrap every Acquire/Release in their own mutual
// exclusion.
//
// Ownership discipline: a buffer belongs to exactly one of the issuing
// container or a free list. Release is the sole transfer point, and a
// caller must not touch a buffer after releasing it.
type Pool[T any] struct {
	index  capacityIndex[T]
	nodes  nodeRecycler[T]
	cfg    Config
	logger log.Logger
	stats  Stats
}

// NewPool creates a pool with the given configuration.
// Passing nil uses DefaultConfig.
func NewPool[T any](cfg *Config) *Pool[T] {
	c := DefaultConfig
	if cfg != nil {
		c = cfg.normalize()
	}
	logger := c.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Pool[T]{
		nodes:  newNodeRecycler[T](),
		cfg:    c,
		logger: logger,
	}
}

// Config returns the pool's growth policy.
func (p *Pool[T]) Config() Config {
	return p.cfg
}

// Acquire returns a buffer with capacity of at least minCap, preferring
// an exact match at desiredCap. Pooled buffers are consulted first:
// the exact desiredCap bucket, then the nearest non-empty larger
// bucket starting from minCap. When nothing pooled fits, a fresh
// buffer of exactly desiredCap is allocated.
//
// The returned slice always has len == cap.
func (p *Pool[T]) Acquire(minCap, desiredCap int) []T {
	p.stats.AcquireCalls++
	if minCap < 1 {
		minCap = 1
	}
	if desiredCap < minCap {
		desiredCap = minCap
	}

	if b := p.index.exact(desiredCap); b != nil && b.length > 0 {
		return p.take(b)
	}
	if b, created := p.index.find(minCap, false); b.length > 0 {
		return p.take(b)
	} else if created {
		p.stats.BucketsCreated++
	}

	p.stats.PoolMisses++
	if logAlloc {
		level.Debug(p.logger).Log(
			"msg", "acquire miss",
			"min", minCap,
			"desired", desiredCap,
			"buckets", p.index.len(),
		)
	}
	return make([]T, desiredCap)
}

// AcquireExact returns a buffer of exactly capacity elements, reusing a
// pooled one only on an exact capacity match. Trim depends on this: a
// first-fit-upward result would hand back a larger buffer and defeat
// the shrink.
func (p *Pool[T]) AcquireExact(capacity int) []T {
	p.stats.AcquireCalls++
	if capacity < 1 {
		capacity = 1
	}
	if b := p.index.exact(capacity); b != nil && b.length > 0 {
		return p.take(b)
	}
	p.stats.PoolMisses++
	return make([]T, capacity)
}

// Release files buf into the bucket matching its exact capacity,
// creating the bucket when the capacity has not been seen before.
// Nil and zero-capacity buffers are ignored. The caller gives up
// ownership of buf and every element it holds.
func (p *Pool[T]) Release(buf []T) {
	c := cap(buf)
	if c == 0 {
		return
	}
	p.stats.ReleaseCalls++

	b, created := p.index.find(c, true)
	if created {
		p.stats.BucketsCreated++
	}

	n, reused := p.nodes.acquire(buf[:c])
	if reused {
		p.stats.NodesReused++
	} else {
		p.stats.NodesAllocated++
	}
	b.push(n)
	p.stats.ElemsPooled += int64(c)

	if logAlloc {
		level.Debug(p.logger).Log(
			"msg", "release",
			"capacity", c,
			"pooled", b.length,
		)
	}
}

// take pops the freshest buffer off b's free list and recycles its
// linkage node.
func (p *Pool[T]) take(b *bucket[T]) []T {
	n := b.pop()
	buf := n.buf
	p.nodes.recycle(n)
	p.stats.PoolHits++
	p.stats.ElemsPooled -= int64(cap(buf))
	return buf
}
