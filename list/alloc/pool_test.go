package alloc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_PoolRoundTrip verifies that releasing a buffer of capacity C and
// immediately acquiring with desired C returns the same backing array.
func Test_PoolRoundTrip(t *testing.T) {
	p := NewPool[int](nil)

	buf := p.Acquire(1, 64)
	require.Len(t, buf, 64)
	buf[0] = 12345 // marker survives pooling: contents are not cleared

	p.Release(buf)
	got := p.Acquire(1, 64)
	require.Equal(t, 64, cap(got))
	require.Equal(t, 12345, got[0], "expected the same backing array back")
	require.Equal(t, int64(1), p.Stats().PoolHits)
}

func Test_AcquireFreshWhenEmpty(t *testing.T) {
	p := NewPool[byte](nil)

	buf := p.Acquire(10, 32)
	require.Equal(t, 32, cap(buf))
	require.Equal(t, 32, len(buf))
	require.Equal(t, int64(1), p.Stats().PoolMisses)
}

func Test_AcquireDesiredBelowMinIsRaised(t *testing.T) {
	p := NewPool[byte](nil)

	buf := p.Acquire(48, 32)
	require.Equal(t, 48, cap(buf))
}

// Test_AcquireFirstFitUpward checks the nearest-fit scan: no exact
// bucket, so the smallest non-empty larger bucket wins.
func Test_AcquireFirstFitUpward(t *testing.T) {
	p := NewPool[int](nil)

	p.Release(make([]int, 128))
	p.Release(make([]int, 512))

	buf := p.Acquire(100, 100)
	require.Equal(t, 128, cap(buf), "first non-empty bucket at or above min")

	buf = p.Acquire(200, 200)
	require.Equal(t, 512, cap(buf))
}

func Test_AcquirePrefersExactDesired(t *testing.T) {
	p := NewPool[int](nil)

	p.Release(make([]int, 33)) // would first-fit for min=1
	p.Release(make([]int, 64))

	buf := p.Acquire(1, 64)
	require.Equal(t, 64, cap(buf), "exact desired beats smaller first-fit")
}

// Test_FreeListLIFO verifies the most recently released buffer is the
// first handed out.
func Test_FreeListLIFO(t *testing.T) {
	p := NewPool[int](nil)

	a := make([]int, 16)
	b := make([]int, 16)
	a[0], b[0] = 1, 2
	p.Release(a)
	p.Release(b)

	first := p.Acquire(16, 16)
	second := p.Acquire(16, 16)
	require.Equal(t, 2, first[0], "LIFO: b released last, handed out first")
	require.Equal(t, 1, second[0])
}

func Test_ReleaseIgnoresEmptyBuffers(t *testing.T) {
	p := NewPool[int](nil)

	p.Release(nil)
	p.Release([]int{})
	require.Zero(t, p.Stats().ReleaseCalls)
	require.Zero(t, p.Buckets())
}

func Test_ReleaseFilesUnderFullCapacity(t *testing.T) {
	p := NewPool[int](nil)

	buf := make([]int, 100)
	p.Release(buf[:10]) // shortened view of a cap-100 array

	got := p.Acquire(100, 100)
	require.Equal(t, 100, cap(got))
	require.Equal(t, 100, len(got), "pooled buffers come back full-length")
}

func Test_AcquireExact(t *testing.T) {
	p := NewPool[int](nil)

	p.Release(make([]int, 64))

	// Exact-only: the 64 bucket must not satisfy a request for 10.
	buf := p.AcquireExact(10)
	require.Equal(t, 10, cap(buf))
	require.Equal(t, int64(1), p.Stats().PoolMisses)

	got := p.AcquireExact(64)
	require.Equal(t, 64, cap(got))
	require.Equal(t, int64(1), p.Stats().PoolHits)
}

func Test_BucketsPersist(t *testing.T) {
	p := NewPool[int](nil)

	p.Release(make([]int, 8))
	require.Equal(t, 1, p.Buckets())

	// Draining a bucket does not tear it down.
	p.Acquire(8, 8)
	require.Equal(t, 1, p.Buckets())

	p.Release(make([]int, 8))
	require.Equal(t, 1, p.Buckets(), "same capacity reuses the bucket")
}

func Test_ElemsPooledAccounting(t *testing.T) {
	p := NewPool[int](nil)

	p.Release(make([]int, 8))
	p.Release(make([]int, 32))
	require.Equal(t, int64(40), p.Stats().ElemsPooled)

	p.Acquire(8, 8)
	require.Equal(t, int64(32), p.Stats().ElemsPooled)
}

func Test_ConfigGrowTarget(t *testing.T) {
	cfg := DefaultConfig

	require.Equal(t, 32, cfg.GrowTarget(0, 1), "floor applies to first allocation")
	require.Equal(t, 64, cfg.GrowTarget(32, 33), "doubling")
	require.Equal(t, 500, cfg.GrowTarget(32, 500), "bulk need beats doubling")
	require.Equal(t, 32, cfg.GrowTarget(4, 5), "floor beats small doubling")
}

func Test_NewPoolNormalizesConfig(t *testing.T) {
	p := NewPool[int](&Config{})
	require.Equal(t, DefaultConfig.MinCapacity, p.Config().MinCapacity)
	require.Equal(t, DefaultConfig.Growth, p.Config().Growth)

	p = NewPool[int](&Config{MinCapacity: 8, Growth: 4})
	require.Equal(t, 8, p.Config().MinCapacity)
	require.Equal(t, 4, p.Config().Growth)
}

// Test_Fuzz_RandomAcquireRelease performs random pool traffic and
// validates the ownership and accounting invariants after every step.
func Test_Fuzz_RandomAcquireRelease(t *testing.T) {
	p := NewPool[int](nil)
	rng := rand.New(rand.NewSource(42)) // fixed seed for reproducibility

	var held [][]int
	for step := range 1000 {
		if rng.Intn(2) == 0 || len(held) == 0 {
			min := 1 + rng.Intn(64)
			desired := min + rng.Intn(64)
			buf := p.Acquire(min, desired)
			require.GreaterOrEqual(t, cap(buf), min, "step %d", step)
			held = append(held, buf)
		} else {
			i := rng.Intn(len(held))
			buf := held[i]
			held[i] = held[len(held)-1]
			held = held[:len(held)-1]
			p.Release(buf)
		}

		s := p.Stats()
		require.Equal(t, s.AcquireCalls, s.PoolHits+s.PoolMisses, "step %d", step)
		require.Equal(t, s.ReleaseCalls, s.NodesReused+s.NodesAllocated, "step %d", step)
		require.GreaterOrEqual(t, s.ElemsPooled, int64(0), "step %d", step)
	}
}
