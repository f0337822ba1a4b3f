package alloc

import "github.com/prometheus/client_golang/prometheus"

var (
	descAcquires = prometheus.NewDesc(
		"betterlist_pool_acquires_total",
		"Total buffer acquisitions from the pool.",
		nil, nil,
	)
	descHits = prometheus.NewDesc(
		"betterlist_pool_hits_total",
		"Acquisitions satisfied by a pooled buffer.",
		nil, nil,
	)
	descMisses = prometheus.NewDesc(
		"betterlist_pool_misses_total",
		"Acquisitions that allocated a fresh buffer.",
		nil, nil,
	)
	descReleases = prometheus.NewDesc(
		"betterlist_pool_releases_total",
		"Total buffers returned to the pool.",
		nil, nil,
	)
	descBuckets = prometheus.NewDesc(
		"betterlist_pool_buckets",
		"Capacity buckets currently in the index.",
		nil, nil,
	)
	descElemsPooled = prometheus.NewDesc(
		"betterlist_pool_elements",
		"Element slots currently parked in free lists.",
		nil, nil,
	)
	descSpareNodes = prometheus.NewDesc(
		"betterlist_pool_spare_nodes",
		"Recycled linkage nodes waiting for reuse.",
		nil, nil,
	)
)

// collector adapts a pool's counters to the prometheus scrape model.
// Collect reads pool state, so it must run on the pool's owner thread
// or under the caller's external lock, same as every other pool
// operation.
type collector struct {
	stats      func() Stats
	buckets    func() int
	spareNodes func() int
}

// NewCollector returns a prometheus collector exposing p's statistics.
// Registering it is optional; the pool does not depend on it.
func NewCollector[T any](p *Pool[T]) prometheus.Collector {
	return &collector{
		stats:      p.Stats,
		buckets:    p.Buckets,
		spareNodes: p.SpareNodes,
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- descAcquires
	ch <- descHits
	ch <- descMisses
	ch <- descReleases
	ch <- descBuckets
	ch <- descElemsPooled
	ch <- descSpareNodes
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(descAcquires, prometheus.CounterValue, float64(s.AcquireCalls))
	ch <- prometheus.MustNewConstMetric(descHits, prometheus.CounterValue, float64(s.PoolHits))
	ch <- prometheus.MustNewConstMetric(descMisses, prometheus.CounterValue, float64(s.PoolMisses))
	ch <- prometheus.MustNewConstMetric(descReleases, prometheus.CounterValue, float64(s.ReleaseCalls))
	ch <- prometheus.MustNewConstMetric(descBuckets, prometheus.GaugeValue, float64(c.buckets()))
	ch <- prometheus.MustNewConstMetric(descElemsPooled, prometheus.GaugeValue, float64(s.ElemsPooled))
	ch <- prometheus.MustNewConstMetric(descSpareNodes, prometheus.GaugeValue, float64(c.spareNodes()))
}
