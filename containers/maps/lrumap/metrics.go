package lrumap

import "github.com/prometheus/client_golang/prometheus"

// Stats is a snapshot of a map's counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	MaxSize   int
}

// Stats returns the map's counters. It is safe to call concurrently with
// other methods.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
		Size:      int(m.size.Load()),
		MaxSize:   int(m.capacity.Load()),
	}
}

// StatsSource is implemented by *Map and by its synchronized wrapper.
type StatsSource interface {
	Stats() Stats
}

// Collector exports the counters of one map as Prometheus metrics.
type Collector struct {
	source StatsSource

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	size      *prometheus.Desc
	maxSize   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for source; name ends up in the "map" label.
func NewCollector(name string, source StatsSource) *Collector {
	labels := prometheus.Labels{"map": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("mcontainers", "lrumap", metric), help, nil, labels)
	}
	return &Collector{
		source:    source,
		hits:      desc("hits_total", "Number of lookups that found their key."),
		misses:    desc("misses_total", "Number of lookups that did not find their key."),
		evictions: desc("evictions_total", "Number of entries evicted to make room."),
		size:      desc("entries", "Number of entries in the map."),
		maxSize:   desc("max_entries", "Capacity of the map."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.size
	ch <- c.maxSize
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.maxSize, prometheus.GaugeValue, float64(s.MaxSize))
}
