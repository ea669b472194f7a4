package cache

import "github.com/prometheus/client_golang/prometheus"

// StatsSource is anything that can report cache statistics.
type StatsSource interface {
	Stats() Stats
}

type collector struct {
	src StatsSource

	size        *prometheus.Desc
	maxSize     *prometheus.Desc
	hits        *prometheus.Desc
	misses      *prometheus.Desc
	evictions   *prometheus.Desc
	expirations *prometheus.Desc
}

// NewCollector exposes the statistics of src as Prometheus metrics, read at
// scrape time. The name ends up as a constant "cache" label.
func NewCollector(namespace, name string, src StatsSource) prometheus.Collector {
	labels := prometheus.Labels{"cache": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "cache", metric), help, nil, labels)
	}

	return &collector{
		src:         src,
		size:        desc("entries", "Number of entries currently held, including unswept expired ones."),
		maxSize:     desc("max_entries", "Configured capacity of the cache."),
		hits:        desc("hits_total", "Lookups that returned a live entry."),
		misses:      desc("misses_total", "Lookups that found no live entry."),
		evictions:   desc("evictions_total", "Entries removed to make room for new keys."),
		expirations: desc("expirations_total", "Expired entries removed on read or by sweeps."),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.maxSize
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.expirations
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.maxSize, prometheus.GaugeValue, float64(s.MaxSize))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.expirations, prometheus.CounterValue, float64(s.Expirations))
}
