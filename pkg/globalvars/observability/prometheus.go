package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// RegistryStats is the read-only view of a registry the collector scrapes.
type RegistryStats interface {
	Len() int
	Revision() uint64
}

var (
	entriesDesc = prometheus.NewDesc(
		"globalvars_entries",
		"Number of entries held by the registry.",
		nil, nil,
	)
	revisionDesc = prometheus.NewDesc(
		"globalvars_revision",
		"Number of mutations applied to the registry.",
		nil, nil,
	)
)

// entriesCollector exposes registry size and revision at scrape time.
type entriesCollector struct {
	stats RegistryStats
}

// NewRegistryCollector returns a prometheus.Collector reading stats on
// every scrape. Register it with prometheus.MustRegister or a custom
// prometheus.Registry.
func NewRegistryCollector(stats RegistryStats) prometheus.Collector {
	return &entriesCollector{stats: stats}
}

// Describe implements prometheus.Collector.
func (c *entriesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- entriesDesc
	ch <- revisionDesc
}

// Collect implements prometheus.Collector.
func (c *entriesCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(entriesDesc, prometheus.GaugeValue, float64(c.stats.Len()))
	ch <- prometheus.MustNewConstMetric(revisionDesc, prometheus.CounterValue, float64(c.stats.Revision()))
}
