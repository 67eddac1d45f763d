package aggregation

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StatsCollector exports the aggregator's counters to Prometheus.
// It reads on scrape, so the aggregator stays the only source of truth.
type StatsCollector struct {
	stats *StatsAggregator

	received     *prometheus.Desc
	ackDelivered *prometheus.Desc
	ackFailed    *prometheus.Desc
}

func newStatsDesc(name, help string) *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName("notification", "stats", name),
		help,
		nil,
		nil,
	)
}

// NewStatsCollector wraps stats for registration with a prometheus.Registerer.
func NewStatsCollector(stats *StatsAggregator) *StatsCollector {
	if stats == nil {
		panic("aggregation: stats must not be nil")
	}
	return &StatsCollector{
		stats:        stats,
		received:     newStatsDesc("received_total", "Total valid user notification events received"),
		ackDelivered: newStatsDesc("ack_delivered_total", "Total valid delivery acks with status DELIVERED"),
		ackFailed:    newStatsDesc("ack_failed_total", "Total valid delivery acks with status FAILED"),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.received
	ch <- c.ackDelivered
	ch <- c.ackFailed
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.stats.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.received, prometheus.CounterValue, float64(snap.Received))
	ch <- prometheus.MustNewConstMetric(c.ackDelivered, prometheus.CounterValue, float64(snap.AckDelivered))
	ch <- prometheus.MustNewConstMetric(c.ackFailed, prometheus.CounterValue, float64(snap.AckFailed))
}
