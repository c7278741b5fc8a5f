package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide Prometheus collectors.
type Metrics struct {
	SyncCycles     *prometheus.CounterVec
	SyncDuration   prometheus.Histogram
	QueueDepth     prometheus.Gauge
	QueueSubmitted prometheus.Counter
	CacheLookups   *prometheus.CounterVec
	ScanOutcomes   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SyncCycles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "piket_sync_cycles_total",
			Help: "Sync cycles by result (synced, stale, failed).",
		}, []string{"result"}),
		SyncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "piket_sync_duration_seconds",
			Help:    "Duration of one full sync cycle.",
			Buckets: prometheus.DefBuckets,
		}),
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "piket_queue_depth",
			Help: "Pending writes waiting for confirmation.",
		}),
		QueueSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "piket_queue_submitted_total",
			Help: "Pending writes dispatched to the sheet endpoint.",
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "piket_cache_lookups_total",
			Help: "Cache lookups by outcome (hit, stale, miss).",
		}, []string{"outcome"}),
		ScanOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "piket_scan_total",
			Help: "QR scans by outcome (checked_in, checked_out, rejected).",
		}, []string{"outcome"}),
	}
}
