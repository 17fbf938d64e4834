// Package metrics exposes Prometheus metrics for the sync engine. All
// series are labelled by entity so per-schema sync health is visible on one
// dashboard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecordsSynced counts records fetched and loaded per entity.
	RecordsSynced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bqsync_records_synced_total",
			Help: "Total number of records synced from the warehouse, by entity",
		},
		[]string{"entity"},
	)

	// SyncFailures counts sync runs that ended in an error, per entity.
	SyncFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bqsync_sync_failures_total",
			Help: "Total number of failed sync runs, by entity",
		},
		[]string{"entity"},
	)

	// SyncDuration observes wall-clock duration of each sync run.
	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bqsync_sync_duration_seconds",
			Help:    "Duration of sync runs in seconds, by entity",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
		[]string{"entity"},
	)
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
