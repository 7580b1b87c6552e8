package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RowsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bomlens_rows_processed_total",
			Help: "Total number of BOM rows processed, by resolution status",
		},
		[]string{"status"},
	)

	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bomlens_catalog_requests_total",
			Help: "Total number of requests issued to the Mouser API",
		},
		[]string{"operation"},
	)

	CatalogFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bomlens_catalog_failures_total",
			Help: "Total number of Mouser API requests that failed",
		},
		[]string{"operation", "reason"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bomlens_batch_duration_seconds",
			Help:    "Duration of a full BOM enrichment run in seconds",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)
)
