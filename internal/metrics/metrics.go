package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transaction outcomes besides the service error codes
const (
	OutcomeApplied = "applied"
	OutcomeError   = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "balance_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "balance_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "balance_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "balance_transactions_total",
			Help: "Total number of balance update transactions by outcome",
		},
		[]string{"outcome"},
	)

	SnapshotsWrittenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "balance_snapshots_written_total",
			Help: "Total number of daily balance snapshots inserted or updated",
		},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "balance_update_batch_size",
			Help:    "Number of transactions per balance update request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRateLimited() {
	RateLimitedTotal.Inc()
}

func RecordTransaction(outcome string) {
	TransactionsTotal.WithLabelValues(outcome).Inc()
}

func RecordSnapshotsWritten(n int) {
	SnapshotsWrittenTotal.Add(float64(n))
}

func RecordBatch(size int) {
	BatchSize.Observe(float64(size))
}
