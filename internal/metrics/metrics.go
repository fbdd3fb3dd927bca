package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolve statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

var (
	OperationResolvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whalebone_operation_resolves_total",
			Help: "Total number of operation resolves by bucket, operation and status.",
		},
		[]string{"bucket", "operation", "status"},
	)

	OperationResolveDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whalebone_operation_resolve_duration_seconds",
			Help:    "Duration of operation resolves in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		},
		[]string{"bucket", "operation"},
	)

	RegisteredOperations = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "whalebone_registered_operations",
			Help: "Number of operations held by each registry bucket.",
		},
		[]string{"bucket"},
	)
)

// Register registers all whalebone metrics with the default Prometheus registry.
func Register() {
	prometheus.MustRegister(
		OperationResolvesTotal,
		OperationResolveDurationSeconds,
		RegisteredOperations,
	)
}
