package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postgresStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "postgres_store",
		Name:      "operations_total",
		Help:      "Count of store operations.",
	}, []string{"operation", "status"})
	postgresStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "postgres_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of store operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "status"})
)

// PostgresStore tracks metrics for PostgreSQL store operations.
type PostgresStore struct{}

// NewPostgresStore creates a PostgresStore metrics collector.
func NewPostgresStore() *PostgresStore {
	return &PostgresStore{}
}

// Observe records duration and status of a store operation.
func (m PostgresStore) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	postgresStoreOperationsTotal.WithLabelValues(operation, status).Inc()
	postgresStoreOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
