package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "runs_total",
		Help:      "Count of sync runs.",
	}, []string{"network", "status"})

	syncRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "run_duration_seconds",
		Help:      "Duration of a sync run.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"network", "status"})

	syncBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "blocks_total",
		Help:      "Count of ingested blocks.",
	}, []string{"network", "status"})

	syncBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "block_duration_seconds",
		Help:      "Duration of ingesting one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	syncRetractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "retractions_total",
		Help:      "Count of retracted blocks.",
	}, []string{"network"})

	syncPendingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "pending_runs_total",
		Help:      "Count of pending pool refreshes.",
	}, []string{"network", "status"})

	syncPendingSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "pending_transactions",
		Help:      "Number of transactions in the last pending pool snapshot.",
	}, []string{"network"})

	syncTip = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sync_engine",
		Name:      "tip_block_number",
		Help:      "Number of the latest indexed block.",
	}, []string{"network"})
)

// SyncEngine tracks metrics of the block synchronization engine.
type SyncEngine struct {
	network string
}

// NewSyncEngine constructs a SyncEngine collector.
func NewSyncEngine(network string) *SyncEngine {
	if network == "" {
		network = "unknown"
	}
	return &SyncEngine{network: network}
}

// ObserveSync records a whole sync run.
func (m SyncEngine) ObserveSync(err error, started time.Time) {
	status := statusLabel(err)
	syncRunsTotal.WithLabelValues(m.network, status).Inc()
	syncRunDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveBlock records ingestion of a single block.
func (m SyncEngine) ObserveBlock(err error, _ uint64, started time.Time) {
	status := statusLabel(err)
	syncBlocksTotal.WithLabelValues(m.network, status).Inc()
	syncBlockDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

func (m SyncEngine) ObserveRetraction(_ uint64) {
	syncRetractionsTotal.WithLabelValues(m.network).Inc()
}

// ObservePending records a pending pool refresh and the pool size it saw.
func (m SyncEngine) ObservePending(err error, count int, _ time.Time) {
	syncPendingTotal.WithLabelValues(m.network, statusLabel(err)).Inc()
	if err == nil {
		syncPendingSize.WithLabelValues(m.network).Set(float64(count))
	}
}

func (m SyncEngine) SetTip(number uint64) {
	syncTip.WithLabelValues(m.network).Set(float64(number))
}
