package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "blocks_total",
		Help:      "Count of settled blocks by consensus mode.",
	}, []string{"mode", "status"})
	settleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "block_duration_seconds",
		Help:      "Duration of settling a block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "status"})
	termCloseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "term_closes_total",
		Help:      "Count of term closings.",
	}, []string{"status"})
	termCloseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "settlement",
		Name:      "term_close_duration_seconds",
		Help:      "Duration of closing a term.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)

// Settlement tracks metrics of fee and reward settlement.
type Settlement struct{}

func NewSettlement() *Settlement {
	return &Settlement{}
}

// ObserveSettle records a block settlement. mode is empty when the block failed before
// its mode was known.
func (m Settlement) ObserveSettle(err error, mode string, started time.Time) {
	if mode == "" {
		mode = "unknown"
	}
	status := statusLabel(err)
	settleTotal.WithLabelValues(mode, status).Inc()
	settleDuration.WithLabelValues(mode, status).Observe(time.Since(started).Seconds())
}

func (m Settlement) ObserveTermClose(err error, started time.Time) {
	termCloseTotal.WithLabelValues(statusLabel(err)).Inc()
	termCloseDuration.Observe(time.Since(started).Seconds())
}
