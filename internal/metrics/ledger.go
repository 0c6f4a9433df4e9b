package metrics

import (
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	utxoApplyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "utxo_ledger",
		Name:      "transactions_total",
		Help:      "Count of transactions applied to the UTXO set.",
	}, []string{"type", "status"})
	utxoApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "utxo_ledger",
		Name:      "apply_duration_seconds",
		Help:      "Duration of applying a transaction to the UTXO set.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type", "status"})

	accountRecomputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "account_ledger",
		Name:      "recomputes_total",
		Help:      "Count of account snapshot recomputations.",
	}, []string{"status"})
	accountRecomputeSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "account_ledger",
		Name:      "recompute_accounts",
		Help:      "Number of accounts per recomputation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
	accountRecomputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "account_ledger",
		Name:      "recompute_duration_seconds",
		Help:      "Duration of an account recomputation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// UTXOLedger tracks metrics of the asset output ledger.
type UTXOLedger struct{}

func NewUTXOLedger() *UTXOLedger {
	return &UTXOLedger{}
}

// ObserveApply records one transaction applied to the UTXO set.
func (m UTXOLedger) ObserveApply(err error, txType model.TransactionType, started time.Time) {
	status := statusLabel(err)
	utxoApplyTotal.WithLabelValues(string(txType), status).Inc()
	utxoApplyDuration.WithLabelValues(string(txType), status).Observe(time.Since(started).Seconds())
}

// AccountLedger tracks metrics of the account snapshot ledger.
type AccountLedger struct{}

func NewAccountLedger() *AccountLedger {
	return &AccountLedger{}
}

// ObserveRecompute records a recomputation over accounts addresses.
func (m AccountLedger) ObserveRecompute(err error, accounts int, started time.Time) {
	status := statusLabel(err)
	accountRecomputeTotal.WithLabelValues(status).Inc()
	accountRecomputeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	accountRecomputeSize.Observe(float64(accounts))
}
