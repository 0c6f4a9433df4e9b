package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of served HTTP requests.",
	}, []string{"handler", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of served HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"handler"})
)

// HTTPHandler tracks metrics of the indexer's HTTP handlers.
type HTTPHandler struct{}

func NewHTTPHandler() *HTTPHandler {
	return &HTTPHandler{}
}

func (m HTTPHandler) ObserveRequest(handler string, code int, started time.Time) {
	httpRequestsTotal.WithLabelValues(handler, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(handler).Observe(time.Since(started).Seconds())
}
