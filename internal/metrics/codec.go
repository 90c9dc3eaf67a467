// Package metrics exposes prometheus collectors for codec and command operations.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/legacytx/internal/legacytx/model"
	"github.com/goodnatureofminers/legacytx/internal/legacytx/txerr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	codecOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "legacytx",
		Subsystem: "codec",
		Name:      "operations_total",
		Help:      "Count of transaction encode and decode operations.",
	}, []string{"operation", "network", "status"})
	codecOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "legacytx",
		Subsystem: "codec",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction encode and decode operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	codecPayloadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "legacytx",
		Subsystem: "codec",
		Name:      "payload_bytes",
		Help:      "Size of encoded transactions handled by the codec.",
		Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
	}, []string{"operation", "network"})
)

// Codec tracks metrics for transaction codec calls.
type Codec struct {
	network model.Network
}

// NewCodec constructs a metrics collector for codec calls on the given network.
func NewCodec(network model.Network) *Codec {
	if network == "" {
		network = "unknown"
	}
	return &Codec{network: network}
}

// Observe records a single codec call outcome, payload size and duration.
func (m Codec) Observe(operation string, size int, err error, started time.Time) {
	status := statusOf(err)

	codecOperationsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	codecOperationDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		codecPayloadBytes.WithLabelValues(operation, string(m.network)).Observe(float64(size))
	}
}

func statusOf(err error) string {
	if err == nil {
		return "success"
	}
	switch txerr.KindOf(err) {
	case txerr.KindInvalidTransaction:
		return "invalid_transaction"
	case txerr.KindInsufficientFunds:
		return "insufficient_funds"
	case txerr.KindInvalidAddress:
		return "invalid_address"
	case txerr.KindParse:
		return "parse_error"
	default:
		return "error"
	}
}
