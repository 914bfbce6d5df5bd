package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transfer outcomes.
const (
	TransferSucceeded = "succeeded"
	TransferRejected  = "rejected"
	TransferFailed    = "failed"
)

var (
	httpReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "account_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "endpoint"})

	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_transfers_total",
		Help: "Transfers by outcome",
	}, []string{"outcome"})
)

// ObserveTransfer counts one transfer with the given outcome.
func ObserveTransfer(outcome string) {
	transfersTotal.WithLabelValues(outcome).Inc()
}

// Middleware records request counts and latency labelled by the operation's
// path template.
func Middleware(ctx huma.Context, next func(huma.Context)) {
	op := ctx.Operation()
	start := time.Now()

	next(ctx)

	httpLatency.WithLabelValues(op.Method, op.Path).Observe(time.Since(start).Seconds())
	httpReqTotal.WithLabelValues(op.Method, op.Path, strconv.Itoa(ctx.Status())).Inc()
}
