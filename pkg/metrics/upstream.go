package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics records calls made to the salon platform API, labelled by operation.
type UpstreamMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewUpstreamMetrics registers the upstream metrics on the provided registerer.
func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	if reg == nil {
		return &UpstreamMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "platform_request_duration_seconds",
		Help:    "Duration of salon platform API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "platform_request_success_total",
		Help: "Successful salon platform API calls.",
	}, []string{"operation"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "platform_request_failure_total",
		Help: "Failed salon platform API calls.",
	}, []string{"operation", "code"})
	reg.MustRegister(duration, success, failure)
	return &UpstreamMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// Observe records one finished call. code is empty on success.
func (u *UpstreamMetrics) Observe(operation string, elapsed time.Duration, code string) {
	if u == nil || u.duration == nil {
		return
	}
	op := normalizeLabel(operation)
	u.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	if code == "" {
		u.success.WithLabelValues(op).Inc()
		return
	}
	u.failure.WithLabelValues(op, code).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
