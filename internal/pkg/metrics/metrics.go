package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the console's Prometheus collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	summaries        prometheus.Counter
	staleDiscards    prometheus.Counter
	documents        *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gym_console",
			Name:      "upstream_requests_total",
			Help:      "Requests sent to the gym API, by endpoint and status code.",
		}, []string{"endpoint", "method", "code"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gym_console",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of requests sent to the gym API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
		summaries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gym_console",
			Name:      "attendance_summaries_total",
			Help:      "Attendance summaries computed.",
		}),
		staleDiscards: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gym_console",
			Name:      "attendance_stale_snapshots_total",
			Help:      "Attendance fetches discarded because a newer fetch had already been committed.",
		}),
		documents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gym_console",
			Name:      "documents_generated_total",
			Help:      "Generated payslips and reports, by kind and format.",
		}, []string{"kind", "format"}),
	}
}

// ObserveUpstream records one request to the gym API. code is 0 when no response arrived.
func (m *Metrics) ObserveUpstream(endpoint, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(endpoint, method, strconv.Itoa(code)).Inc()
	m.upstreamDuration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}

func (m *Metrics) SummaryComputed() {
	if m == nil {
		return
	}
	m.summaries.Inc()
}

func (m *Metrics) StaleSnapshotDiscarded() {
	if m == nil {
		return
	}
	m.staleDiscards.Inc()
}

func (m *Metrics) DocumentGenerated(kind, format string) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(kind, format).Inc()
}
