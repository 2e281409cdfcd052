package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы обращения к сервису доступности
const (
	LookupOutcomeOK     = "ok"
	LookupOutcomeFailed = "failed"
	LookupOutcomeStale  = "stale"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AvailabilityLookupsTotal   *prometheus.CounterVec
	AvailabilityLookupDuration prometheus.Histogram

	ActiveSessions prometheus.Gauge
	StageAdvances  *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		AvailabilityLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_lookups_total",
				Help:        "Availability lookups by outcome (ok, failed, stale)",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		AvailabilityLookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "availability_lookup_duration_seconds",
				Help:        "Duration of availability lookups",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name:        "booking_sessions_active",
				Help:        "Number of open booking sessions",
				ConstLabels: constLabels,
			},
		),
		StageAdvances: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "booking_stage_transitions_total",
				Help:        "Booking stage transitions by target stage",
				ConstLabels: constLabels,
			},
			[]string{"stage"},
		),
	}
}

// ObserveLookup фиксирует исход обращения к сервису доступности
func (m *Metrics) ObserveLookup(outcome string, seconds float64) {
	m.AvailabilityLookupsTotal.WithLabelValues(outcome).Inc()
	if outcome != LookupOutcomeStale {
		m.AvailabilityLookupDuration.Observe(seconds)
	}
}

func (m *Metrics) SessionOpened() {
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	m.ActiveSessions.Dec()
}

func (m *Metrics) StageEntered(stage string) {
	m.StageAdvances.WithLabelValues(stage).Inc()
}
