package poller

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Endpoint labels.
const (
	EndpointStatus  = "status"
	EndpointWeather = "weather"
)

// Poll outcomes.
const (
	OutcomeApplied     = "applied"
	OutcomeUnavailable = "unavailable"
	OutcomeTransport   = "transport"
	OutcomeParse       = "parse"
)

// Metrics counts poll outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	polls    *prometheus.CounterVec
	stale    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the poller collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeportal",
			Name:      "polls_total",
			Help:      "Completed polls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homeportal",
			Name:      "stale_responses_total",
			Help:      "Responses discarded because a newer one was already applied.",
		}, []string{"endpoint"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "homeportal",
			Name:      "poll_duration_seconds",
			Help:      "Time from request start to decoded response.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	reg.MustRegister(m.polls, m.stale, m.duration)
	return m
}

// ObservePoll records one finished poll.
func (m *Metrics) ObservePoll(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.polls.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ObserveStale records a discarded out-of-order response.
func (m *Metrics) ObserveStale(endpoint string) {
	if m == nil {
		return
	}
	m.stale.WithLabelValues(endpoint).Inc()
}

func outcomeFor(err error, available bool) string {
	switch FailureKind(err) {
	case FailureTransport:
		return OutcomeTransport
	case FailureParse:
		return OutcomeParse
	}
	if !available {
		return OutcomeUnavailable
	}
	return OutcomeApplied
}
