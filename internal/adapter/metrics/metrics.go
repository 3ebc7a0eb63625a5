package metrics

import (
	"strconv"
	"time"

	"cybersource-gateway/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "card_gateway"

// Metrics implements ports.Metrics with Prometheus collectors.
type Metrics struct {
	outcomes      *prometheus.CounterVec
	gatewayCalls  *prometheus.HistogramVec
	verifications *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_outcomes_total",
			Help:      "Classified gateway outcomes by operation.",
		}, []string{"operation", "outcome"}),
		gatewayCalls: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      "Latency of gateway REST calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "result"}),
		verifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capture_context_issuances_total",
			Help:      "Capture context issuances by attempts needed and result.",
		}, []string{"attempts", "result"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_notifications_total",
			Help:      "Webhook notifications received by event type and handling result.",
		}, []string{"event_type", "result"}),
	}
}

func (m *Metrics) ObserveOutcome(operation string, outcome domain.OutcomeKind) {
	m.outcomes.WithLabelValues(operation, string(outcome)).Inc()
}

func (m *Metrics) ObserveGatewayCall(operation string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "transport_error"
	}
	m.gatewayCalls.WithLabelValues(operation, result).Observe(duration.Seconds())
}

func (m *Metrics) ObserveVerificationAttempts(attempts int, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.verifications.WithLabelValues(strconv.Itoa(attempts), result).Inc()
}

func (m *Metrics) ObserveNotification(eventType string, result string) {
	m.notifications.WithLabelValues(eventType, result).Inc()
}
