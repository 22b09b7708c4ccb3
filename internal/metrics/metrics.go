package metrics

import (
	"errors"

	"github.com/dafibh/lendbook/lendbook-backend/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LedgerOperations counts ledger operations by outcome
	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lendbook",
			Name:      "ledger_operations_total",
			Help:      "Ledger operations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	// RuleViolations counts rejected operations by the rule that rejected them
	RuleViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lendbook",
			Name:      "rule_violations_total",
			Help:      "Business rule violations by operation and rule code",
		},
		[]string{"operation", "code"},
	)

	// HTTPRequests counts API requests
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lendbook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "code"},
	)

	// HTTPDuration observes API latency
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lendbook",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// LoginAttempts counts PIN logins by result
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lendbook",
			Name:      "login_attempts_total",
			Help:      "PIN login attempts by result",
		},
		[]string{"result"},
	)

	// WebSocketClients tracks connected live-update clients
	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lendbook",
			Name:      "websocket_clients",
			Help:      "Connected websocket clients",
		},
	)
)

// Outcome labels
const (
	StatusOK         = "ok"
	StatusValidation = "validation_error"
	StatusNotFound   = "not_found"
	StatusError      = "error"
)

// StatusOf maps an operation error to its outcome label
func StatusOf(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case domain.IsValidation(err):
		return StatusValidation
	case domain.IsNotFound(err):
		return StatusNotFound
	default:
		return StatusError
	}
}

// Record counts one ledger operation and, for rule violations, the rule hit
func Record(operation string, err error) {
	status := StatusOf(err)
	LedgerOperations.WithLabelValues(operation, status).Inc()

	var ve *domain.ValidationError
	if status == StatusValidation && errors.As(err, &ve) {
		code := ve.Code
		if code == "" {
			code = "unknown"
		}
		RuleViolations.WithLabelValues(operation, code).Inc()
	}
}
