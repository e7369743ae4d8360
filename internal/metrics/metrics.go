package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "open_aigov"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests served, by route template and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Time taken to serve an HTTP request.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Integrations
	IntegrationTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integration_toggles_total",
		Help:      "Count of integration enable/disable attempts.",
	}, []string{"result"})

	IntegrationCredentialChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integration_credential_changes_total",
		Help:      "Count of credential add/remove attempts.",
	}, []string{"action", "result"})

	IntegrationsSeededTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integrations_seeded_total",
		Help:      "Number of default integrations inserted by seeding.",
	})

	// Use cases
	RiskReconcileOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "risk_reconcile_ops_total",
		Help:      "Risk create/update/delete operations applied on use case save.",
	}, []string{"op", "result"})

	WizardTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wizard_transitions_total",
		Help:      "Count of wizard forward transitions, by source tab and outcome.",
	}, []string{"tab", "result"})
)

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)
