// Package metrics declares the prometheus collectors of the sync client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "msgsync"

var (
	SlowSyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "slow_sync",
		Name:      "runs_total",
		Help:      "Slow sync runs by outcome (complete, failed, canceled)",
	}, []string{"outcome"})

	SlowSyncStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "slow_sync",
		Name:      "step_duration_seconds",
		Help:      "Duration of a slow sync step",
		Buckets:   prometheus.DefBuckets,
	}, []string{"step"})

	IncrementalSyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "incremental_sync",
		Name:      "runs_total",
		Help:      "Incremental sync runs by outcome (complete, failed, canceled)",
	}, []string{"outcome"})

	IncrementalEventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "incremental_sync",
		Name:      "events_processed_total",
		Help:      "Events dispatched by category and outcome",
	}, []string{"category", "outcome"})

	SupervisorRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "supervisor",
		Name:      "retries_total",
		Help:      "Failed runs that were scheduled for retry",
	}, []string{"supervisor"})

	CryptoTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "crypto",
		Name:      "transactions_total",
		Help:      "Crypto transactions by opened backends and outcome",
	}, []string{"backends", "outcome"})

	OneOnOneMigrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "one_on_one",
		Name:      "migrations_total",
		Help:      "One-on-one resolutions by target protocol and outcome",
	}, []string{"protocol", "outcome"})

	VerificationTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "verification",
		Name:      "transitions_total",
		Help:      "Persisted conversation verification status changes",
	}, []string{"status"})
)

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeCanceled = "canceled"
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
