package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcart_status_transitions_total",
			Help: "Total number of status transition requests",
		},
		[]string{"entity", "target", "outcome"},
	)

	RollbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcart_optimistic_rollbacks_total",
			Help: "Total number of optimistic mutations rolled back",
		},
		[]string{"entity"},
	)

	RemoteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymcart_remote_failures_total",
			Help: "Total number of failed authoritative API calls",
		},
	)

	RefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymcart_membership_refreshes_total",
			Help: "Total number of membership refresh iterations",
		},
		[]string{"outcome"},
	)
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeSuccess  = "success"
)

func RecordTransition(entity, target, outcome string) {
	TransitionsTotal.WithLabelValues(entity, target, outcome).Inc()
}

func RecordRollback(entity string) {
	RollbacksTotal.WithLabelValues(entity).Inc()
	RemoteFailuresTotal.Inc()
}

func RecordRefresh(outcome string) {
	RefreshesTotal.WithLabelValues(outcome).Inc()
}
