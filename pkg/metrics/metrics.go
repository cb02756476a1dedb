// Package metrics provides Prometheus metrics for the fern service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReconciliationsTotal tracks reconciliation passes by kind and source
	ReconciliationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "reconciliation",
			Name:      "runs_total",
			Help:      "Total number of reconciliation passes by kind and source",
		},
		[]string{"kind", "source"},
	)

	// ReconciliationDuration tracks how long a reconciliation pass takes
	ReconciliationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fern",
			Subsystem: "reconciliation",
			Name:      "duration_seconds",
			Help:      "Duration of reconciliation passes in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"kind"},
	)

	// RecordsProcessed tracks input records per kind
	RecordsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "reconciliation",
			Name:      "records_total",
			Help:      "Total number of input records reconciled",
		},
		[]string{"kind"},
	)

	// GroupsProduced tracks output groups per kind
	GroupsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "reconciliation",
			Name:      "groups_total",
			Help:      "Total number of groups produced",
		},
		[]string{"kind"},
	)

	// GroupSize tracks how many records end up in each group
	GroupSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fern",
			Subsystem: "reconciliation",
			Name:      "group_size",
			Help:      "Number of records per produced group",
			Buckets:   []float64{1, 2, 3, 4, 6, 10},
		},
		[]string{"kind"},
	)

	// WalletLinksTotal tracks wallet cards linked to account groups
	WalletLinksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "wallet",
			Name:      "links_total",
			Help:      "Total number of wallet cards linked to account groups",
		},
	)

	// MessagesConsumed tracks snapshot messages by outcome
	MessagesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "kafka",
			Name:      "messages_consumed_total",
			Help:      "Total number of snapshot messages consumed by outcome",
		},
		[]string{"outcome"},
	)

	// EventsPublished tracks reconciliation events by type
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "kafka",
			Name:      "events_published_total",
			Help:      "Total number of reconciliation events published",
		},
		[]string{"event_type"},
	)

	// HTTPRequestsTotal tracks inbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fern",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks inbound HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fern",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)
