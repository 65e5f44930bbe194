package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricDocumentUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_updates_total",
			Help: "Number of document update requests, by outcome",
		},
		[]string{"outcome"},
	)

	MetricDocumentAuditLogsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_audit_logs_created_total",
			Help: "Number of document audit logs written, by type",
		},
		[]string{"type"},
	)

	MetricDocumentUpdateLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_update_duration_seconds",
			Help:    "Duration of committed document updates",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)
)

const (
	DocumentUpdateOutcomeUpdated   = "updated"
	DocumentUpdateOutcomeUnchanged = "unchanged"
	DocumentUpdateOutcomeRejected  = "rejected"
)
