// Package metrics defines the Prometheus collectors for the survey service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsTotal tracks survey submissions by kind (response/leader) and outcome
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_submissions_total",
			Help: "Total survey submissions by kind and status",
		},
		[]string{"kind", "status"},
	)

	// ReportsTotal tracks generated reports by report name
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_reports_generated_total",
			Help: "Total reports generated by report name",
		},
		[]string{"report"},
	)

	// StoreFallbacksTotal counts read failures that degraded to an empty collection
	StoreFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_store_fallbacks_total",
			Help: "Total store read failures degraded to empty collections",
		},
		[]string{"store"},
	)
)
