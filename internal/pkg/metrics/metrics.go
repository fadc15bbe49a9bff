// Package metrics defines and registers all custom Prometheus metrics for the
// recruiting API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time;
// the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruiting"

// ApplicationsCreatedTotal counts successfully submitted applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of job applications created.",
	},
)

// AIRequestsTotal counts calls to the generative service.
// Labels:
//   - kind: "job_ad" or "resume"
//   - outcome: parse stage ("direct", "fenced", "defaulted") or "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of generative service calls, by kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// DocumentsRenderedTotal counts exported documents.
// Label:
//   - format: "pdf" or "xml"
var DocumentsRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_rendered_total",
		Help:      "Total number of exported candidate profiles and job feeds.",
	},
	[]string{"format"},
)
