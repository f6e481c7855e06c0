// Package metrics provides Prometheus instrumentation for the licensing
// subsystem.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "licensing",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path pattern, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	// LicenseAssignmentsTotal counts assignment operations by outcome.
	LicenseAssignmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "licensing",
			Name:      "license_assignments_total",
			Help:      "Total license assignment attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// InvitationsTotal counts invitation lifecycle events.
	InvitationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "licensing",
			Name:      "invitations_total",
			Help:      "Total invitation lifecycle events by type.",
		},
		[]string{"event"},
	)

	// EntitlementGrantsTotal counts entitlement grants and revocations.
	EntitlementGrantsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "licensing",
			Name:      "entitlement_grants_total",
			Help:      "Total entitlement grant and revoke operations.",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		LicenseAssignmentsTotal,
		InvitationsTotal,
		EntitlementGrantsTotal,
	)
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
