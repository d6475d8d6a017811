// Package metrics defines the portal's custom Prometheus metrics. It is the
// single source of truth for metric names, labels, and help strings; metrics
// register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// RecordsCreatedTotal counts submitted records.
// Label:
//   - category: "forest", "industry", or "commerce"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records submitted, by category.",
	},
	[]string{"category"},
)

// ReviewDecisionsTotal counts completed review transitions.
// Labels:
//   - category: the record category
//   - status: "Approved" or "Rejected"
var ReviewDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_decisions_total",
		Help:      "Total number of review decisions applied, by category and outcome.",
	},
	[]string{"category", "status"},
)

// AuthzDeniedTotal counts navigation requests denied by the role gate.
// Label:
//   - destination: the gated destination that was refused
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of navigation requests denied by role, by destination.",
	},
	[]string{"destination"},
)

// LoginsTotal counts successful logins.
// Label:
//   - role: the role of the user who logged in
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)
