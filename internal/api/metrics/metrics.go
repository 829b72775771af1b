// Package metrics defines and registers all custom Prometheus metrics for the
// client-admin API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at init time
// and are served by the echoprometheus handler on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "client_admin"

// AssignmentsTotal counts assignment mutations that completed successfully.
// Label:
//   - target: "user" (assigned to a user) or "none" (unassigned)
var AssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_total",
		Help:      "Total number of client assignment changes, by target kind.",
	},
	[]string{"target"},
)

// ClientsCreatedTotal counts newly created client records.
// Label:
//   - status: initial status ("prospect", "active", "inactive", "on_hold")
var ClientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created, by initial status.",
	},
	[]string{"status"},
)

// ReconcileTotal counts reconcile passes over client assignments.
// Label:
//   - result: "clean", "repaired", "skipped" (dedup hit), or "error"
var ReconcileTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_total",
		Help:      "Total number of assignment reconcile passes, by result.",
	},
	[]string{"result"},
)

// ReconcileRepairsTotal counts stale assignment-set memberships released by
// reconcile passes. A non-zero rate means torn dual-writes are occurring.
var ReconcileRepairsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_repairs_total",
		Help:      "Total number of stale assignment memberships released.",
	},
)

// LoginsTotal counts sign-in attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
