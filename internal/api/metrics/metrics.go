// Package metrics defines the custom Prometheus metrics for the vehicles
// API. It is the single source of truth for metric names, labels, and help
// strings; request-level HTTP metrics come from the echoprometheus
// middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vehicles_api"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RecordsCreatedTotal counts records persisted through the services.
// Label:
//   - resource: "administrator" or "vehicle"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of records created, by resource kind.",
	},
	[]string{"resource"},
)

// LoginAuditQueueDepth tracks the number of login events waiting in each
// audit dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var LoginAuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "login_audit_queue_depth",
		Help:      "Current number of login events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)
