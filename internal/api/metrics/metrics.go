// Package metrics defines and registers all custom Prometheus metrics for the
// storefront customer system. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Registration metrics ──────────────────────────────────────────────────────

// CustomersRegisteredTotal counts successfully created customer accounts.
// Label:
//   - store: the store scope the account was registered under
var CustomersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customers_registered_total",
		Help:      "Total number of customer accounts created, by store scope.",
	},
	[]string{"store"},
)

// RegistrationErrorsTotal counts failed registrations.
// Label:
//   - reason: "input", "store", or "internal"
var RegistrationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_errors_total",
		Help:      "Total number of failed registration attempts, by failure reason.",
	},
	[]string{"reason"},
)

// RegistrationDuration measures how long a registration takes end-to-end.
// Label:
//   - outcome: "success" or "error"
var RegistrationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "registration_duration_seconds",
		Help:      "Duration of the create-account operation, from payload gate to read-back.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Newsletter metrics ────────────────────────────────────────────────────────

// NewsletterSubscriptionsTotal counts newsletter status changes.
// Label:
//   - status: "subscribed" or "unsubscribed"
var NewsletterSubscriptionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "newsletter_subscriptions_total",
		Help:      "Total number of newsletter status changes, by resulting status.",
	},
	[]string{"status"},
)

// ── Store scope metrics ───────────────────────────────────────────────────────

// StoreCacheTotal counts store-scope cache lookups.
// Label:
//   - result: "hit" or "miss"
var StoreCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_cache_total",
		Help:      "Total number of store cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Welcome notification metrics ──────────────────────────────────────────────

// WelcomeNotificationsTotal counts processed welcome notifications.
// Label:
//   - status: "queued" (recorded in the outbox) or "error"
var WelcomeNotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "welcome_notifications_total",
		Help:      "Total number of welcome notifications processed, by outcome.",
	},
	[]string{"status"},
)

// WelcomeQueueDepth tracks the number of notifications waiting per worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var WelcomeQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "welcome_queue_depth",
		Help:      "Current number of welcome notifications pending in each worker channel.",
	},
	[]string{"worker_id"},
)
