// Package metrics defines the custom Prometheus metrics of the Tech Horizon API.
// Request-level metrics (latency, status codes) come from the echoprometheus
// middleware; the counters here track marketplace activity.
//
// All metrics are registered with the default registry on package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "techhorizon"

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingsCreatedTotal counts product submissions.
// Label:
//   - status: initial status of the listing ("Pending", "Accepted", "Rejected")
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of product listings submitted, by initial status.",
	},
	[]string{"status"},
)

// ModerationActionsTotal counts moderation writes that matched a listing.
// Label:
//   - action: "accept", "reject", "report" or "feature"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of moderation actions applied to listings.",
	},
	[]string{"action"},
)

// UpvotesTotal counts accepted upvotes.
// Label:
//   - target: "listing" or "spotlight"
var UpvotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upvotes_total",
		Help:      "Total number of upvotes recorded.",
	},
	[]string{"target"},
)

// UpvotesRejectedTotal counts upvotes refused by the store.
// Labels:
//   - target: "listing" or "spotlight"
//   - reason: "already_upvoted" or "not_found"
var UpvotesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upvotes_rejected_total",
		Help:      "Total number of upvotes rejected, by reason.",
	},
	[]string{"target", "reason"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts signed access tokens.
// Label:
//   - policy: the active token issue policy
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
	[]string{"policy"},
)

// RateLimitedTotal counts requests refused by the rate limiter.
// Label:
//   - route: the matched route path
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429.",
	},
	[]string{"route"},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentIntentsTotal counts payment intent attempts.
// Label:
//   - result: "created", "invalid_price", "unavailable" or "failed"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent requests, by result.",
	},
	[]string{"result"},
)
