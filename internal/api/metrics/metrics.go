// Package metrics defines and registers all custom Prometheus metrics for the
// authentication service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts that reached the store.
// Label:
//   - result: "created" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures how long a single password hash takes. The
// KDF is intentionally slow; this histogram makes the chosen cost visible.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing during registration.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Gate metrics ──────────────────────────────────────────────────────────────

// TokenVerificationsTotal counts authentication gate decisions.
// Label:
//   - result: "ok", "missing_header", "malformed_header", "invalid_token", "unknown_subject"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token checks at the authentication gate, by result.",
	},
	[]string{"result"},
)

// AuthzDecisionsTotal counts authorization gate decisions.
// Labels:
//   - result: "allow" or "deny"
//   - role:   the authenticated identity's role ("" when absent)
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of role checks at the authorization gate, by result and role.",
	},
	[]string{"result", "role"},
)
