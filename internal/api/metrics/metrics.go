// Package metrics defines and registers all custom Prometheus metrics for the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Authentication ──────────────────────────────────────────────────────────

// AuthAttemptsTotal counts token-issuing attempts.
// Labels:
//   - method: "signup", "password" or "api_key"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of signup, login and API-key authentication attempts.",
	},
	[]string{"method", "result"},
)

// TokenRejectionsTotal counts requests stopped by the domain-binding guard.
// Label:
//   - reason: "missing", "invalid" or "domain"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of protected requests rejected by token verification.",
	},
	[]string{"reason"},
)

// ── Credentials ─────────────────────────────────────────────────────────────

// KeyRotationsTotal counts explicit credential regenerations.
// Label:
//   - kind: "key_pair" or "api_key"
var KeyRotationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "key_rotations_total",
		Help:      "Total number of key pair and API key regenerations.",
	},
	[]string{"kind"},
)

// ── CORS ────────────────────────────────────────────────────────────────────

// CORSDecisionsTotal counts allow-list decisions for cross-origin requests.
// Label:
//   - result: "allowed", "denied" or "error"
var CORSDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cors_decisions_total",
		Help:      "Total number of cross-origin allow-list decisions.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - route: the matched route path
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
	[]string{"route"},
)
