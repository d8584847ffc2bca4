// Package metrics defines and registers the custom Prometheus metrics for the
// iLibrary admin portal. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ilibrary"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure". The failure kind is deliberately not a
//     label; the distinction stays in logs.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// SessionsIssuedTotal counts issued session artifacts.
// Label:
//   - role: the role embedded at issuance ("user", "author", "admin")
var SessionsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of session artifacts issued, by role.",
	},
	[]string{"role"},
)

// GateDecisionsTotal counts route-gate outcomes.
// Label:
//   - decision: "allow" or "redirect". No-session and wrong-role both count
//     as "redirect"; the gate does not distinguish them anywhere.
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of route-gate decisions, by outcome.",
	},
	[]string{"decision"},
)
