// Package metrics holds the Prometheus collectors of the payment service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "builderhub"

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests counts served requests by route and status class.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

// HTTPLatency tracks request latency in seconds.
var HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// ─── Gateway ────────────────────────────────────────────────────────────────

// GatewayCalls counts provider dispatches by outcome.
var GatewayCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "gateway",
	Name:      "calls_total",
	Help:      "Provider dispatches by provider and outcome (success, failure, rejected, unconfigured).",
}, []string{"provider", "outcome"})

// GatewayLatency tracks provider HTTP round-trip time.
var GatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "gateway",
	Name:      "latency_seconds",
	Help:      "Provider HTTP round-trip latency.",
	Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
}, []string{"provider"})

// ─── Wallet ─────────────────────────────────────────────────────────────────

// WalletOperations counts ledger operations by type and result.
var WalletOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "wallet",
	Name:      "operations_total",
	Help:      "Wallet ledger operations by type (recharge, debit, refund) and result.",
}, []string{"type", "result"})

// WalletAmount sums amounts moved through the ledger.
var WalletAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "wallet",
	Name:      "amount_total",
	Help:      "Total XOF moved through the wallet ledger by type.",
}, []string{"type"})

// ─── Payments ───────────────────────────────────────────────────────────────

// PaymentTransitions counts contract payment status transitions.
var PaymentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "payments",
	Name:      "transitions_total",
	Help:      "Contract payment status transitions by target status.",
}, []string{"status"})

// EscrowDeposits sums funds credited to escrow accounts.
var EscrowDeposits = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "escrow",
	Name:      "deposited_total",
	Help:      "Total XOF deposited into escrow accounts.",
})

// ObserveGateway records one provider call.
func ObserveGateway(provider, outcome string, started time.Time) {
	GatewayCalls.WithLabelValues(provider, outcome).Inc()
	if !started.IsZero() {
		GatewayLatency.WithLabelValues(provider).Observe(time.Since(started).Seconds())
	}
}

// ObserveWallet records one ledger operation.
func ObserveWallet(opType, result string, amount int64) {
	WalletOperations.WithLabelValues(opType, result).Inc()
	if result == "ok" && amount > 0 {
		WalletAmount.WithLabelValues(opType).Add(float64(amount))
	}
}
