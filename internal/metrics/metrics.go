// Package metrics exposes the core's Prometheus counters on a private registry.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "matchcore"

type Metrics struct {
	registry *prometheus.Registry

	Swipes                *prometheus.CounterVec
	MatchesCreated        prometheus.Counter
	MatchConflicts        prometheus.Counter
	RateLimitedTotal      *prometheus.CounterVec
	FingerprintRejections *prometheus.CounterVec
	Suspensions           prometheus.Counter
	Reports               *prometheus.CounterVec
	RPCErrors             *prometheus.CounterVec
}

// New registers every collector on a fresh registry, plus the Go and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Swipes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "swipes_total",
			Help: "Recorded swipe decisions by direction.",
		}, []string{"direction"}),
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "matches_created_total",
			Help: "Matches created by a reciprocal like.",
		}),
		MatchConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "match_conflicts_total",
			Help: "Match inserts that found the pair already matched.",
		}),
		RateLimitedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "rate_limited_total",
			Help: "Requests rejected by a rate window, by abuse class.",
		}, []string{"class"}),
		FingerprintRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "fingerprint_rejections_total",
			Help: "Uploads rejected by the content fingerprint gate, by reason.",
		}, []string{"reason"}),
		Suspensions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "suspensions_total",
			Help: "Accounts suspended by report escalation.",
		}),
		Reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "reports_total",
			Help: "Accepted reports by reason.",
		}, []string{"reason"}),
		RPCErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "rpc_errors_total",
			Help: "Failed RPCs by method and status code.",
		}, []string{"method", "code"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Swipes, m.MatchesCreated, m.MatchConflicts, m.RateLimitedTotal,
		m.FingerprintRejections, m.Suspensions, m.Reports, m.RPCErrors,
	)
	return m
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Swipe(direction string) {
	if m == nil {
		return
	}
	m.Swipes.WithLabelValues(direction).Inc()
}

func (m *Metrics) MatchCreated() {
	if m == nil {
		return
	}
	m.MatchesCreated.Inc()
}

func (m *Metrics) MatchConflict() {
	if m == nil {
		return
	}
	m.MatchConflicts.Inc()
}

func (m *Metrics) RateLimited(class string) {
	if m == nil {
		return
	}
	m.RateLimitedTotal.WithLabelValues(class).Inc()
}

func (m *Metrics) FingerprintRejected(reason string) {
	if m == nil {
		return
	}
	m.FingerprintRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) Suspended() {
	if m == nil {
		return
	}
	m.Suspensions.Inc()
}

func (m *Metrics) Reported(reason string) {
	if m == nil {
		return
	}
	m.Reports.WithLabelValues(reason).Inc()
}

func (m *Metrics) RPCError(method, code string) {
	if m == nil {
		return
	}
	m.RPCErrors.WithLabelValues(method, code).Inc()
}
