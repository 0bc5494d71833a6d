// Package metrics holds the Prometheus collectors for code issuance and
// resolution.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Issue failure reasons.
const (
	ReasonValidation = "validation"
	ReasonCapacity   = "capacity"
	ReasonStore      = "store"
)

// Resolve results.
const (
	ResultHit      = "hit"
	ResultCacheHit = "cache_hit"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	Issued          prometheus.Counter
	IssueFailures   *prometheus.CounterVec
	CodeCollisions  prometheus.Counter
	Resolves        *prometheus.CounterVec
	ExpiredDeleted  prometheus.Counter
	CleanupFailures prometheus.Counter
}

// New creates the collectors and registers them in a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Issued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gophclip_issued_total",
			Help: "Codes issued successfully.",
		}),
		IssueFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gophclip_issue_failures_total",
			Help: "Failed issue requests by reason.",
		}, []string{"reason"}),
		CodeCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gophclip_code_collisions_total",
			Help: "Candidate codes rejected because a live entry held them.",
		}),
		Resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gophclip_resolves_total",
			Help: "Resolve requests by result.",
		}, []string{"result"}),
		ExpiredDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gophclip_expired_deleted_total",
			Help: "Expired entries removed by cleanup.",
		}),
		CleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gophclip_cleanup_failures_total",
			Help: "Cleanup runs that failed.",
		}),
	}

	m.registry.MustRegister(
		m.Issued,
		m.IssueFailures,
		m.CodeCollisions,
		m.Resolves,
		m.ExpiredDeleted,
		m.CleanupFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
