package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/trinomial/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors fed by engine hooks.
type Metrics struct {
	registry       *prometheus.Registry
	factorizations *prometheus.CounterVec
	duration       prometheus.Histogram
	cacheHits      prometheus.Counter
}

// NewMetrics creates collectors on a private registry, alongside the Go and
// process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		factorizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trinomial_factorizations_total",
				Help: "Total number of factorization requests by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trinomial_factor_duration_seconds",
				Help:    "Duration of factorization requests",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "trinomial_cache_hits_total",
				Help: "Total number of results served from the cache",
			},
		),
	}
	reg.MustRegister(
		m.factorizations,
		m.duration,
		m.cacheHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one factorization event.
func (m *Metrics) Observe(e *domain.FactorEvent) {
	m.factorizations.WithLabelValues(string(e.Outcome)).Inc()
	m.duration.Observe(e.Duration.Seconds())
	if e.Cached {
		m.cacheHits.Inc()
	}
}

// Hooks returns lifecycle hooks that record into m.
// next, when non-nil, is called after recording so hooks can be chained.
func (m *Metrics) Hooks(next *domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFactor: func(ctx context.Context, e *domain.FactorEvent) {
			m.Observe(e)
			if next != nil && next.OnFactor != nil {
				next.OnFactor(ctx, e)
			}
		},
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
