// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream tiers and outcomes used as label values
const (
	TierPrimary = "primary"
	TierMirror  = "mirror"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// UpstreamRequests counts external calls by service, tier and outcome
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fleetroute_upstream_requests_total", Help: "External service requests by service, tier and outcome."},
		[]string{"service", "tier", "outcome"},
	)
	// UpstreamDuration records external call latency in seconds
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "fleetroute_upstream_request_duration_seconds", Help: "External service request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"service", "tier"},
	)
	// SolverFallbacks counts optimize calls served by the round-robin fallback
	SolverFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fleetroute_solver_fallbacks_total", Help: "Optimize calls that used the round-robin fallback."},
	)
	// ZoneViolations counts vehicles whose solved assignment entered a forbidden zone
	ZoneViolations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fleetroute_zone_violations_total", Help: "Vehicles flagged by post-solve zone validation."},
	)
	// ForecastCacheLookups counts forecast cache hits and misses
	ForecastCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fleetroute_forecast_cache_lookups_total", Help: "Forecast cache lookups by result."},
		[]string{"result"},
	)
	// OptimizeDuration records the end-to-end optimize latency in seconds
	OptimizeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "fleetroute_optimize_duration_seconds", Help: "Optimize pipeline duration in seconds.", Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60}},
		[]string{"status"},
	)
)

var regOnce sync.Once

// RegisterDefault registers every collector on Registry exactly once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(UpstreamRequests)
		Registry.MustRegister(UpstreamDuration)
		Registry.MustRegister(SolverFallbacks)
		Registry.MustRegister(ZoneViolations)
		Registry.MustRegister(ForecastCacheLookups)
		Registry.MustRegister(OptimizeDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	RegisterDefault()

	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
