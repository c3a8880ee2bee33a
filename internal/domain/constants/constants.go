// Package constants defines identifiers shared between configuration and infrastructure.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Forecast cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Upstream service names, used in logs, metrics and errors
const (
	UpstreamSnap       = "snap"
	UpstreamMatrix     = "matrix"
	UpstreamSolver     = "solver"
	UpstreamDirections = "directions"
	UpstreamWeather    = "weather"
)

// Weather overview modes
const (
	OverviewModeGrid      = "grid"
	OverviewModeReference = "reference"
)
