package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Matrix.Timeout)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Weather.Timeout)

	require.NotNil(t, cfg.Optimizer)
	assert.Equal(t, defaultCostPerMeter, cfg.Optimizer.CostPerMeter)
	assert.Equal(t, defaultCostPerSecond, cfg.Optimizer.CostPerSecond)
	assert.Equal(t, defaultServiceSeconds, cfg.Optimizer.ServiceSeconds)
	assert.Equal(t, 1, cfg.Optimizer.DefaultDelivery)

	require.NotNil(t, cfg.Weather)
	assert.Equal(t, defaultForecastCacheTTL, cfg.Weather.CacheTTL)
	assert.Equal(t, "memory", cfg.Weather.CacheBackend)
	assert.Equal(t, defaultCoordinatePrecision, cfg.Weather.CoordinatePrecision)
	assert.Equal(t, defaultGridSize, cfg.Weather.GridRows)
	assert.Equal(t, defaultGridSize, cfg.Weather.GridCols)
	assert.Equal(t, defaultReferencePoints, cfg.Weather.ReferencePoints)

	cfg.Weather.ReferencePoints[0].Name = "changed"
	assert.Equal(t, "Berlin", defaultReferencePoints[0].Name, "defaults are copied, not shared")
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Optimizer: &OptimizerConfig{CostPerMeter: 0, CostPerSecond: 2, ServiceSeconds: 60},
		Weather:   &WeatherConfig{CacheTTL: time.Minute, CacheBackend: "redis"},
	}
	cfg.Upstream.Solver.Timeout = 3 * time.Second
	cfg.applyDefaults()

	assert.Equal(t, 0.0, cfg.Optimizer.CostPerMeter)
	assert.Equal(t, 2.0, cfg.Optimizer.CostPerSecond)
	assert.Equal(t, 60, cfg.Optimizer.ServiceSeconds)
	assert.Equal(t, time.Minute, cfg.Weather.CacheTTL)
	assert.Equal(t, "redis", cfg.Weather.CacheBackend)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Solver.Timeout)
}

func TestApplyDefaults_KeepsConfiguredReferencePoints(t *testing.T) {
	cfg := &Config{Weather: &WeatherConfig{ReferencePoints: []ReferencePoint{{Name: "Vienna", Lat: 48.208, Lon: 16.373}}}}
	cfg.applyDefaults()

	require.Len(t, cfg.Weather.ReferencePoints, 1)
	assert.Equal(t, "Vienna", cfg.Weather.ReferencePoints[0].Name)
}

func TestNewFromDir_LoadsYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  serviceName: fleetroute-test
upstream:
  matrix:
    primaryUrl: http://matrix.local/v2/matrix
    mirrorUrl: https://matrix.example.org/v2/matrix
    timeout: 2s
optimizer:
  costPerMeter: 0.5
  costPerSecond: 1.5
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := NewFromDir(rel)
	require.NoError(t, err)

	assert.Equal(t, "fleetroute-test", cfg.Env.ServiceName)
	assert.Equal(t, "http://matrix.local/v2/matrix", cfg.Upstream.Matrix.PrimaryURL)
	assert.Equal(t, "https://matrix.example.org/v2/matrix", cfg.Upstream.Matrix.MirrorURL)
	assert.Equal(t, 2*time.Second, cfg.Upstream.Matrix.Timeout)
	assert.Equal(t, 0.5, cfg.Optimizer.CostPerMeter)
	assert.Equal(t, 1.5, cfg.Optimizer.CostPerSecond)
	assert.Equal(t, defaultUpstreamTimeout, cfg.Upstream.Directions.Timeout)
}
