package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
	defaultHTTPPort           = 8080

	defaultUpstreamTimeout = 10 * time.Second

	defaultCostPerMeter   = 1.0
	defaultCostPerSecond  = 1.0
	defaultServiceSeconds = 300

	defaultForecastCacheTTL    = 10 * time.Minute
	defaultCoordinatePrecision = 2
	defaultGridSize            = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Upstream endpoints of the external collaborators
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream"`

	// Optimizer cost weights and defaults
	Optimizer *OptimizerConfig `json:"optimizer" yaml:"optimizer"`

	// Weather risk analysis configuration
	Weather *WeatherConfig `json:"weather" yaml:"weather"`

	// Redis connection, used when the forecast cache backend is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for plan event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// UpstreamConfig groups the endpoint settings of every external service
type UpstreamConfig struct {
	Snap       EndpointConfig `json:"snap" yaml:"snap"`
	Matrix     EndpointConfig `json:"matrix" yaml:"matrix"`
	Solver     EndpointConfig `json:"solver" yaml:"solver"`
	Directions EndpointConfig `json:"directions" yaml:"directions"`
	Weather    EndpointConfig `json:"weather" yaml:"weather"`
}

// EndpointConfig defines a primary endpoint and its public mirror
type EndpointConfig struct {
	// Primary (usually self-hosted) endpoint URL, called with Timeout
	PrimaryURL string `json:"primaryUrl" yaml:"primaryUrl"`

	// Public mirror URL, called without a client timeout when the primary fails
	MirrorURL string `json:"mirrorUrl" yaml:"mirrorUrl"`

	// API key sent to the mirror (Authorization header, or appid query for weather)
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Timeout of the primary request
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Requests per second allowed against this upstream (0 disables limiting)
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`

	// Burst size for the rate limiter
	Burst int `json:"burst" yaml:"burst"`
}

// OptimizerConfig defines cost weights and job/vehicle defaults
type OptimizerConfig struct {
	CostPerMeter    float64 `json:"costPerMeter" yaml:"costPerMeter"`
	CostPerSecond   float64 `json:"costPerSecond" yaml:"costPerSecond"`
	ServiceSeconds  int     `json:"serviceSeconds" yaml:"serviceSeconds"`
	DefaultDelivery int     `json:"defaultDelivery" yaml:"defaultDelivery"`

	// Vehicle capacity when the input leaves it unset; 0 means total job demand
	DefaultCapacity int `json:"defaultCapacity" yaml:"defaultCapacity"`
}

// WeatherConfig defines weather risk analysis settings
type WeatherConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// How long a forecast stays cached per rounded coordinate
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// Cache backend: "memory" (default) or "redis"
	CacheBackend string `json:"cacheBackend" yaml:"cacheBackend"`

	// Decimal places kept when rounding coordinates into cache keys
	CoordinatePrecision int `json:"coordinatePrecision" yaml:"coordinatePrecision"`

	// Grid density for the bounding-box overview mode
	GridRows int `json:"gridRows" yaml:"gridRows"`
	GridCols int `json:"gridCols" yaml:"gridCols"`

	// Fixed reference points for the reference overview mode
	ReferencePoints []ReferencePoint `json:"referencePoints" yaml:"referencePoints"`
}

// ReferencePoint is a named location sampled by the weather overview
type ReferencePoint struct {
	Name string  `json:"name" yaml:"name"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lon  float64 `json:"lon" yaml:"lon"`
}

// defaultReferencePoints spans the national network when no points are configured
var defaultReferencePoints = []ReferencePoint{
	{Name: "Berlin", Lat: 52.52, Lon: 13.405},
	{Name: "Hamburg", Lat: 53.551, Lon: 9.993},
	{Name: "Munich", Lat: 48.137, Lon: 11.575},
	{Name: "Cologne", Lat: 50.938, Lon: 6.96},
	{Name: "Frankfurt", Lat: 50.11, Lon: 8.682},
	{Name: "Stuttgart", Lat: 48.776, Lon: 9.183},
	{Name: "Leipzig", Lat: 51.34, Lon: 12.375},
	{Name: "Hanover", Lat: 52.375, Lon: 9.732},
	{Name: "Nuremberg", Lat: 49.452, Lon: 11.077},
}

// DefaultReferencePoints returns a copy of the built-in overview locations.
func DefaultReferencePoints() []ReferencePoint {
	return slices.Clone(defaultReferencePoints)
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	URL string `json:"url" yaml:"url"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if !filepath.IsAbs(path) {
				path = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, path)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: UPSTREAM_MATRIX_PRIMARYURL -> upstream.matrix.primaryUrl
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

// NewFromDir loads <dir>/config.yaml, dir being absolute or relative to the
// working directory, and applies the same defaults as New.
func NewFromDir(dir string) (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", dir)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}

	for _, endpoint := range []*EndpointConfig{
		&c.Upstream.Snap,
		&c.Upstream.Matrix,
		&c.Upstream.Solver,
		&c.Upstream.Directions,
		&c.Upstream.Weather,
	} {
		if endpoint.Timeout <= 0 {
			endpoint.Timeout = defaultUpstreamTimeout
		}
	}

	if c.Optimizer == nil {
		c.Optimizer = &OptimizerConfig{}
	}
	c.Optimizer.applyDefaults()

	if c.Weather == nil {
		c.Weather = &WeatherConfig{}
	}
	c.Weather.applyDefaults()
}

func (o *OptimizerConfig) applyDefaults() {
	if o.CostPerMeter <= 0 && o.CostPerSecond <= 0 {
		o.CostPerMeter = defaultCostPerMeter
		o.CostPerSecond = defaultCostPerSecond
	}
	if o.ServiceSeconds <= 0 {
		o.ServiceSeconds = defaultServiceSeconds
	}
	if o.DefaultDelivery <= 0 {
		o.DefaultDelivery = 1
	}
}

func (w *WeatherConfig) applyDefaults() {
	if w.CacheTTL <= 0 {
		w.CacheTTL = defaultForecastCacheTTL
	}
	if w.CacheBackend == "" {
		w.CacheBackend = "memory"
	}
	if w.CoordinatePrecision <= 0 {
		w.CoordinatePrecision = defaultCoordinatePrecision
	}
	if w.GridRows <= 0 {
		w.GridRows = defaultGridSize
	}
	if w.GridCols <= 0 {
		w.GridCols = defaultGridSize
	}
	if len(w.ReferencePoints) == 0 {
		w.ReferencePoints = DefaultReferencePoints()
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
