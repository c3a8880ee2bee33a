package upstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fleetroute/config"
	"fleetroute/internal/domain/constants"
	"fleetroute/internal/domain/entity"
	domainerrors "fleetroute/internal/domain/errors"
	"fleetroute/internal/domain/service"
)

const (
	weatherCurrentPath  = "/weather"
	weatherForecastPath = "/forecast"
	weatherAPIKeyParam  = "appid"

	// defaultVisibility is used when a report omits visibility (clear air)
	defaultVisibility = 10000.0
)

type weatherEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Rain       map[string]float64 `json:"rain"` // "1h" / "3h" accumulations in mm
	Snow       map[string]float64 `json:"snow"`
	Visibility *float64           `json:"visibility"`
}

func (e weatherEntry) conditions() entity.WeatherConditions {
	visibility := defaultVisibility
	if e.Visibility != nil {
		visibility = *e.Visibility
	}

	return entity.WeatherConditions{
		Timestamp:  time.Unix(e.Dt, 0).UTC(),
		Temp:       e.Main.Temp,
		Rain:       maxAccumulation(e.Rain),
		Snow:       maxAccumulation(e.Snow),
		WindSpeed:  e.Wind.Speed,
		WindDeg:    e.Wind.Deg,
		Visibility: visibility,
	}
}

func maxAccumulation(amounts map[string]float64) float64 {
	var largest float64
	for _, amount := range amounts {
		largest = max(largest, amount)
	}

	return largest
}

type forecastResponse struct {
	List []weatherEntry `json:"list"`
}

// weatherClient implements service.WeatherProvider
type weatherClient struct {
	client *RedundantClient
}

// NewWeatherClient creates the weather client; the API key travels as the
// appid query parameter.
func NewWeatherClient(cfg *config.Config, logger *slog.Logger) service.WeatherProvider {
	return &weatherClient{
		client: NewRedundantClient(constants.UpstreamWeather, cfg.Upstream.Weather, logger, WithAPIKeyQuery(weatherAPIKeyParam)),
	}
}

func locationQuery(location entity.Coordinate) url.Values {
	return url.Values{
		"lat":   {strconv.FormatFloat(location.Lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(location.Lon, 'f', -1, 64)},
		"units": {"metric"},
	}
}

// Current returns the conditions observed now at location.
func (c *weatherClient) Current(ctx context.Context, location entity.Coordinate) (*entity.WeatherConditions, error) {
	var resp weatherEntry
	req := &Request{Method: http.MethodGet, Path: weatherCurrentPath, Query: locationQuery(location)}
	if err := c.client.Do(ctx, req, &resp); err != nil {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), err)
	}

	conditions := resp.conditions()

	return &conditions, nil
}

// Forecast returns the timestamped forecast entries for location.
func (c *weatherClient) Forecast(ctx context.Context, location entity.Coordinate) ([]entity.WeatherConditions, error) {
	var resp forecastResponse
	req := &Request{Method: http.MethodGet, Path: weatherForecastPath, Query: locationQuery(location)}
	if err := c.client.Do(ctx, req, &resp); err != nil {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), err)
	}

	entries := make([]entity.WeatherConditions, 0, len(resp.List))
	for _, entry := range resp.List {
		entries = append(entries, entry.conditions())
	}

	return entries, nil
}
