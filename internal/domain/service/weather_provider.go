package service

import (
	"context"

	"fleetroute/internal/domain/entity"
)

// WeatherProvider fetches observed and forecast conditions for a location.
type WeatherProvider interface {
	// Current returns the conditions observed now.
	Current(ctx context.Context, location entity.Coordinate) (*entity.WeatherConditions, error)

	// Forecast returns timestamped forecast entries, in any order.
	Forecast(ctx context.Context, location entity.Coordinate) ([]entity.WeatherConditions, error)
}

// ForecastCache stores forecast entries by rounded-coordinate key.
// Implementations are shared across optimize calls and must be safe for
// concurrent use; last writer wins.
type ForecastCache interface {
	Get(ctx context.Context, key string) ([]entity.WeatherConditions, bool)
	Set(ctx context.Context, key string, entries []entity.WeatherConditions)
}
