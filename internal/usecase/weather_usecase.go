package usecase

import (
	"context"
	"time"

	"fleetroute/internal/domain/entity"

	"github.com/paulmach/orb"
)

// OverviewInput selects the sampling mode of a vehicle-independent overview
type OverviewInput struct {
	Mode   string    // constants.OverviewModeGrid or constants.OverviewModeReference
	Bounds orb.Bound // Required for grid mode
}

// WeatherUsecase defines weather risk analysis
type WeatherUsecase interface {
	// AnalyzeRoutes assesses forecast hazards along every successful route.
	// Unavailable weather data yields no alerts; it never fails.
	AnalyzeRoutes(ctx context.Context, routes []entity.VehicleRoute, departure time.Time) []entity.RouteWeather

	// Overview samples current conditions without any routes
	Overview(ctx context.Context, input *OverviewInput) ([]entity.WeatherPoint, error)
}
