package usecase

import (
	"context"
	"time"

	"fleetroute/internal/domain/entity"
)

// OptimizeInput is the snapshot of fleet state for one optimize call.
type OptimizeInput struct {
	Vehicles []entity.Vehicle
	Jobs     []entity.Job
	Zones    []entity.Zone

	// DepartureTime anchors weather ETAs; zero means now
	DepartureTime time.Time

	// IncludeWeather enables the weather risk stage
	IncludeWeather bool
}

// OptimizeUsecase defines the route optimization use case
type OptimizeUsecase interface {
	// Optimize assigns jobs to vehicles under zone restrictions and materializes
	// the resulting routes. It fails only when no cost matrix can be built.
	Optimize(ctx context.Context, input *OptimizeInput) (*entity.RouteData, error)
}
