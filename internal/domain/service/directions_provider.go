package service

import (
	"context"

	"fleetroute/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DirectionsRequest asks for road geometry through ordered waypoints.
type DirectionsRequest struct {
	Waypoints []entity.Coordinate
	Avoid     *geojson.Geometry // Optional MultiPolygon the route must avoid
}

// DirectionsResult is the road geometry of a route.
type DirectionsResult struct {
	Coordinates orb.LineString
	Distance    float64 // meters
	Duration    float64 // seconds
}

// DirectionsProvider fetches turn-by-turn geometry.
type DirectionsProvider interface {
	Directions(ctx context.Context, request *DirectionsRequest) (*DirectionsResult, error)
}
