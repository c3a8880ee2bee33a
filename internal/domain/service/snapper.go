package service

import (
	"context"

	"fleetroute/internal/domain/entity"
)

// Snapper moves coordinates onto the road network.
type Snapper interface {
	// Snap returns one coordinate per input, in input order. Points the
	// service could not snap are returned unchanged.
	Snap(ctx context.Context, coordinates []entity.Coordinate) ([]entity.Coordinate, error)
}
