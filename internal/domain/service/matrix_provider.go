package service

import (
	"context"

	"fleetroute/internal/domain/entity"
)

// RawMatrix holds the distance (meters) and duration (seconds) matrices
// returned by the matrix service, indexed like the request locations.
// A nil cell means the service found no route between the pair.
type RawMatrix struct {
	Distances [][]*float64
	Durations [][]*float64
}

// Size returns the number of rows of the matrix.
func (m *RawMatrix) Size() int {
	return len(m.Distances)
}

// MatrixProvider fetches pairwise distances and durations.
type MatrixProvider interface {
	Matrix(ctx context.Context, locations []entity.Coordinate) (*RawMatrix, error)
}
