package upstream

import (
	"context"
	"log/slog"
	"net/http"

	"fleetroute/config"
	"fleetroute/internal/domain/constants"
	"fleetroute/internal/domain/entity"
	domainerrors "fleetroute/internal/domain/errors"
	"fleetroute/internal/domain/service"

	"github.com/pkg/errors"
)

// matrixRequest carries [lon, lat] pairs
type matrixRequest struct {
	Locations [][2]float64 `json:"locations"`
	Metrics   []string     `json:"metrics"`
	Units     string       `json:"units"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// matrixClient implements service.MatrixProvider
type matrixClient struct {
	client *RedundantClient
}

// NewMatrixClient creates the distance/duration matrix client
func NewMatrixClient(cfg *config.Config, logger *slog.Logger) service.MatrixProvider {
	return &matrixClient{client: NewRedundantClient(constants.UpstreamMatrix, cfg.Upstream.Matrix, logger)}
}

// Matrix fetches the pairwise distance and duration matrices.
func (c *matrixClient) Matrix(ctx context.Context, locations []entity.Coordinate) (*service.RawMatrix, error) {
	body := matrixRequest{
		Locations: make([][2]float64, 0, len(locations)),
		Metrics:   []string{"distance", "duration"},
		Units:     "m",
	}
	for _, location := range locations {
		body.Locations = append(body.Locations, [2]float64{location.Lon, location.Lat})
	}

	var resp matrixResponse
	if err := c.client.Do(ctx, &Request{Method: http.MethodPost, Body: body}, &resp); err != nil {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), err)
	}

	n := len(locations)
	if !isSquare(resp.Distances, n) || !isSquare(resp.Durations, n) {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), errors.Errorf("matrix response is not %dx%d", n, n))
	}

	return &service.RawMatrix{Distances: resp.Distances, Durations: resp.Durations}, nil
}

func isSquare(rows [][]*float64, n int) bool {
	if len(rows) != n {
		return false
	}
	for _, row := range rows {
		if len(row) != n {
			return false
		}
	}

	return true
}
