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
)

// snapRequest carries [lat, lon] pairs
type snapRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type snappedPoint struct {
	Snapped  bool      `json:"snapped"`
	Location []float64 `json:"location"` // [lat, lon]
}

type snapResponse struct {
	Snapped []*snappedPoint `json:"snapped"`
}

// snapClient implements service.Snapper
type snapClient struct {
	client *RedundantClient
}

// NewSnapClient creates the coordinate snapping client
func NewSnapClient(cfg *config.Config, logger *slog.Logger) service.Snapper {
	return &snapClient{client: NewRedundantClient(constants.UpstreamSnap, cfg.Upstream.Snap, logger)}
}

// Snap returns one coordinate per input. Entries the service did not snap,
// or could not match by position, keep the original coordinate.
func (c *snapClient) Snap(ctx context.Context, coordinates []entity.Coordinate) ([]entity.Coordinate, error) {
	if len(coordinates) == 0 {
		return coordinates, nil
	}

	body := snapRequest{Coordinates: make([][2]float64, 0, len(coordinates))}
	for _, coordinate := range coordinates {
		body.Coordinates = append(body.Coordinates, [2]float64{coordinate.Lat, coordinate.Lon})
	}

	var resp snapResponse
	if err := c.client.Do(ctx, &Request{Method: http.MethodPost, Body: body}, &resp); err != nil {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), err)
	}

	out := make([]entity.Coordinate, len(coordinates))
	for i, original := range coordinates {
		out[i] = original
		if i >= len(resp.Snapped) {
			continue
		}
		point := resp.Snapped[i]
		if point == nil || !point.Snapped || len(point.Location) < 2 {
			continue
		}
		out[i] = entity.Coordinate{Lat: point.Location[0], Lon: point.Location[1]}
	}

	return out, nil
}
