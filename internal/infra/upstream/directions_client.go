package upstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"fleetroute/config"
	"fleetroute/internal/domain/constants"
	domainerrors "fleetroute/internal/domain/errors"
	"fleetroute/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	routePreference = "recommended"

	// unlimitedRadius lets the service snap waypoints at any distance
	unlimitedRadius = -1
)

type directionsRequest struct {
	Coordinates   [][2]float64      `json:"coordinates"`
	Preference    string            `json:"preference"`
	Radiuses      []float64         `json:"radiuses"`
	AvoidPolygons *geojson.Geometry `json:"avoid_polygons,omitempty"`
}

// directionsClient implements service.DirectionsProvider
type directionsClient struct {
	client *RedundantClient
}

// NewDirectionsClient creates the turn-by-turn directions client
func NewDirectionsClient(cfg *config.Config, logger *slog.Logger) service.DirectionsProvider {
	return &directionsClient{client: NewRedundantClient(constants.UpstreamDirections, cfg.Upstream.Directions, logger)}
}

// Directions fetches the road geometry through the waypoints, avoiding the
// given polygons when set.
func (c *directionsClient) Directions(ctx context.Context, request *service.DirectionsRequest) (*service.DirectionsResult, error) {
	body := directionsRequest{
		Coordinates:   make([][2]float64, 0, len(request.Waypoints)),
		Preference:    routePreference,
		Radiuses:      make([]float64, 0, len(request.Waypoints)),
		AvoidPolygons: request.Avoid,
	}
	for _, waypoint := range request.Waypoints {
		body.Coordinates = append(body.Coordinates, [2]float64{waypoint.Lon, waypoint.Lat})
		body.Radiuses = append(body.Radiuses, unlimitedRadius)
	}

	var raw json.RawMessage
	if err := c.client.Do(ctx, &Request{Method: http.MethodPost, Body: body}, &raw); err != nil {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), err)
	}

	result, err := parseDirections(raw)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), err)
	}

	return result, nil
}

// parseDirections accepts a GeoJSON Feature or a FeatureCollection whose first
// feature is the route.
func parseDirections(raw json.RawMessage) (*service.DirectionsResult, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, errors.Wrap(err, "decode directions")
	}

	var feature *geojson.Feature
	switch probe.Type {
	case "FeatureCollection":
		collection, err := geojson.UnmarshalFeatureCollection(raw)
		if err != nil {
			return nil, errors.Wrap(err, "decode feature collection")
		}
		if len(collection.Features) == 0 {
			return nil, errors.New("directions returned no route")
		}
		feature = collection.Features[0]
	case "Feature":
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			return nil, errors.Wrap(err, "decode feature")
		}
		feature = f
	default:
		return nil, errors.Errorf("unexpected directions payload type %q", probe.Type)
	}

	line, ok := feature.Geometry.(orb.LineString)
	if !ok {
		return nil, errors.Errorf("route geometry is %T, want LineString", feature.Geometry)
	}

	result := &service.DirectionsResult{Coordinates: line}
	if summary, ok := feature.Properties["summary"].(map[string]any); ok {
		result.Distance, _ = summary["distance"].(float64)
		result.Duration, _ = summary["duration"].(float64)
	}

	return result, nil
}
