package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fleetroute/internal/delivery/api/response"
	"fleetroute/internal/domain/entity"
	"fleetroute/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OptimizeHandlerParams holds dependencies for OptimizeHandler, injected by Fx.
type OptimizeHandlerParams struct {
	fx.In

	OptimizeUC usecase.OptimizeUsecase
	Logger     *slog.Logger
}

// OptimizeHandler serves the route optimization endpoint
type OptimizeHandler struct {
	optimizeUC usecase.OptimizeUsecase
	logger     *slog.Logger
}

// NewOptimizeHandler is the constructor for OptimizeHandler
func NewOptimizeHandler(params OptimizeHandlerParams) *OptimizeHandler {
	return &OptimizeHandler{
		optimizeUC: params.OptimizeUC,
		logger:     params.Logger,
	}
}

// CoordinateRequest is a WGS84 position
type CoordinateRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

func (r CoordinateRequest) toEntity() entity.Coordinate {
	return entity.Coordinate{Lat: r.Lat, Lon: r.Lon}
}

// VehicleRequest represents one fleet vehicle
type VehicleRequest struct {
	ID       string            `json:"id" validate:"required"`
	Name     string            `json:"name"`
	Plate    string            `json:"plate"`
	Kind     string            `json:"kind"`
	Position CoordinateRequest `json:"position"`
	Tags     []string          `json:"tags"`
	Capacity int               `json:"capacity" validate:"min=0"`
}

// JobRequest represents one delivery job
type JobRequest struct {
	ID              string            `json:"id" validate:"required"`
	Label           string            `json:"label"`
	Position        CoordinateRequest `json:"position"`
	PinnedVehicleID string            `json:"pinnedVehicleId"`
	Demand          int               `json:"demand" validate:"min=0"`
	ServiceSeconds  int               `json:"serviceSeconds" validate:"min=0"`
}

// ZoneRequest represents an access-restricted area. Coordinates may be a
// GeoJSON geometry or nested [lon, lat] arrays.
type ZoneRequest struct {
	ID           string          `json:"id" validate:"required"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	RequiredTags []string        `json:"requiredTags"`
	Coordinates  json.RawMessage `json:"coordinates" validate:"required"`
}

// OptimizeRequest represents the request body of an optimize call.
// IncludeWeather defaults to true when omitted; weather.enabled remains the
// global switch.
type OptimizeRequest struct {
	Vehicles       []VehicleRequest `json:"vehicles" validate:"unique=ID,dive"`
	Jobs           []JobRequest     `json:"jobs" validate:"unique=ID,dive"`
	Zones          []ZoneRequest    `json:"zones" validate:"dive"`
	DepartureTime  *time.Time       `json:"departureTime"`
	IncludeWeather *bool            `json:"includeWeather"`
}

// ToInput converts the request into the optimize use case input
func (r *OptimizeRequest) ToInput() *usecase.OptimizeInput {
	input := &usecase.OptimizeInput{
		Vehicles:       make([]entity.Vehicle, 0, len(r.Vehicles)),
		Jobs:           make([]entity.Job, 0, len(r.Jobs)),
		Zones:          make([]entity.Zone, 0, len(r.Zones)),
		IncludeWeather: r.IncludeWeather == nil || *r.IncludeWeather,
	}
	if r.DepartureTime != nil {
		input.DepartureTime = *r.DepartureTime
	}

	for _, v := range r.Vehicles {
		input.Vehicles = append(input.Vehicles, entity.Vehicle{
			ID:       v.ID,
			Name:     v.Name,
			Plate:    v.Plate,
			Kind:     v.Kind,
			Position: v.Position.toEntity(),
			Tags:     entity.Tags(v.Tags),
			Capacity: v.Capacity,
		})
	}
	for _, j := range r.Jobs {
		input.Jobs = append(input.Jobs, entity.Job{
			ID:              j.ID,
			Label:           j.Label,
			Position:        j.Position.toEntity(),
			PinnedVehicleID: j.PinnedVehicleID,
			Demand:          j.Demand,
			ServiceSeconds:  j.ServiceSeconds,
		})
	}
	for _, z := range r.Zones {
		input.Zones = append(input.Zones, entity.Zone{
			ID:           z.ID,
			Name:         z.Name,
			Type:         z.Type,
			RequiredTags: entity.Tags(z.RequiredTags),
			Coordinates:  z.Coordinates,
		})
	}

	return input
}

// Optimize handles POST /api/v1/optimize
func (h *OptimizeHandler) Optimize(c echo.Context) error {
	var req OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid optimize input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	routeData, err := h.optimizeUC.Optimize(c.Request().Context(), req.ToInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, routeData)
}
