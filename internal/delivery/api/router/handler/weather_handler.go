package handler

import (
	"log/slog"
	"net/http"

	"fleetroute/internal/delivery/api/response"
	"fleetroute/internal/domain/constants"
	"fleetroute/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// WeatherHandlerParams holds dependencies for WeatherHandler, injected by Fx.
type WeatherHandlerParams struct {
	fx.In

	WeatherUC usecase.WeatherUsecase
	Logger    *slog.Logger
}

// WeatherHandler serves the route-independent weather overview
type WeatherHandler struct {
	weatherUC usecase.WeatherUsecase
	logger    *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler
func NewWeatherHandler(params WeatherHandlerParams) *WeatherHandler {
	return &WeatherHandler{
		weatherUC: params.WeatherUC,
		logger:    params.Logger,
	}
}

// Overview handles GET /api/v1/weather/overview
func (h *WeatherHandler) Overview(c echo.Context) error {
	input := &usecase.OverviewInput{Mode: constants.OverviewModeGrid}

	var minLat, minLon, maxLat, maxLon float64
	err := echo.QueryParamsBinder(c).
		String("mode", &input.Mode).
		Float64("minLat", &minLat).
		Float64("minLon", &minLon).
		Float64("maxLat", &maxLat).
		Float64("maxLon", &maxLon).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid overview query")
	}
	input.Bounds = orb.Bound{Min: orb.Point{minLon, minLat}, Max: orb.Point{maxLon, maxLat}}

	points, err := h.weatherUC.Overview(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points)
}
