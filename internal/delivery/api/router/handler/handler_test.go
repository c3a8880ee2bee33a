package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleetroute/internal/delivery/api/validator"
	"fleetroute/internal/domain/constants"
	"fleetroute/internal/domain/entity"
	domainerrors "fleetroute/internal/domain/errors"
	mockusecase "fleetroute/internal/mocks/usecase"
	"fleetroute/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func doRequest(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

const optimizeBody = `{
	"vehicles": [{"id": "v1", "name": "Van 1", "position": {"lat": 48.14, "lon": 11.58}, "tags": ["euro6"], "capacity": 4}],
	"jobs": [{"id": "j1", "label": "Depot", "position": {"lat": 48.15, "lon": 11.6}, "pinnedVehicleId": "v1"}],
	"zones": [{"id": "z1", "name": "Umweltzone", "requiredTags": ["euro6"], "coordinates": [[11.5,48.1],[11.7,48.1],[11.7,48.2]]}],
	"departureTime": "2026-01-15T08:00:00Z",
	"includeWeather": true
}`

func TestOptimizeHandler_Optimize(t *testing.T) {
	optimizeUC := mockusecase.NewMockOptimizeUsecase(t)
	h := NewOptimizeHandler(OptimizeHandlerParams{OptimizeUC: optimizeUC, Logger: discardLogger()})

	optimizeUC.EXPECT().
		Optimize(mock.Anything, mock.MatchedBy(func(input *usecase.OptimizeInput) bool {
			return len(input.Vehicles) == 1 &&
				input.Vehicles[0].Tags.Contains("euro6") &&
				input.Jobs[0].PinnedVehicleID == "v1" &&
				input.Jobs[0].Position == entity.Coordinate{Lat: 48.15, Lon: 11.6} &&
				len(input.Zones[0].Coordinates) > 0 &&
				input.IncludeWeather &&
				input.DepartureTime.Equal(time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC))
		})).
		Return(&entity.RouteData{PlanID: "plan-1"}, nil)

	rec, env := doRequest(t, newTestEcho(), h.Optimize, http.MethodPost, "/api/v1/optimize", optimizeBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	var data entity.RouteData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "plan-1", data.PlanID)
}

func TestOptimizeHandler_WeatherDefaults(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "omitted", body: `{"vehicles": [{"id": "v1", "position": {"lat": 48.14, "lon": 11.58}}]}`, want: true},
		{name: "explicit true", body: `{"includeWeather": true}`, want: true},
		{name: "explicit false", body: `{"includeWeather": false}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optimizeUC := mockusecase.NewMockOptimizeUsecase(t)
			h := NewOptimizeHandler(OptimizeHandlerParams{OptimizeUC: optimizeUC, Logger: discardLogger()})

			optimizeUC.EXPECT().
				Optimize(mock.Anything, mock.MatchedBy(func(input *usecase.OptimizeInput) bool {
					return input.IncludeWeather == tt.want
				})).
				Return(&entity.RouteData{PlanID: "plan-1"}, nil)

			rec, _ := doRequest(t, newTestEcho(), h.Optimize, http.MethodPost, "/api/v1/optimize", tt.body)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestOptimizeHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
		wantErr  string
	}{
		{
			name:     "malformed json",
			body:     `{"vehicles": [`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name:     "latitude out of range",
			body:     `{"vehicles": [{"id": "v1", "position": {"lat": 123, "lon": 0}}]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "duplicate job ids",
			body:     `{"jobs": [{"id": "j1"}, {"id": "j1"}]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "zone without coordinates",
			body:     `{"zones": [{"id": "z1"}]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "matrix unavailable",
			body:     `{"vehicles": [], "jobs": []}`,
			ucErr:    domainerrors.ErrMatrixUnavailable.WithDetails("both tiers down"),
			wantCode: http.StatusBadGateway,
			wantErr:  "MATRIX_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optimizeUC := mockusecase.NewMockOptimizeUsecase(t)
			if tt.ucErr != nil {
				optimizeUC.EXPECT().Optimize(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}
			h := NewOptimizeHandler(OptimizeHandlerParams{OptimizeUC: optimizeUC, Logger: discardLogger()})

			rec, env := doRequest(t, newTestEcho(), h.Optimize, http.MethodPost, "/api/v1/optimize", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
			if tt.wantCode >= http.StatusInternalServerError {
				assert.Nil(t, env.Error.Details, "5xx details stay internal")
			}
		})
	}
}

func TestWeatherHandler_Overview(t *testing.T) {
	weatherUC := mockusecase.NewMockWeatherUsecase(t)
	h := NewWeatherHandler(WeatherHandlerParams{WeatherUC: weatherUC, Logger: discardLogger()})

	weatherUC.EXPECT().
		Overview(mock.Anything, &usecase.OverviewInput{
			Mode:   constants.OverviewModeGrid,
			Bounds: orb.Bound{Min: orb.Point{11.4, 48}, Max: orb.Point{11.8, 48.3}},
		}).
		Return([]entity.WeatherPoint{{Location: entity.Coordinate{Lat: 48.1, Lon: 11.5}, RiskLevel: entity.SeverityLow}}, nil)

	rec, env := doRequest(t, newTestEcho(), h.Overview, http.MethodGet,
		"/api/v1/weather/overview?minLat=48&minLon=11.4&maxLat=48.3&maxLon=11.8", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var points []entity.WeatherPoint
	require.NoError(t, json.Unmarshal(env.Data, &points))
	require.Len(t, points, 1)
	assert.Equal(t, entity.SeverityLow, points[0].RiskLevel)
}

func TestWeatherHandler_OverviewErrors(t *testing.T) {
	t.Run("bad number", func(t *testing.T) {
		h := NewWeatherHandler(WeatherHandlerParams{WeatherUC: mockusecase.NewMockWeatherUsecase(t), Logger: discardLogger()})

		rec, env := doRequest(t, newTestEcho(), h.Overview, http.MethodGet, "/api/v1/weather/overview?minLat=north", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("weather disabled", func(t *testing.T) {
		weatherUC := mockusecase.NewMockWeatherUsecase(t)
		weatherUC.EXPECT().
			Overview(mock.Anything, mock.MatchedBy(func(input *usecase.OverviewInput) bool {
				return input.Mode == constants.OverviewModeReference
			})).
			Return(nil, domainerrors.ErrWeatherDisabled)
		h := NewWeatherHandler(WeatherHandlerParams{WeatherUC: weatherUC, Logger: discardLogger()})

		rec, env := doRequest(t, newTestEcho(), h.Overview, http.MethodGet, "/api/v1/weather/overview?mode=reference", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "WEATHER_DISABLED", env.Error.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	rec, env := doRequest(t, newTestEcho(), HealthCheck, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}
