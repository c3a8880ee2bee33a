package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"fleetroute/config"
	deliverycontext "fleetroute/internal/delivery/context"
	"fleetroute/internal/domain/constants"
	"fleetroute/internal/domain/entity"
	domainerrors "fleetroute/internal/domain/errors"
	"fleetroute/internal/domain/service"
	"fleetroute/internal/infra/metrics"
	"fleetroute/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Alert thresholds. Precipitation in mm, temperature in °C, wind in m/s and
// visibility in meters.
const (
	snowHighMM = 5.0

	rainHighMM   = 20.0
	rainMediumMM = 10.0

	iceMaxTemp   = 0.0
	coldMaxTemp  = 5.0
	heatMinTemp  = 30.0
	heatHighTemp = 40.0

	windMinSpeed    = 0.5
	windMediumSpeed = 15.0
	windHighSpeed   = 25.0

	fogMaxVisibility    = 5000.0
	fogMediumVisibility = 1000.0
	fogHighVisibility   = 200.0
)

const (
	maxParallelForecasts = 8

	defaultPrecision = 2
	defaultGridSize  = 5
)

// EvaluateConditions applies the hazard threshold rules to one weather entry.
func EvaluateConditions(c entity.WeatherConditions, location entity.Coordinate) []entity.WeatherAlert {
	alerts := make([]entity.WeatherAlert, 0, 2)
	add := func(alertType entity.AlertType, severity entity.Severity, value float64) {
		alerts = append(alerts, entity.WeatherAlert{
			Type:      alertType,
			Severity:  severity,
			Value:     value,
			Timestamp: c.Timestamp,
			Location:  location,
		})
	}

	if c.Snow > 0 {
		if c.Snow >= snowHighMM {
			add(entity.AlertSnow, entity.SeverityHigh, c.Snow)
		} else {
			add(entity.AlertSnow, entity.SeverityMedium, c.Snow)
		}
	}

	if c.Rain > 0 {
		switch {
		case c.Rain >= rainHighMM:
			add(entity.AlertRain, entity.SeverityHigh, c.Rain)
		case c.Rain >= rainMediumMM:
			add(entity.AlertRain, entity.SeverityMedium, c.Rain)
		default:
			add(entity.AlertRain, entity.SeverityLow, c.Rain)
		}
	}

	if c.Temp != nil {
		switch temp := *c.Temp; {
		case temp <= iceMaxTemp:
			add(entity.AlertIce, entity.SeverityHigh, temp)
		case temp <= coldMaxTemp:
			add(entity.AlertCold, entity.SeverityLow, temp)
		case temp >= heatHighTemp:
			add(entity.AlertHeat, entity.SeverityHigh, temp)
		case temp >= heatMinTemp:
			add(entity.AlertHeat, entity.SeverityMedium, temp)
		}
	}

	if c.WindSpeed >= windMinSpeed {
		switch {
		case c.WindSpeed >= windHighSpeed:
			add(entity.AlertWind, entity.SeverityHigh, c.WindSpeed)
		case c.WindSpeed >= windMediumSpeed:
			add(entity.AlertWind, entity.SeverityMedium, c.WindSpeed)
		default:
			add(entity.AlertWind, entity.SeverityLow, c.WindSpeed)
		}
	}

	if c.Visibility < fogMaxVisibility {
		switch {
		case c.Visibility < fogHighVisibility:
			add(entity.AlertFog, entity.SeverityHigh, c.Visibility)
		case c.Visibility < fogMediumVisibility:
			add(entity.AlertFog, entity.SeverityMedium, c.Visibility)
		default:
			add(entity.AlertFog, entity.SeverityLow, c.Visibility)
		}
	}

	return alerts
}

// SampleIndices returns the start, middle and end indices of a polyline with
// n points, deduplicated.
func SampleIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	indices := make([]int, 0, 3)
	for _, idx := range []int{0, (n - 1) / 2, n - 1} {
		if len(indices) > 0 && indices[len(indices)-1] == idx {
			continue
		}
		indices = append(indices, idx)
	}

	return indices
}

// SampleETA projects the arrival at point index of an n-point route of the
// given duration (seconds), assuming constant progress along the points.
func SampleETA(start time.Time, duration float64, index, n int) time.Time {
	if n <= 1 {
		return start
	}
	fraction := float64(index) / float64(n-1)

	return start.Add(time.Duration(duration * fraction * float64(time.Second)))
}

// ClosestEntry returns the entry whose timestamp is nearest to eta.
func ClosestEntry(entries []entity.WeatherConditions, eta time.Time) (entity.WeatherConditions, bool) {
	if len(entries) == 0 {
		return entity.WeatherConditions{}, false
	}

	best := 0
	bestGap := absDuration(entries[0].Timestamp.Sub(eta))
	for i := 1; i < len(entries); i++ {
		if gap := absDuration(entries[i].Timestamp.Sub(eta)); gap < bestGap {
			best, bestGap = i, gap
		}
	}

	return entries[best], true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}

	return d
}

// RoundCoordinate rounds both axes to precision decimal places.
func RoundCoordinate(c entity.Coordinate, precision int) entity.Coordinate {
	scale := math.Pow(10, float64(precision))

	return entity.Coordinate{
		Lat: math.Round(c.Lat*scale) / scale,
		Lon: math.Round(c.Lon*scale) / scale,
	}
}

// CacheKey is the forecast cache key of a coordinate.
func CacheKey(c entity.Coordinate, precision int) string {
	rounded := RoundCoordinate(c, precision)

	return strconv.FormatFloat(rounded.Lat, 'f', precision, 64) + "," + strconv.FormatFloat(rounded.Lon, 'f', precision, 64)
}

// GridPoints returns rows×cols cell centers covering bounds, row-major from
// the south-west corner.
func GridPoints(bounds orb.Bound, rows, cols int) []entity.Coordinate {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	latStep := (bounds.Max.Lat() - bounds.Min.Lat()) / float64(rows)
	lonStep := (bounds.Max.Lon() - bounds.Min.Lon()) / float64(cols)
	points := make([]entity.Coordinate, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			points = append(points, entity.Coordinate{
				Lat: bounds.Min.Lat() + (float64(r)+0.5)*latStep,
				Lon: bounds.Min.Lon() + (float64(c)+0.5)*lonStep,
			})
		}
	}

	return points
}

// weatherAnalyzer implements the WeatherUsecase interface
type weatherAnalyzer struct {
	enabled    bool
	provider   service.WeatherProvider
	cache      service.ForecastCache
	precision  int
	gridRows   int
	gridCols   int
	references []config.ReferencePoint
	logger     *slog.Logger
}

// WeatherAnalyzerParams holds dependencies for the weather analyzer, injected by Fx.
type WeatherAnalyzerParams struct {
	fx.In

	Provider service.WeatherProvider
	Cache    service.ForecastCache
	Config   *config.Config
	Logger   *slog.Logger
}

// NewWeatherAnalyzer creates the weather risk analyzer
func NewWeatherAnalyzer(params WeatherAnalyzerParams) usecase.WeatherUsecase {
	analyzer := &weatherAnalyzer{
		provider:  params.Provider,
		cache:     params.Cache,
		precision: defaultPrecision,
		gridRows:  defaultGridSize,
		gridCols:  defaultGridSize,
		logger:    params.Logger,
	}

	if cfg := params.Config.Weather; cfg != nil {
		analyzer.enabled = cfg.Enabled
		analyzer.references = cfg.ReferencePoints
		if len(analyzer.references) == 0 {
			analyzer.references = config.DefaultReferencePoints()
		}
		if cfg.CoordinatePrecision > 0 {
			analyzer.precision = cfg.CoordinatePrecision
		}
		if cfg.GridRows > 0 {
			analyzer.gridRows = cfg.GridRows
		}
		if cfg.GridCols > 0 {
			analyzer.gridCols = cfg.GridCols
		}
	}

	return analyzer
}

func (a *weatherAnalyzer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// routeSample is one forecast lookup along a route
type routeSample struct {
	route    int
	location entity.Coordinate
	eta      time.Time
	alerts   []entity.WeatherAlert
}

// AnalyzeRoutes assesses each successful route at its start, middle and end.
func (a *weatherAnalyzer) AnalyzeRoutes(ctx context.Context, routes []entity.VehicleRoute, departure time.Time) []entity.RouteWeather {
	result := make([]entity.RouteWeather, 0, len(routes))
	if !a.enabled {
		return result
	}

	var samples []*routeSample
	analyzed := make([]int, 0, len(routes))
	for i, route := range routes {
		if route.Failed() || len(route.Coordinates) == 0 {
			continue
		}
		analyzed = append(analyzed, i)
		n := len(route.Coordinates)
		for _, idx := range SampleIndices(n) {
			samples = append(samples, &routeSample{
				route:    i,
				location: entity.CoordinateFromPoint(route.Coordinates[idx]),
				eta:      SampleETA(departure, route.Duration, idx, n),
			})
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(maxParallelForecasts)
	for _, sample := range samples {
		g.Go(func() error {
			entries, ok := a.forecast(ctx, sample.location)
			if !ok {
				return nil
			}
			if entry, found := ClosestEntry(entries, sample.eta); found {
				sample.alerts = EvaluateConditions(entry, sample.location)
			}

			return nil
		})
	}
	_ = g.Wait()

	for _, i := range analyzed {
		alerts := make([]entity.WeatherAlert, 0)
		for _, sample := range samples {
			if sample.route == i {
				alerts = append(alerts, sample.alerts...)
			}
		}
		result = append(result, entity.RouteWeather{
			VehicleID: routes[i].VehicleID,
			RiskLevel: entity.RiskLevelOf(alerts),
			Alerts:    alerts,
		})
	}

	return result
}

// forecast returns cached entries for the rounded location, fetching and
// caching them on a miss. ok is false when the weather service failed.
func (a *weatherAnalyzer) forecast(ctx context.Context, location entity.Coordinate) ([]entity.WeatherConditions, bool) {
	key := CacheKey(location, a.precision)
	if entries, hit := a.cache.Get(ctx, key); hit {
		metrics.ForecastCacheLookups.WithLabelValues("hit").Inc()

		return entries, true
	}
	metrics.ForecastCacheLookups.WithLabelValues("miss").Inc()

	entries, err := a.provider.Forecast(ctx, RoundCoordinate(location, a.precision))
	if err != nil {
		a.log(ctx).Warn("Forecast unavailable, sample has no alerts",
			slog.String("cache_key", key),
			slog.Any("error", err),
		)

		return nil, false
	}
	a.cache.Set(ctx, key, entries)

	return entries, true
}

// Overview samples current conditions on a grid or at the reference points.
func (a *weatherAnalyzer) Overview(ctx context.Context, input *usecase.OverviewInput) ([]entity.WeatherPoint, error) {
	if !a.enabled {
		return nil, domainerrors.ErrWeatherDisabled
	}

	var points []entity.WeatherPoint
	switch input.Mode {
	case constants.OverviewModeGrid:
		if input.Bounds.Max.Lat() <= input.Bounds.Min.Lat() || input.Bounds.Max.Lon() <= input.Bounds.Min.Lon() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("grid mode requires minLat < maxLat and minLon < maxLon")
		}
		for _, location := range GridPoints(input.Bounds, a.gridRows, a.gridCols) {
			points = append(points, entity.WeatherPoint{Location: location})
		}
	case constants.OverviewModeReference:
		for _, ref := range a.references {
			points = append(points, entity.WeatherPoint{
				Name:     ref.Name,
				Location: entity.Coordinate{Lat: ref.Lat, Lon: ref.Lon},
			})
		}
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown overview mode: " + input.Mode)
	}

	g := new(errgroup.Group)
	g.SetLimit(maxParallelForecasts)
	for i := range points {
		g.Go(func() error {
			point := &points[i]
			point.Alerts = make([]entity.WeatherAlert, 0)
			point.RiskLevel = entity.SeverityLow

			conditions, err := a.provider.Current(ctx, point.Location)
			if err != nil {
				a.log(ctx).Warn("Current weather unavailable",
					slog.Float64("lat", point.Location.Lat),
					slog.Float64("lon", point.Location.Lon),
					slog.Any("error", err),
				)

				return nil
			}
			point.Conditions = conditions
			point.Alerts = EvaluateConditions(*conditions, point.Location)
			point.RiskLevel = entity.RiskLevelOf(point.Alerts)

			return nil
		})
	}
	_ = g.Wait()

	if points == nil {
		points = make([]entity.WeatherPoint, 0)
	}

	return points, nil
}
