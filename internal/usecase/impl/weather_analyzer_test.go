package impl

import (
	"context"
	"testing"
	"time"

	"fleetroute/config"
	"fleetroute/internal/domain/constants"
	"fleetroute/internal/domain/entity"
	domainerrors "fleetroute/internal/domain/errors"
	mockService "fleetroute/internal/mocks/service"
	"fleetroute/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// calm returns conditions that trigger no alert
func calm() entity.WeatherConditions {
	return entity.WeatherConditions{Temp: entity.Celsius(15), Visibility: 10000}
}

func alertKinds(alerts []entity.WeatherAlert) map[entity.AlertType]entity.Severity {
	kinds := make(map[entity.AlertType]entity.Severity, len(alerts))
	for _, alert := range alerts {
		kinds[alert.Type] = alert.Severity
	}

	return kinds
}

func TestEvaluateConditions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *entity.WeatherConditions)
		want   map[entity.AlertType]entity.Severity
	}{
		{name: "calm", modify: func(c *entity.WeatherConditions) {}, want: map[entity.AlertType]entity.Severity{}},
		{name: "freezing", modify: func(c *entity.WeatherConditions) { c.Temp = entity.Celsius(0) }, want: map[entity.AlertType]entity.Severity{entity.AlertIce: entity.SeverityHigh}},
		{name: "cold", modify: func(c *entity.WeatherConditions) { c.Temp = entity.Celsius(3) }, want: map[entity.AlertType]entity.Severity{entity.AlertCold: entity.SeverityLow}},
		{name: "cold upper bound", modify: func(c *entity.WeatherConditions) { c.Temp = entity.Celsius(5) }, want: map[entity.AlertType]entity.Severity{entity.AlertCold: entity.SeverityLow}},
		{name: "warm", modify: func(c *entity.WeatherConditions) { c.Temp = entity.Celsius(35) }, want: map[entity.AlertType]entity.Severity{entity.AlertHeat: entity.SeverityMedium}},
		{name: "temperature missing", modify: func(c *entity.WeatherConditions) { c.Temp = nil }, want: map[entity.AlertType]entity.Severity{}},
		{name: "hot", modify: func(c *entity.WeatherConditions) { c.Temp = entity.Celsius(40) }, want: map[entity.AlertType]entity.Severity{entity.AlertHeat: entity.SeverityHigh}},
		{name: "storm", modify: func(c *entity.WeatherConditions) { c.WindSpeed = 30 }, want: map[entity.AlertType]entity.Severity{entity.AlertWind: entity.SeverityHigh}},
		{name: "breeze", modify: func(c *entity.WeatherConditions) { c.WindSpeed = 16 }, want: map[entity.AlertType]entity.Severity{entity.AlertWind: entity.SeverityMedium}},
		{name: "light air", modify: func(c *entity.WeatherConditions) { c.WindSpeed = 0.5 }, want: map[entity.AlertType]entity.Severity{entity.AlertWind: entity.SeverityLow}},
		{name: "dense fog", modify: func(c *entity.WeatherConditions) { c.Visibility = 150 }, want: map[entity.AlertType]entity.Severity{entity.AlertFog: entity.SeverityHigh}},
		{name: "mist", modify: func(c *entity.WeatherConditions) { c.Visibility = 800 }, want: map[entity.AlertType]entity.Severity{entity.AlertFog: entity.SeverityMedium}},
		{name: "haze", modify: func(c *entity.WeatherConditions) { c.Visibility = 4000 }, want: map[entity.AlertType]entity.Severity{entity.AlertFog: entity.SeverityLow}},
		{name: "heavy snow", modify: func(c *entity.WeatherConditions) { c.Snow = 5 }, want: map[entity.AlertType]entity.Severity{entity.AlertSnow: entity.SeverityHigh}},
		{name: "light snow", modify: func(c *entity.WeatherConditions) { c.Snow = 1 }, want: map[entity.AlertType]entity.Severity{entity.AlertSnow: entity.SeverityMedium}},
		{name: "downpour", modify: func(c *entity.WeatherConditions) { c.Rain = 25 }, want: map[entity.AlertType]entity.Severity{entity.AlertRain: entity.SeverityHigh}},
		{name: "rain", modify: func(c *entity.WeatherConditions) { c.Rain = 10 }, want: map[entity.AlertType]entity.Severity{entity.AlertRain: entity.SeverityMedium}},
		{name: "drizzle", modify: func(c *entity.WeatherConditions) { c.Rain = 0.2 }, want: map[entity.AlertType]entity.Severity{entity.AlertRain: entity.SeverityLow}},
	}

	location := entity.Coordinate{Lat: 48.1, Lon: 11.5}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := calm()
			tt.modify(&c)

			alerts := EvaluateConditions(c, location)
			assert.Equal(t, tt.want, alertKinds(alerts))
			for _, alert := range alerts {
				assert.Equal(t, location, alert.Location)
			}
		})
	}
}

func TestSampleIndices(t *testing.T) {
	assert.Nil(t, SampleIndices(0))
	assert.Equal(t, []int{0}, SampleIndices(1))
	assert.Equal(t, []int{0, 1}, SampleIndices(2))
	assert.Equal(t, []int{0, 1, 2}, SampleIndices(3))
	assert.Equal(t, []int{0, 4, 9}, SampleIndices(10))
}

func TestSampleETA(t *testing.T) {
	start := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, start, SampleETA(start, 3600, 0, 5))
	assert.Equal(t, start.Add(30*time.Minute), SampleETA(start, 3600, 2, 5))
	assert.Equal(t, start.Add(time.Hour), SampleETA(start, 3600, 4, 5))
	assert.Equal(t, start, SampleETA(start, 3600, 0, 1))
}

func TestClosestEntry(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	entries := []entity.WeatherConditions{
		{Timestamp: base.Add(6 * time.Hour), Temp: entity.Celsius(6)},
		{Timestamp: base, Temp: entity.Celsius(0)},
		{Timestamp: base.Add(3 * time.Hour), Temp: entity.Celsius(3)},
	}

	entry, ok := ClosestEntry(entries, base.Add(2*time.Hour))
	require.True(t, ok)
	assert.Equal(t, entity.Celsius(3), entry.Temp)

	entry, ok = ClosestEntry(entries, base.Add(-time.Hour))
	require.True(t, ok)
	assert.Equal(t, entity.Celsius(0), entry.Temp)

	_, ok = ClosestEntry(nil, base)
	assert.False(t, ok)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "48.14,11.58", CacheKey(entity.Coordinate{Lat: 48.1374, Lon: 11.5762}, 2))
	assert.Equal(t, CacheKey(entity.Coordinate{Lat: 48.1371, Lon: 11.5782}, 2), CacheKey(entity.Coordinate{Lat: 48.1368, Lon: 11.5779}, 2))
	assert.Equal(t, "-33.9,18.4", CacheKey(entity.Coordinate{Lat: -33.92, Lon: 18.42}, 1))
}

func TestGridPoints(t *testing.T) {
	bounds := orb.Bound{Min: orb.Point{10, 50}, Max: orb.Point{12, 52}}

	points := GridPoints(bounds, 2, 2)

	require.Len(t, points, 4)
	assert.Equal(t, entity.Coordinate{Lat: 50.5, Lon: 10.5}, points[0])
	assert.Equal(t, entity.Coordinate{Lat: 51.5, Lon: 11.5}, points[3])
	assert.Nil(t, GridPoints(bounds, 0, 3))
}

func newTestAnalyzer(t *testing.T, weatherCfg *config.WeatherConfig) (*weatherAnalyzer, *mockService.MockWeatherProvider, *mockService.MockForecastCache) {
	provider := mockService.NewMockWeatherProvider(t)
	cache := mockService.NewMockForecastCache(t)
	analyzer := NewWeatherAnalyzer(WeatherAnalyzerParams{
		Provider: provider,
		Cache:    cache,
		Config:   &config.Config{Weather: weatherCfg},
		Logger:   discardLogger(),
	}).(*weatherAnalyzer)

	return analyzer, provider, cache
}

func TestWeatherAnalyzer_AnalyzeRoutes(t *testing.T) {
	analyzer, provider, cache := newTestAnalyzer(t, &config.WeatherConfig{Enabled: true, CoordinatePrecision: 2})
	departure := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	routes := []entity.VehicleRoute{
		{VehicleID: "A", Coordinates: orb.LineString{{11.50, 48.10}, {11.55, 48.12}, {11.60, 48.15}}, Duration: 7200},
		{VehicleID: "B", Error: new(string)},
	}

	freezing := calm()
	freezing.Temp = entity.Celsius(-2)
	freezing.Timestamp = departure.Add(2 * time.Hour)
	mild := calm()
	mild.Timestamp = departure

	// start and middle are cached; the end is fetched
	cache.EXPECT().Get(mock.Anything, "48.10,11.50").Return([]entity.WeatherConditions{mild}, true)
	cache.EXPECT().Get(mock.Anything, "48.12,11.55").Return([]entity.WeatherConditions{mild}, true)
	cache.EXPECT().Get(mock.Anything, "48.15,11.60").Return(nil, false)
	provider.EXPECT().
		Forecast(mock.Anything, entity.Coordinate{Lat: 48.15, Lon: 11.60}).
		Return([]entity.WeatherConditions{mild, freezing}, nil)
	cache.EXPECT().Set(mock.Anything, "48.15,11.60", []entity.WeatherConditions{mild, freezing}).Return()

	weather := analyzer.AnalyzeRoutes(context.Background(), routes, departure)

	require.Len(t, weather, 1)
	assert.Equal(t, "A", weather[0].VehicleID)
	assert.Equal(t, entity.SeverityHigh, weather[0].RiskLevel)
	require.Len(t, weather[0].Alerts, 1)
	assert.Equal(t, entity.AlertIce, weather[0].Alerts[0].Type)
}

func TestWeatherAnalyzer_ForecastFailureYieldsNoAlerts(t *testing.T) {
	analyzer, provider, cache := newTestAnalyzer(t, &config.WeatherConfig{Enabled: true})

	routes := []entity.VehicleRoute{
		{VehicleID: "A", Coordinates: orb.LineString{{11.5, 48.1}}, Duration: 0},
	}
	cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, false)
	provider.EXPECT().Forecast(mock.Anything, mock.Anything).Return(nil, errors.New("weather upstream failed"))

	weather := analyzer.AnalyzeRoutes(context.Background(), routes, time.Now())

	require.Len(t, weather, 1)
	assert.Empty(t, weather[0].Alerts)
	assert.Equal(t, entity.SeverityLow, weather[0].RiskLevel)
}

func TestWeatherAnalyzer_Disabled(t *testing.T) {
	analyzer, _, _ := newTestAnalyzer(t, &config.WeatherConfig{Enabled: false})

	weather := analyzer.AnalyzeRoutes(context.Background(), []entity.VehicleRoute{{VehicleID: "A", Coordinates: orb.LineString{{1, 1}}}}, time.Now())
	assert.Empty(t, weather)

	_, err := analyzer.Overview(context.Background(), &usecase.OverviewInput{Mode: constants.OverviewModeReference})
	assert.ErrorIs(t, err, domainerrors.ErrWeatherDisabled)
}

func TestWeatherAnalyzer_OverviewReference(t *testing.T) {
	analyzer, provider, _ := newTestAnalyzer(t, &config.WeatherConfig{
		Enabled: true,
		ReferencePoints: []config.ReferencePoint{
			{Name: "Hamburg", Lat: 53.55, Lon: 9.99},
			{Name: "München", Lat: 48.14, Lon: 11.58},
		},
	})

	windy := calm()
	windy.WindSpeed = 20
	provider.EXPECT().Current(mock.Anything, entity.Coordinate{Lat: 53.55, Lon: 9.99}).Return(&windy, nil)
	provider.EXPECT().Current(mock.Anything, entity.Coordinate{Lat: 48.14, Lon: 11.58}).Return(nil, errors.New("timeout"))

	points, err := analyzer.Overview(context.Background(), &usecase.OverviewInput{Mode: constants.OverviewModeReference})
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "Hamburg", points[0].Name)
	assert.Equal(t, entity.SeverityMedium, points[0].RiskLevel)
	require.NotNil(t, points[0].Conditions)

	assert.Equal(t, "München", points[1].Name)
	assert.Nil(t, points[1].Conditions)
	assert.Empty(t, points[1].Alerts)
	assert.Equal(t, entity.SeverityLow, points[1].RiskLevel)
}

func TestWeatherAnalyzer_OverviewGrid(t *testing.T) {
	analyzer, provider, _ := newTestAnalyzer(t, &config.WeatherConfig{Enabled: true, GridRows: 2, GridCols: 3})

	conditions := calm()
	provider.EXPECT().Current(mock.Anything, mock.Anything).Return(&conditions, nil).Times(6)

	points, err := analyzer.Overview(context.Background(), &usecase.OverviewInput{
		Mode:   constants.OverviewModeGrid,
		Bounds: orb.Bound{Min: orb.Point{9, 47}, Max: orb.Point{12, 49}},
	})
	require.NoError(t, err)
	assert.Len(t, points, 6)

	_, err = analyzer.Overview(context.Background(), &usecase.OverviewInput{Mode: constants.OverviewModeGrid})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = analyzer.Overview(context.Background(), &usecase.OverviewInput{Mode: "satellite"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWeatherAnalyzer_OverviewReferenceDefaults(t *testing.T) {
	analyzer, provider, _ := newTestAnalyzer(t, &config.WeatherConfig{Enabled: true})

	defaults := config.DefaultReferencePoints()
	require.NotEmpty(t, defaults)

	conditions := calm()
	provider.EXPECT().Current(mock.Anything, mock.Anything).Return(&conditions, nil).Times(len(defaults))

	points, err := analyzer.Overview(context.Background(), &usecase.OverviewInput{Mode: constants.OverviewModeReference})
	require.NoError(t, err)
	require.Len(t, points, len(defaults))
	assert.Equal(t, defaults[0].Name, points[0].Name)
}
