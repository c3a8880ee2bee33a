package entity

import "time"

// AlertType is the hazard category of a weather alert.
type AlertType string

const (
	AlertSnow AlertType = "SNOW"
	AlertRain AlertType = "RAIN"
	AlertIce  AlertType = "ICE"
	AlertCold AlertType = "COLD"
	AlertHeat AlertType = "HEAT"
	AlertWind AlertType = "WIND"
	AlertFog  AlertType = "FOG"
)

// Severity grades alerts and aggregated route risk.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// WeatherConditions is one observed or forecast weather entry.
// Rain and Snow are precipitation amounts in millimeters, WindSpeed is in m/s,
// Visibility is in meters and Temp in degrees Celsius; Temp is nil when the
// report carried no temperature.
type WeatherConditions struct {
	Timestamp  time.Time `json:"timestamp"`
	Temp       *float64  `json:"temp,omitempty"`
	Rain       float64   `json:"rain"`
	Snow       float64   `json:"snow"`
	WindSpeed  float64   `json:"windSpeed"`
	WindDeg    float64   `json:"windDeg"`
	Visibility float64   `json:"visibility"`
}

// Celsius returns a temperature reading for WeatherConditions.Temp.
func Celsius(degrees float64) *float64 {
	return &degrees
}

// WeatherAlert is a categorized hazard at one sample point.
type WeatherAlert struct {
	Type      AlertType  `json:"type"`
	Severity  Severity   `json:"severity"`
	Value     float64    `json:"value"`
	Timestamp time.Time  `json:"timestamp"`
	Location  Coordinate `json:"location"`
}

// RouteWeather aggregates the alerts found along one vehicle's route.
type RouteWeather struct {
	VehicleID string         `json:"vehicleId"`
	RiskLevel Severity       `json:"riskLevel"`
	Alerts    []WeatherAlert `json:"alerts"`
}

// WeatherPoint is a vehicle-independent sample used by the weather overview.
type WeatherPoint struct {
	Name       string             `json:"name,omitempty"`
	Location   Coordinate         `json:"location"`
	Conditions *WeatherConditions `json:"conditions,omitempty"`
	Alerts     []WeatherAlert     `json:"alerts"`
	RiskLevel  Severity           `json:"riskLevel"`
}

// RiskLevelOf aggregates alerts: HIGH if any alert is HIGH, MEDIUM if any alert
// exists, LOW otherwise.
func RiskLevelOf(alerts []WeatherAlert) Severity {
	if len(alerts) == 0 {
		return SeverityLow
	}
	for _, alert := range alerts {
		if alert.Severity == SeverityHigh {
			return SeverityHigh
		}
	}

	return SeverityMedium
}
