// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"slices"

	"github.com/paulmach/orb"
)

// Coordinate represents a geographic coordinate
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point converts the coordinate to an orb.Point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// CoordinateFromPoint converts an orb.Point back to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lon: p.Lon()}
}

// Tags is a set of capability tags carried by a vehicle or required by a zone.
type Tags []string

// Contains checks if the tag set contains a specific tag.
func (ts Tags) Contains(tag string) bool {
	return slices.Contains(ts, tag)
}

// IsSupersetOf reports whether every tag in required is present in ts.
func (ts Tags) IsSupersetOf(required Tags) bool {
	for _, tag := range required {
		if !ts.Contains(tag) {
			return false
		}
	}

	return true
}

// Vehicle is a fleet vehicle snapshot taken for a single optimize call.
type Vehicle struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Plate    string     `json:"plate,omitempty"`
	Kind     string     `json:"kind,omitempty"` // Display classifier, e.g. "van", "e-cargo"
	Position Coordinate `json:"position"`
	Tags     Tags       `json:"tags"`
	Capacity int        `json:"capacity,omitempty"` // 0 means use the configured default
}

// DisplayName returns the name shown in notices, falling back to the ID.
func (v Vehicle) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}

	return v.ID
}

// Job is a delivery job snapshot taken for a single optimize call.
type Job struct {
	ID              string     `json:"id"`
	Label           string     `json:"label"`
	Position        Coordinate `json:"position"`
	PinnedVehicleID string     `json:"pinnedVehicleId,omitempty"`
	Demand          int        `json:"demand,omitempty"`         // 0 means use the configured default
	ServiceSeconds  int        `json:"serviceSeconds,omitempty"` // 0 means use the configured default
}

// DisplayLabel returns the label shown in notices, falling back to the ID.
func (j Job) DisplayLabel() string {
	if j.Label != "" {
		return j.Label
	}

	return j.ID
}

// IsPinned reports whether the job is forced onto a specific vehicle.
func (j Job) IsPinned() bool {
	return j.PinnedVehicleID != ""
}

// Zone is an access-restricted area such as a low-emission zone.
// Coordinates holds the raw nested coordinate arrays as received; Geometry is
// populated once at ingestion.
type Zone struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	RequiredTags Tags             `json:"requiredTags"`
	Coordinates  json.RawMessage  `json:"coordinates"`
	Geometry     orb.MultiPolygon `json:"-"`
}

// Admits reports whether a vehicle carrying tags may enter the zone.
func (z Zone) Admits(tags Tags) bool {
	return tags.IsSupersetOf(z.RequiredTags)
}
