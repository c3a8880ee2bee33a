// Package geo implements the containment tests and geometry handling used to
// enforce zone restrictions.
package geo

import (
	"bytes"
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// minRingVertices is the smallest vertex count that can enclose an area.
const minRingVertices = 3

// ErrInvalidGeometry is returned when zone coordinates cannot be interpreted
// as a ring, polygon or multipolygon.
var ErrInvalidGeometry = errors.New("invalid zone geometry")

// PointInPolygon reports whether point lies inside ring using ray casting.
// The ring may be open or closed and in either winding order.
func PointInPolygon(point orb.Point, ring orb.Ring) bool {
	n := len(ring)
	if n < minRingVertices {
		return false
	}

	x, y := point[0], point[1]
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}

// PointInZone reports whether point lies inside any ring of the geometry.
// Rings with fewer than three vertices are ignored.
func PointInZone(point orb.Point, geometry orb.MultiPolygon) bool {
	for _, polygon := range geometry {
		for _, ring := range polygon {
			if len(ring) < minRingVertices {
				continue
			}
			if PointInPolygon(point, ring) {
				return true
			}
		}
	}

	return false
}

// PointInAnyZone reports whether point lies inside any of the geometries.
func PointInAnyZone(point orb.Point, geometries []orb.MultiPolygon) bool {
	for _, geometry := range geometries {
		if PointInZone(point, geometry) {
			return true
		}
	}

	return false
}

// FlattenPolygon converts raw zone coordinates into a MultiPolygon.
//
// Accepted inputs are a GeoJSON geometry object (Polygon or MultiPolygon) or
// bare coordinate arrays nested two (ring), three (polygon with holes) or four
// (multipolygon) levels deep. Coordinates are [lon, lat] pairs.
func FlattenPolygon(raw json.RawMessage) (orb.MultiPolygon, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.Wrap(ErrInvalidGeometry, "empty coordinates")
	}

	if trimmed[0] == '{' {
		return flattenGeoJSON(trimmed)
	}

	var nested any
	if err := json.Unmarshal(trimmed, &nested); err != nil {
		return nil, errors.Wrap(ErrInvalidGeometry, err.Error())
	}

	switch depth := nestingDepth(nested); depth {
	case 2:
		ring, err := toRing(nested)
		if err != nil {
			return nil, err
		}

		return orb.MultiPolygon{orb.Polygon{ring}}, nil
	case 3:
		polygon, err := toPolygon(nested)
		if err != nil {
			return nil, err
		}

		return orb.MultiPolygon{polygon}, nil
	case 4:
		return toMultiPolygon(nested)
	default:
		return nil, errors.Wrapf(ErrInvalidGeometry, "unsupported nesting depth %d", depth)
	}
}

func flattenGeoJSON(data []byte) (orb.MultiPolygon, error) {
	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidGeometry, err.Error())
	}

	switch g := geometry.Geometry().(type) {
	case orb.Polygon:
		return orb.MultiPolygon{g}, nil
	case orb.MultiPolygon:
		return g, nil
	case orb.Ring:
		return orb.MultiPolygon{orb.Polygon{g}}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidGeometry, "unsupported geometry type %s", geometry.Type)
	}
}

// nestingDepth counts array levels down to the first numeric value.
// It returns 0 when no number is found.
func nestingDepth(value any) int {
	depth := 0
	for {
		switch v := value.(type) {
		case []any:
			if len(v) == 0 {
				return 0
			}
			depth++
			value = v[0]
		case float64:
			return depth
		default:
			return 0
		}
	}
}

func toPoint(value any) (orb.Point, error) {
	pair, ok := value.([]any)
	if !ok || len(pair) < 2 {
		return orb.Point{}, errors.Wrap(ErrInvalidGeometry, "coordinate is not a pair")
	}

	lon, okLon := pair[0].(float64)
	lat, okLat := pair[1].(float64)
	if !okLon || !okLat {
		return orb.Point{}, errors.Wrap(ErrInvalidGeometry, "coordinate is not numeric")
	}

	return orb.Point{lon, lat}, nil
}

func toRing(value any) (orb.Ring, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, errors.Wrap(ErrInvalidGeometry, "ring is not an array")
	}

	ring := make(orb.Ring, 0, len(items))
	for _, item := range items {
		point, err := toPoint(item)
		if err != nil {
			return nil, err
		}
		ring = append(ring, point)
	}

	return ring, nil
}

func toPolygon(value any) (orb.Polygon, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, errors.Wrap(ErrInvalidGeometry, "polygon is not an array")
	}

	polygon := make(orb.Polygon, 0, len(items))
	for _, item := range items {
		ring, err := toRing(item)
		if err != nil {
			return nil, err
		}
		polygon = append(polygon, ring)
	}

	return polygon, nil
}

func toMultiPolygon(value any) (orb.MultiPolygon, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, errors.Wrap(ErrInvalidGeometry, "multipolygon is not an array")
	}

	multi := make(orb.MultiPolygon, 0, len(items))
	for _, item := range items {
		polygon, err := toPolygon(item)
		if err != nil {
			return nil, err
		}
		multi = append(multi, polygon)
	}

	return multi, nil
}

// FormatPolygonsForAvoidance closes every ring and merges the geometries into
// a single GeoJSON MultiPolygon suitable for a directions avoidance request.
// It returns nil when there is nothing to avoid.
func FormatPolygonsForAvoidance(geometries []orb.MultiPolygon) *geojson.Geometry {
	merged := make(orb.MultiPolygon, 0, len(geometries))
	for _, geometry := range geometries {
		for _, polygon := range geometry {
			closed := make(orb.Polygon, 0, len(polygon))
			for _, ring := range polygon {
				if len(ring) < minRingVertices {
					continue
				}
				closed = append(closed, closeRing(ring))
			}
			if len(closed) > 0 {
				merged = append(merged, closed)
			}
		}
	}

	if len(merged) == 0 {
		return nil
	}

	return geojson.NewGeometry(merged)
}

// closeRing returns a copy of ring whose last vertex equals its first.
func closeRing(ring orb.Ring) orb.Ring {
	closed := make(orb.Ring, len(ring), len(ring)+1)
	copy(closed, ring)
	if !ring.Closed() {
		closed = append(closed, ring[0])
	}

	return closed
}
