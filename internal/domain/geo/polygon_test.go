package geo

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minX, minY, size float64) orb.Ring {
	return orb.Ring{
		{minX, minY},
		{minX + size, minY},
		{minX + size, minY + size},
		{minX, minY + size},
	}
}

func reversed(ring orb.Ring) orb.Ring {
	out := make(orb.Ring, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}

	return out
}

func centroid(ring orb.Ring) orb.Point {
	var x, y float64
	for _, p := range ring {
		x += p[0]
		y += p[1]
	}
	n := float64(len(ring))

	return orb.Point{x / n, y / n}
}

func TestPointInPolygon_ConvexCentroidAndOutsideBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ring orb.Ring
	}{
		{name: "triangle", ring: orb.Ring{{13.30, 52.50}, {13.45, 52.50}, {13.38, 52.58}}},
		{name: "square", ring: square(13.3, 52.4, 0.2)},
		{name: "closed square", ring: append(square(2.2, 48.8, 0.1), orb.Point{2.2, 48.8})},
		{name: "hexagon", ring: orb.Ring{{0, 1}, {0.87, 0.5}, {0.87, -0.5}, {0, -1}, {-0.87, -0.5}, {-0.87, 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bound := tt.ring.Bound()
			outside := orb.Point{bound.Max[0] + 1, bound.Max[1] + 1}

			assert.True(t, PointInPolygon(centroid(tt.ring), tt.ring))
			assert.False(t, PointInPolygon(outside, tt.ring))

			// Winding order must not matter.
			assert.True(t, PointInPolygon(centroid(tt.ring), reversed(tt.ring)))
			assert.False(t, PointInPolygon(outside, reversed(tt.ring)))
		})
	}
}

func TestPointInPolygon_DegenerateRing(t *testing.T) {
	t.Parallel()

	assert.False(t, PointInPolygon(orb.Point{0, 0}, orb.Ring{{-1, -1}, {1, 1}}))
	assert.False(t, PointInPolygon(orb.Point{0, 0}, nil))
}

func TestPointInPolygon_MatchesPlanar(t *testing.T) {
	t.Parallel()

	// Concave "L" shape
	ring := orb.Ring{{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 4}, {0, 4}, {0, 0}}

	for x := -0.45; x < 5; x += 0.5 {
		for y := -0.45; y < 5; y += 0.5 {
			point := orb.Point{x, y}
			assert.Equal(t, planar.RingContains(ring, point), PointInPolygon(point, ring), "point %v", point)
		}
	}
}

func TestPointInZone_SkipsShortRings(t *testing.T) {
	t.Parallel()

	geometry := orb.MultiPolygon{
		{orb.Ring{{0, 0}, {10, 10}}},
		{square(20, 20, 1)},
	}

	assert.False(t, PointInZone(orb.Point{5, 5}, geometry))
	assert.True(t, PointInZone(orb.Point{20.5, 20.5}, geometry))
	assert.False(t, PointInZone(orb.Point{50, 50}, geometry))
}

func TestPointInAnyZone(t *testing.T) {
	t.Parallel()

	zones := []orb.MultiPolygon{
		{{square(0, 0, 1)}},
		{{square(5, 5, 1)}},
	}

	assert.True(t, PointInAnyZone(orb.Point{5.5, 5.5}, zones))
	assert.False(t, PointInAnyZone(orb.Point{3, 3}, zones))
	assert.False(t, PointInAnyZone(orb.Point{0.5, 0.5}, nil))
}

func TestFlattenPolygon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantPolys int
		wantRings int
	}{
		{
			name:      "bare ring",
			raw:       `[[0,0],[1,0],[1,1],[0,1]]`,
			wantPolys: 1,
			wantRings: 1,
		},
		{
			name:      "polygon with hole",
			raw:       `[[[0,0],[4,0],[4,4],[0,4],[0,0]],[[1,1],[2,1],[2,2],[1,1]]]`,
			wantPolys: 1,
			wantRings: 2,
		},
		{
			name:      "multipolygon",
			raw:       `[[[[0,0],[1,0],[1,1],[0,0]]],[[[5,5],[6,5],[6,6],[5,5]]]]`,
			wantPolys: 2,
			wantRings: 2,
		},
		{
			name:      "geojson polygon",
			raw:       `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`,
			wantPolys: 1,
			wantRings: 1,
		},
		{
			name:      "geojson multipolygon",
			raw:       `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]]]}`,
			wantPolys: 1,
			wantRings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			geometry, err := FlattenPolygon(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Len(t, geometry, tt.wantPolys)

			rings := 0
			for _, polygon := range geometry {
				rings += len(polygon)
			}
			assert.Equal(t, tt.wantRings, rings)
		})
	}
}

func TestFlattenPolygon_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		``,
		`null`,
		`[1,2]`,
		`[[["a","b"]]]`,
		`[[[[[0,0]]]]]`,
		`[]`,
		`{"type":"Point","coordinates":[1,2]}`,
		`{not json`,
	}

	for _, raw := range inputs {
		_, err := FlattenPolygon(json.RawMessage(raw))
		require.Error(t, err, "input %q", raw)
		assert.ErrorIs(t, err, ErrInvalidGeometry, "input %q", raw)
	}
}

func TestFormatPolygonsForAvoidance(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FormatPolygonsForAvoidance(nil))
	assert.Nil(t, FormatPolygonsForAvoidance([]orb.MultiPolygon{{{orb.Ring{{0, 0}, {1, 1}}}}}))

	open := square(0, 0, 1)
	closed := append(square(5, 5, 1), orb.Point{5, 5})

	geometry := FormatPolygonsForAvoidance([]orb.MultiPolygon{{{open}}, {{closed}}})
	require.NotNil(t, geometry)
	assert.Equal(t, "MultiPolygon", geometry.Type)

	multi, ok := geometry.Geometry().(orb.MultiPolygon)
	require.True(t, ok)
	require.Len(t, multi, 2)

	for _, polygon := range multi {
		ring := polygon[0]
		assert.True(t, ring.Closed())
		assert.Len(t, ring, 5)
	}

	// The input ring must not be modified.
	assert.Len(t, open, 4)

	data, err := json.Marshal(geometry)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"MultiPolygon"`)
}
