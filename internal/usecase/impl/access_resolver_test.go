package impl

import (
	"testing"

	"fleetroute/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func square(minLon, minLat, maxLon, maxLat float64) orb.MultiPolygon {
	return orb.MultiPolygon{{{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}}
}

func TestForbiddenZones(t *testing.T) {
	eco := entity.Zone{ID: "eco", RequiredTags: entity.Tags{"eco"}, Geometry: square(0, 0, 1, 1)}
	ecoHeavy := entity.Zone{ID: "eco-heavy", RequiredTags: entity.Tags{"eco", "heavy"}, Geometry: square(2, 2, 3, 3)}
	open := entity.Zone{ID: "open", Geometry: square(4, 4, 5, 5)}
	broken := entity.Zone{ID: "broken", RequiredTags: entity.Tags{"eco"}}
	zones := []entity.Zone{eco, ecoHeavy, open, broken}

	tests := []struct {
		name string
		tags entity.Tags
		want []string
	}{
		{name: "untagged vehicle", tags: nil, want: []string{"eco", "eco-heavy"}},
		{name: "partial tags", tags: entity.Tags{"eco"}, want: []string{"eco-heavy"}},
		{name: "superset tags", tags: entity.Tags{"heavy", "eco", "cold"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForbiddenZones(tt.tags, zones)
			ids := make([]string, 0, len(got))
			for _, zone := range got {
				ids = append(ids, zone.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
