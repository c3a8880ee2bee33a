package impl

import (
	"fleetroute/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ForbiddenZones returns every zone whose required tags are not all carried by
// tags, in input zone order. Zones without a parsed geometry are ignored.
func ForbiddenZones(tags entity.Tags, zones []entity.Zone) []entity.Zone {
	forbidden := make([]entity.Zone, 0, len(zones))
	for _, zone := range zones {
		if len(zone.Geometry) == 0 {
			continue
		}
		if !zone.Admits(tags) {
			forbidden = append(forbidden, zone)
		}
	}

	return forbidden
}

// zoneGeometries extracts the geometry of each zone, preserving order.
func zoneGeometries(zones []entity.Zone) []orb.MultiPolygon {
	geometries := make([]orb.MultiPolygon, 0, len(zones))
	for _, zone := range zones {
		geometries = append(geometries, zone.Geometry)
	}

	return geometries
}
