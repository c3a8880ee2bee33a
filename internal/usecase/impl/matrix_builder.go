package impl

import (
	"context"
	"strconv"
	"strings"

	"fleetroute/internal/domain/entity"
	"fleetroute/internal/domain/geo"
	"fleetroute/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// profileNamePrefix names profiles p0, p1, ... in first-appearance order
const profileNamePrefix = "p"

// AccessProfile groups vehicles that share the same forbidden zones.
type AccessProfile struct {
	Name      string
	Key       string
	Forbidden []entity.Zone
	Index     *geo.ZoneIndex
	Matrix    *CostMatrix
}

// Restricted reports whether the profile forbids any zone.
func (p *AccessProfile) Restricted() bool {
	return len(p.Forbidden) > 0
}

// Geometries returns the forbidden zone geometries in zone order.
func (p *AccessProfile) Geometries() []orb.MultiPolygon {
	return zoneGeometries(p.Forbidden)
}

// Forbids reports whether the coordinate lies inside a forbidden zone.
func (p *AccessProfile) Forbids(c entity.Coordinate) bool {
	return p.Index.Contains(c.Point())
}

// ProfileSet is the deduplicated set of access profiles of one optimize call.
type ProfileSet struct {
	Profiles  []*AccessProfile
	byVehicle []*AccessProfile
}

// ForVehicle returns the profile of the vehicle at index i.
func (s *ProfileSet) ForVehicle(i int) *AccessProfile {
	return s.byVehicle[i]
}

// ProfileKey serializes the forbidden geometries into a stable key.
// Structurally equal forbidden sets always produce the same key.
func ProfileKey(zones []entity.Zone) string {
	parts := make([]string, 0, len(zones))
	for _, zone := range zones {
		parts = append(parts, wkt.MarshalString(zone.Geometry))
	}

	return strings.Join(parts, ";")
}

// ResolveProfiles deduplicates the vehicles' forbidden zone sets into profiles.
func ResolveProfiles(vehicles []entity.Vehicle, zones []entity.Zone) *ProfileSet {
	set := &ProfileSet{
		Profiles:  make([]*AccessProfile, 0, 1),
		byVehicle: make([]*AccessProfile, len(vehicles)),
	}
	byKey := make(map[string]*AccessProfile)

	for i, vehicle := range vehicles {
		forbidden := ForbiddenZones(vehicle.Tags, zones)
		key := ProfileKey(forbidden)

		profile, ok := byKey[key]
		if !ok {
			profile = &AccessProfile{
				Name:      profileName(len(set.Profiles)),
				Key:       key,
				Forbidden: forbidden,
				Index:     geo.NewZoneIndex(zoneGeometries(forbidden)),
			}
			byKey[key] = profile
			set.Profiles = append(set.Profiles, profile)
		}
		set.byVehicle[i] = profile
	}

	return set
}

func profileName(i int) string {
	return profileNamePrefix + strconv.Itoa(i)
}

// matrixBuilder fills one cost matrix per access profile
type matrixBuilder struct {
	provider service.MatrixProvider
	weights  CostWeights
}

// Build fetches the raw matrix once per profile, in parallel, and stores the
// synthesized cost matrix on each profile. Any failure is fatal.
func (b *matrixBuilder) Build(ctx context.Context, profiles *ProfileSet, nodes []entity.Coordinate) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, profile := range profiles.Profiles {
		g.Go(func() error {
			raw, err := b.provider.Matrix(gctx, nodes)
			if err != nil {
				return errors.Wrapf(err, "fetch matrix for profile %s", profile.Name)
			}

			matrix, err := SynthesizeMatrix(raw, nodes, profile, b.weights)
			if err != nil {
				return errors.Wrapf(err, "synthesize matrix for profile %s", profile.Name)
			}
			profile.Matrix = matrix

			return nil
		})
	}

	return g.Wait()
}

// SynthesizeMatrix turns raw distances and durations into the cost matrix of
// one profile. A pair is infeasible when either node lies inside a forbidden
// zone or the service reported no route; the diagonal is always zero.
func SynthesizeMatrix(raw *service.RawMatrix, nodes []entity.Coordinate, profile *AccessProfile, weights CostWeights) (*CostMatrix, error) {
	n := len(nodes)
	if err := checkRawMatrix(raw, n); err != nil {
		return nil, err
	}

	inside := make([]bool, n)
	if profile.Restricted() {
		for i, node := range nodes {
			inside[i] = profile.Forbids(node)
		}
	}

	matrix := newCostMatrix(n)
	for i := range n {
		for j := range n {
			switch {
			case i == j:
				matrix.cells[i][j] = Finite(0)
			case inside[i] || inside[j]:
				matrix.cells[i][j] = Infeasible()
			case raw.Distances[i][j] == nil || raw.Durations[i][j] == nil:
				matrix.cells[i][j] = Infeasible()
			default:
				matrix.cells[i][j] = weights.Cost(*raw.Distances[i][j], *raw.Durations[i][j])
			}
		}
	}

	return matrix, nil
}

func checkRawMatrix(raw *service.RawMatrix, n int) error {
	if raw == nil {
		return errors.New("empty matrix response")
	}
	if len(raw.Distances) != n || len(raw.Durations) != n {
		return errors.Errorf("matrix has %d/%d rows, want %d", len(raw.Distances), len(raw.Durations), n)
	}
	for i := range n {
		if len(raw.Distances[i]) != n || len(raw.Durations[i]) != n {
			return errors.Errorf("matrix row %d is not %d wide", i, n)
		}
	}

	return nil
}
