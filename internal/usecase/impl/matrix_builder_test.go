package impl

import (
	"context"
	"testing"

	"fleetroute/internal/domain/entity"
	"fleetroute/internal/domain/service"
	mockService "fleetroute/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 {
	return &v
}

// uniformRaw builds an n×n raw matrix with the given off-diagonal distance and duration.
func uniformRaw(n int, distance, duration float64) *service.RawMatrix {
	raw := &service.RawMatrix{
		Distances: make([][]*float64, n),
		Durations: make([][]*float64, n),
	}
	for i := range n {
		raw.Distances[i] = make([]*float64, n)
		raw.Durations[i] = make([]*float64, n)
		for j := range n {
			if i == j {
				raw.Distances[i][j] = fptr(0)
				raw.Durations[i][j] = fptr(0)
				continue
			}
			raw.Distances[i][j] = fptr(distance)
			raw.Durations[i][j] = fptr(duration)
		}
	}

	return raw
}

func ecoZone() entity.Zone {
	return entity.Zone{ID: "lez", Name: "Umweltzone", RequiredTags: entity.Tags{"eco"}, Geometry: square(0, 0, 1, 1)}
}

func TestResolveProfiles_DeduplicatesIdenticalForbiddenSets(t *testing.T) {
	vehicles := []entity.Vehicle{
		{ID: "a", Tags: entity.Tags{"eco"}},
		{ID: "b"},
		{ID: "c", Tags: entity.Tags{"diesel"}},
		{ID: "d", Tags: entity.Tags{"eco", "cargo"}},
	}

	profiles := ResolveProfiles(vehicles, []entity.Zone{ecoZone()})

	require.Len(t, profiles.Profiles, 2)
	assert.Equal(t, "p0", profiles.Profiles[0].Name)
	assert.Equal(t, "p1", profiles.Profiles[1].Name)
	assert.Empty(t, profiles.Profiles[0].Key)
	assert.False(t, profiles.Profiles[0].Restricted())
	assert.True(t, profiles.Profiles[1].Restricted())

	assert.Same(t, profiles.ForVehicle(0), profiles.ForVehicle(3))
	assert.Same(t, profiles.ForVehicle(1), profiles.ForVehicle(2))
	assert.NotSame(t, profiles.ForVehicle(0), profiles.ForVehicle(1))
}

func TestProfileKey_StructurallyEqualGeometries(t *testing.T) {
	first := entity.Zone{ID: "x", Geometry: square(0, 0, 1, 1)}
	second := entity.Zone{ID: "y", Geometry: square(0, 0, 1, 1)}
	other := entity.Zone{ID: "z", Geometry: square(0, 0, 2, 2)}

	assert.Equal(t, ProfileKey([]entity.Zone{first}), ProfileKey([]entity.Zone{second}))
	assert.NotEqual(t, ProfileKey([]entity.Zone{first}), ProfileKey([]entity.Zone{other}))
	assert.Empty(t, ProfileKey(nil))
}

func TestSynthesizeMatrix(t *testing.T) {
	// node 0: vehicle start outside, node 1: job inside the zone, node 2: job outside
	nodes := []entity.Coordinate{
		{Lat: 5, Lon: 5},
		{Lat: 0.5, Lon: 0.5},
		{Lat: 6, Lon: 6},
	}
	raw := uniformRaw(3, 1000, 60)
	raw.Distances[2][0] = nil

	restricted := ResolveProfiles([]entity.Vehicle{{ID: "b"}}, []entity.Zone{ecoZone()}).ForVehicle(0)
	weights := CostWeights{PerMeter: 1, PerSecond: 1}

	matrix, err := SynthesizeMatrix(raw, nodes, restricted, weights)
	require.NoError(t, err)

	for i := range 3 {
		assert.Equal(t, Finite(0), matrix.At(i, i))
	}
	assert.Equal(t, Finite(1060), matrix.At(0, 2))
	assert.False(t, matrix.At(0, 1).IsFinite(), "into forbidden zone")
	assert.False(t, matrix.At(1, 2).IsFinite(), "out of forbidden zone")
	assert.False(t, matrix.At(2, 0).IsFinite(), "no route reported")

	unrestricted := ResolveProfiles([]entity.Vehicle{{ID: "a", Tags: entity.Tags{"eco"}}}, []entity.Zone{ecoZone()}).ForVehicle(0)
	matrix, err = SynthesizeMatrix(raw, nodes, unrestricted, weights)
	require.NoError(t, err)
	assert.Equal(t, Finite(1060), matrix.At(0, 1))

	serialized := matrix.Serialize()
	assert.GreaterOrEqual(t, serialized[2][0], 10*matrix.MaxFinite())
}

func TestSynthesizeMatrix_RejectsWrongShape(t *testing.T) {
	nodes := []entity.Coordinate{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}
	profile := ResolveProfiles([]entity.Vehicle{{ID: "a"}}, nil).ForVehicle(0)

	_, err := SynthesizeMatrix(uniformRaw(3, 1, 1), nodes, profile, CostWeights{})
	require.Error(t, err)

	_, err = SynthesizeMatrix(nil, nodes, profile, CostWeights{})
	require.Error(t, err)
}

func TestMatrixBuilder_Build(t *testing.T) {
	provider := mockService.NewMockMatrixProvider(t)
	builder := &matrixBuilder{provider: provider, weights: CostWeights{PerMeter: 1, PerSecond: 1}}

	vehicles := []entity.Vehicle{{ID: "a", Tags: entity.Tags{"eco"}}, {ID: "b"}}
	nodes := []entity.Coordinate{{Lat: 5, Lon: 5}, {Lat: 6, Lon: 6}, {Lat: 0.5, Lon: 0.5}}
	profiles := ResolveProfiles(vehicles, []entity.Zone{ecoZone()})

	provider.EXPECT().
		Matrix(mock.Anything, nodes).
		Return(uniformRaw(3, 100, 10), nil).
		Times(2)

	require.NoError(t, builder.Build(context.Background(), profiles, nodes))

	for _, profile := range profiles.Profiles {
		require.NotNil(t, profile.Matrix, profile.Name)
		assert.Equal(t, 3, profile.Matrix.Size())
	}
	assert.True(t, profiles.ForVehicle(0).Matrix.At(0, 2).IsFinite())
	assert.False(t, profiles.ForVehicle(1).Matrix.At(1, 2).IsFinite())
}

func TestMatrixBuilder_BuildFailure(t *testing.T) {
	provider := mockService.NewMockMatrixProvider(t)
	builder := &matrixBuilder{provider: provider}

	nodes := []entity.Coordinate{{Lat: 5, Lon: 5}}
	profiles := ResolveProfiles([]entity.Vehicle{{ID: "a"}}, nil)

	provider.EXPECT().
		Matrix(mock.Anything, nodes).
		Return(nil, errors.New("connection refused"))

	err := builder.Build(context.Background(), profiles, nodes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p0")
}
