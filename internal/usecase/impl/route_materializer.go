package impl

import (
	"context"
	"log/slog"

	"fleetroute/internal/domain/entity"
	"fleetroute/internal/domain/geo"
	"fleetroute/internal/domain/service"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"
)

const (
	// minWaypoints is the fewest distinct stops a directions request needs
	minWaypoints = 2

	// maxParallelDirections bounds concurrent directions calls per optimize call
	maxParallelDirections = 8
)

// routePalette colors routes by vehicle index
var routePalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// RouteColor returns the display color of the vehicle at index i.
func RouteColor(i int) string {
	return routePalette[i%len(routePalette)]
}

// routePlan is the solved, validated state handed to the materializer
type routePlan struct {
	vehicles   []entity.Vehicle
	jobs       []entity.Job
	nodes      []entity.Coordinate
	profiles   *ProfileSet
	result     entity.SolverResult
	suppressed map[int]bool // vehicle indices flagged by the validator
}

// routeMaterializer turns step sequences into road geometry
type routeMaterializer struct {
	directions service.DirectionsProvider
	logger     *slog.Logger
}

// Materialize requests directions for every non-suppressed assignment with at
// least two stops, in parallel. Each such vehicle yields exactly one route; a
// failed directions call yields an error route instead of failing the plan.
func (m *routeMaterializer) Materialize(ctx context.Context, plan *routePlan) []entity.VehicleRoute {
	slots := make([]*entity.VehicleRoute, len(plan.result.Assignments))

	g := new(errgroup.Group)
	g.SetLimit(maxParallelDirections)
	for i, assignment := range plan.result.Assignments {
		if plan.suppressed[assignment.VehicleIndex] {
			continue
		}
		waypoints := stepWaypoints(assignment, plan.nodes)
		if len(waypoints) < minWaypoints {
			continue
		}

		g.Go(func() error {
			route := m.materializeOne(ctx, plan, assignment, waypoints)
			slots[i] = &route

			return nil
		})
	}
	_ = g.Wait()

	routes := make([]entity.VehicleRoute, 0, len(slots))
	for _, route := range slots {
		if route != nil {
			routes = append(routes, *route)
		}
	}

	return routes
}

func (m *routeMaterializer) materializeOne(ctx context.Context, plan *routePlan, assignment entity.Assignment, waypoints []entity.Coordinate) entity.VehicleRoute {
	vehicle := plan.vehicles[assignment.VehicleIndex]
	profile := plan.profiles.ForVehicle(assignment.VehicleIndex)

	jobIDs := make([]string, 0, len(assignment.Steps))
	for _, job := range assignment.JobIndices() {
		jobIDs = append(jobIDs, plan.jobs[job].ID)
	}

	route := entity.VehicleRoute{
		VehicleID:      vehicle.ID,
		VehicleName:    vehicle.DisplayName(),
		Coordinates:    orb.LineString{},
		Color:          RouteColor(assignment.VehicleIndex),
		AssignedJobIDs: jobIDs,
	}

	result, err := m.directions.Directions(ctx, &service.DirectionsRequest{
		Waypoints: waypoints,
		Avoid:     geo.FormatPolygonsForAvoidance(profile.Geometries()),
	})
	if err != nil {
		m.logger.Warn("Directions failed, emitting error route",
			slog.String("vehicle_id", vehicle.ID),
			slog.Int("waypoints", len(waypoints)),
			slog.Any("error", err),
		)
		message := err.Error()
		route.Error = &message

		return route
	}

	route.Coordinates = result.Coordinates
	route.Distance = result.Distance
	route.Duration = result.Duration

	return route
}

// stepWaypoints collects the coordinates of located steps, dropping
// consecutive repeats of the same position.
func stepWaypoints(assignment entity.Assignment, nodes []entity.Coordinate) []entity.Coordinate {
	waypoints := make([]entity.Coordinate, 0, len(assignment.Steps))
	for _, step := range assignment.Steps {
		if !step.HasLocation() || step.LocationIndex >= len(nodes) {
			continue
		}
		node := nodes[step.LocationIndex]
		if n := len(waypoints); n > 0 && waypoints[n-1] == node {
			continue
		}
		waypoints = append(waypoints, node)
	}

	return waypoints
}
