// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fleetroute/config"
	deliverycontext "fleetroute/internal/delivery/context"
	"fleetroute/internal/domain/entity"
	domainerrors "fleetroute/internal/domain/errors"
	"fleetroute/internal/domain/geo"
	"fleetroute/internal/domain/service"
	"fleetroute/internal/infra/metrics"
	"fleetroute/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Unassigned job reasons
const (
	reasonNoVehicles   = "no vehicles available"
	reasonUnreachable  = "inside a restricted zone no available vehicle may enter"
	reasonPinnedRoute  = "pinned vehicle could not serve the job"
	reasonNotScheduled = "not scheduled by the solver"
)

// optimizeService implements the OptimizeUsecase interface.
type optimizeService struct {
	snapper   service.Snapper
	matrices  *matrixBuilder
	solver    *solverAdapter
	routes    *routeMaterializer
	weather   usecase.WeatherUsecase
	publisher service.EventPublisher
	options   SolverOptions
	logger    *slog.Logger
}

// OptimizeServiceParams holds dependencies for OptimizeService, injected by Fx.
type OptimizeServiceParams struct {
	fx.In

	Snapper    service.Snapper
	Matrix     service.MatrixProvider
	Solver     service.RouteSolver
	Directions service.DirectionsProvider
	Weather    usecase.WeatherUsecase
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOptimizeService wires the optimize pipeline stages.
func NewOptimizeService(params OptimizeServiceParams) usecase.OptimizeUsecase {
	weights := CostWeights{PerMeter: 1, PerSecond: 1}
	options := SolverOptions{DefaultDelivery: defaultDelivery}
	if cfg := params.Config.Optimizer; cfg != nil {
		weights = CostWeights{PerMeter: cfg.CostPerMeter, PerSecond: cfg.CostPerSecond}
		options = SolverOptions{
			ServiceSeconds:  cfg.ServiceSeconds,
			DefaultDelivery: cfg.DefaultDelivery,
			DefaultCapacity: cfg.DefaultCapacity,
		}
	}

	return &optimizeService{
		snapper:   params.Snapper,
		matrices:  &matrixBuilder{provider: params.Matrix, weights: weights},
		solver:    &solverAdapter{solver: params.Solver, logger: params.Logger},
		routes:    &routeMaterializer{directions: params.Directions, logger: params.Logger},
		weather:   params.Weather,
		publisher: params.Publisher,
		options:   options,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *optimizeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Optimize runs snap, zone resolution, matrix synthesis, solving, validation,
// route materialization and weather analysis in sequence. The pipeline is
// detached from the caller's cancellation and always runs to completion.
func (s *optimizeService) Optimize(ctx context.Context, input *usecase.OptimizeInput) (*entity.RouteData, error) {
	started := time.Now()
	ctx = context.WithoutCancel(ctx)
	logger := s.log(ctx)

	data := &entity.RouteData{
		PlanID:         uuid.NewString(),
		VehicleRoutes:  make([]entity.VehicleRoute, 0),
		WeatherRoutes:  make([]entity.RouteWeather, 0),
		UnassignedJobs: make([]entity.UnassignedJob, 0),
		Notices:        make([]entity.Notice, 0),
	}

	if len(input.Jobs) == 0 {
		return s.finish(ctx, input, data, started), nil
	}

	zones, zoneNotices := ingestZones(input.Zones, logger)
	data.Notices = append(data.Notices, zoneNotices...)

	if len(input.Vehicles) == 0 {
		for _, job := range input.Jobs {
			data.UnassignedJobs = append(data.UnassignedJobs, unassigned(job, reasonNoVehicles))
		}

		return s.finish(ctx, input, data, started), nil
	}

	vehicles, jobs := s.snap(ctx, input.Vehicles, input.Jobs)

	profiles := ResolveProfiles(vehicles, zones)
	reachable := reachableJobs(jobs, profiles)
	data.Notices = append(data.Notices, accessNotices(vehicles, jobs, profiles, reachable)...)

	pins, pinNotices := ResolvePins(vehicles, jobs)
	data.Notices = append(data.Notices, pinNotices...)

	nodes := make([]entity.Coordinate, 0, len(vehicles)+len(jobs))
	for _, vehicle := range vehicles {
		nodes = append(nodes, vehicle.Position)
	}
	for _, job := range jobs {
		nodes = append(nodes, job.Position)
	}

	if err := s.matrices.Build(ctx, profiles, nodes); err != nil {
		logger.Error("Cost matrix unavailable, aborting optimize",
			slog.Int("profiles", len(profiles.Profiles)),
			slog.Int("nodes", len(nodes)),
			slog.Any("error", err),
		)
		metrics.OptimizeDuration.WithLabelValues("matrix_unavailable").Observe(time.Since(started).Seconds())

		return nil, domainerrors.ErrMatrixUnavailable.WithDetails(err.Error())
	}

	request := BuildSolveRequest(vehicles, jobs, pins, profiles, s.options)
	result := s.solver.Solve(ctx, request)
	if result.Fallback {
		data.SolverFallback = true
		metrics.SolverFallbacks.Inc()
		data.Notices = append(data.Notices, entity.Notice{
			Level:   entity.NoticeWarning,
			Code:    entity.NoticeCodeSolverFallback,
			Message: "Route optimizer unavailable; jobs were distributed round-robin without zone or capacity optimization",
		})
	}

	violations := ValidateAssignments(result, jobs, profiles)
	suppressed := make(map[int]bool, len(violations))
	for _, violation := range violations {
		suppressed[violation.VehicleIndex] = true
		metrics.ZoneViolations.Inc()
		data.Notices = append(data.Notices, violationNotice(vehicles[violation.VehicleIndex], jobs, violation))
	}

	data.VehicleRoutes = s.routes.Materialize(ctx, &routePlan{
		vehicles:   vehicles,
		jobs:       jobs,
		nodes:      nodes,
		profiles:   profiles,
		result:     result,
		suppressed: suppressed,
	})
	for _, route := range data.VehicleRoutes {
		if route.Failed() {
			continue
		}
		data.Distance += route.Distance
		data.Duration += route.Duration
	}

	for _, job := range result.Unassigned {
		data.UnassignedJobs = append(data.UnassignedJobs, unassigned(jobs[job], unassignedReason(job, pins, reachable)))
	}

	if input.IncludeWeather && s.weather != nil {
		departure := input.DepartureTime
		if departure.IsZero() {
			departure = time.Now()
		}
		data.WeatherRoutes = s.weather.AnalyzeRoutes(ctx, data.VehicleRoutes, departure)
	}

	return s.finish(ctx, input, data, started), nil
}

// finish records metrics, logs the summary and publishes the plan event.
func (s *optimizeService) finish(ctx context.Context, input *usecase.OptimizeInput, data *entity.RouteData, started time.Time) *entity.RouteData {
	elapsed := time.Since(started)
	metrics.OptimizeDuration.WithLabelValues("ok").Observe(elapsed.Seconds())

	failed := 0
	for _, route := range data.VehicleRoutes {
		if route.Failed() {
			failed++
		}
	}

	s.log(ctx).Info("Plan optimized",
		slog.String("plan_id", data.PlanID),
		slog.Int("vehicles", len(input.Vehicles)),
		slog.Int("jobs", len(input.Jobs)),
		slog.Int("routes", len(data.VehicleRoutes)),
		slog.Int("failed_routes", failed),
		slog.Int("unassigned", len(data.UnassignedJobs)),
		slog.Bool("solver_fallback", data.SolverFallback),
		slog.Duration("elapsed", elapsed),
	)

	if s.publisher == nil {
		return data
	}

	event := &service.PlanOptimizedEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		PlanID:          data.PlanID,
		VehicleCount:    len(input.Vehicles),
		JobCount:        len(input.Jobs),
		RouteCount:      len(data.VehicleRoutes),
		FailedRoutes:    failed,
		UnassignedCount: len(data.UnassignedJobs),
		NoticeCount:     len(data.Notices),
		DistanceMeters:  data.Distance,
		DurationSeconds: data.Duration,
		SolverFallback:  data.SolverFallback,
	}
	if err := s.publisher.PublishPlanOptimized(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish plan event",
			slog.String("plan_id", data.PlanID),
			slog.Any("error", err),
		)
	}

	return data
}

// snap moves vehicle starts and job locations onto the road network. Any
// failure leaves the input positions untouched.
func (s *optimizeService) snap(ctx context.Context, vehicles []entity.Vehicle, jobs []entity.Job) ([]entity.Vehicle, []entity.Job) {
	snappedVehicles := make([]entity.Vehicle, len(vehicles))
	copy(snappedVehicles, vehicles)
	snappedJobs := make([]entity.Job, len(jobs))
	copy(snappedJobs, jobs)

	if s.snapper == nil {
		return snappedVehicles, snappedJobs
	}

	coordinates := make([]entity.Coordinate, 0, len(vehicles)+len(jobs))
	for _, vehicle := range vehicles {
		coordinates = append(coordinates, vehicle.Position)
	}
	for _, job := range jobs {
		coordinates = append(coordinates, job.Position)
	}

	snapped, err := s.snapper.Snap(ctx, coordinates)
	if err != nil || len(snapped) != len(coordinates) {
		s.log(ctx).Warn("Snap unavailable, using raw coordinates",
			slog.Int("coordinates", len(coordinates)),
			slog.Int("snapped", len(snapped)),
			slog.Any("error", err),
		)

		return snappedVehicles, snappedJobs
	}

	for i := range snappedVehicles {
		snappedVehicles[i].Position = snapped[i]
	}
	for i := range snappedJobs {
		snappedJobs[i].Position = snapped[len(vehicles)+i]
	}

	return snappedVehicles, snappedJobs
}

// ingestZones parses zone geometry once. Malformed zones are skipped with a
// warning and a notice.
func ingestZones(zones []entity.Zone, logger *slog.Logger) ([]entity.Zone, []entity.Notice) {
	parsed := make([]entity.Zone, 0, len(zones))
	var notices []entity.Notice
	for _, zone := range zones {
		if len(zone.Geometry) == 0 {
			geometry, err := geo.FlattenPolygon(zone.Coordinates)
			if err != nil {
				logger.Warn("Skipping zone with malformed geometry",
					slog.String("zone_id", zone.ID),
					slog.Any("error", err),
				)
				notices = append(notices, entity.Notice{
					Level:   entity.NoticeWarning,
					Code:    entity.NoticeCodeInvalidGeometry,
					Message: "Zone " + zoneName(zone) + " has malformed geometry and was ignored",
				})

				continue
			}
			zone.Geometry = geometry
		}
		parsed = append(parsed, zone)
	}

	return parsed, notices
}

// reachableJobs reports, per job, whether at least one vehicle may enter its location.
func reachableJobs(jobs []entity.Job, profiles *ProfileSet) []bool {
	reachable := make([]bool, len(jobs))
	for i, job := range jobs {
		for _, profile := range profiles.Profiles {
			if !profile.Forbids(job.Position) {
				reachable[i] = true

				break
			}
		}
	}

	return reachable
}

// accessNotices explains the zone restrictions before solving: one info notice
// per restricted vehicle that cannot serve some jobs, one warning per job no
// vehicle can serve.
func accessNotices(vehicles []entity.Vehicle, jobs []entity.Job, profiles *ProfileSet, reachable []bool) []entity.Notice {
	var notices []entity.Notice
	for i, vehicle := range vehicles {
		profile := profiles.ForVehicle(i)
		if !profile.Restricted() {
			continue
		}

		var blocked []string
		for _, job := range jobs {
			if profile.Forbids(job.Position) {
				blocked = append(blocked, job.ID)
			}
		}
		if len(blocked) == 0 {
			continue
		}

		names := make([]string, 0, len(profile.Forbidden))
		for _, zone := range profile.Forbidden {
			names = append(names, zoneName(zone))
		}
		notices = append(notices, entity.Notice{
			Level:     entity.NoticeInfo,
			Code:      entity.NoticeCodeZoneRestricted,
			Message:   fmt.Sprintf("Vehicle %s may not enter %s; %d job(s) are out of its reach", vehicle.DisplayName(), strings.Join(names, ", "), len(blocked)),
			VehicleID: vehicle.ID,
			JobIDs:    blocked,
		})
	}

	for i, job := range jobs {
		if reachable[i] {
			continue
		}
		notices = append(notices, entity.Notice{
			Level:   entity.NoticeWarning,
			Code:    entity.NoticeCodeZoneUnreachable,
			Message: "No available vehicle may enter the zone around job " + job.DisplayLabel(),
			JobIDs:  []string{job.ID},
		})
	}

	return notices
}

func violationNotice(vehicle entity.Vehicle, jobs []entity.Job, violation entity.Violation) entity.Notice {
	jobIDs := make([]string, 0, len(violation.JobIndices))
	for _, job := range violation.JobIndices {
		jobIDs = append(jobIDs, jobs[job].ID)
	}

	return entity.Notice{
		Level:     entity.NoticeWarning,
		Code:      entity.NoticeCodeZoneViolation,
		Message:   fmt.Sprintf("Vehicle %s was assigned %s inside a restricted zone; its route is not shown", vehicle.DisplayName(), strings.Join(violation.JobLabels, ", ")),
		VehicleID: vehicle.ID,
		JobIDs:    jobIDs,
	}
}

func unassignedReason(job int, pins []int, reachable []bool) string {
	switch {
	case !reachable[job]:
		return reasonUnreachable
	case pins[job] != noPin:
		return reasonPinnedRoute
	default:
		return reasonNotScheduled
	}
}

func unassigned(job entity.Job, reason string) entity.UnassignedJob {
	return entity.UnassignedJob{
		ID:          job.ID,
		Description: job.DisplayLabel(),
		Reason:      reason,
	}
}

func zoneName(zone entity.Zone) string {
	if zone.Name != "" {
		return zone.Name
	}

	return zone.ID
}
