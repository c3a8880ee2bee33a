package impl

import (
	"context"
	"log/slog"
	"slices"

	"fleetroute/internal/domain/entity"
	"fleetroute/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// noPin marks a job that may be served by any vehicle
	noPin = -1

	// noJob and noLocation mark steps without a job or matrix node
	noJob      = -1
	noLocation = -1

	defaultDelivery = 1
)

// SolverOptions holds the job and vehicle defaults used to build a request.
type SolverOptions struct {
	ServiceSeconds  int
	DefaultDelivery int
	DefaultCapacity int
}

// vehicleSkill is the skill that pins a job to the vehicle at index i.
// Skills start at 1 because the solver treats 0 as "no skill".
func vehicleSkill(i int) int {
	return i + 1
}

// ResolvePins maps each job's pinned vehicle id to a vehicle index. Pins that
// name an unknown vehicle are dropped with a warning notice.
func ResolvePins(vehicles []entity.Vehicle, jobs []entity.Job) ([]int, []entity.Notice) {
	indexByID := make(map[string]int, len(vehicles))
	for i, vehicle := range vehicles {
		if _, exists := indexByID[vehicle.ID]; !exists {
			indexByID[vehicle.ID] = i
		}
	}

	pins := make([]int, len(jobs))
	var notices []entity.Notice
	for i, job := range jobs {
		pins[i] = noPin
		if !job.IsPinned() {
			continue
		}
		index, ok := indexByID[job.PinnedVehicleID]
		if !ok {
			notices = append(notices, entity.Notice{
				Level:   entity.NoticeWarning,
				Code:    entity.NoticeCodeUnknownPin,
				Message: "Job " + job.DisplayLabel() + " is pinned to unknown vehicle " + job.PinnedVehicleID + "; the pin was ignored",
				JobIDs:  []string{job.ID},
			})

			continue
		}
		pins[i] = index
	}

	return pins, notices
}

func jobDelivery(job entity.Job, opts SolverOptions) int {
	switch {
	case job.Demand > 0:
		return job.Demand
	case opts.DefaultDelivery > 0:
		return opts.DefaultDelivery
	default:
		return defaultDelivery
	}
}

func jobService(job entity.Job, opts SolverOptions) int {
	if job.ServiceSeconds > 0 {
		return job.ServiceSeconds
	}

	return opts.ServiceSeconds
}

// BuildSolveRequest translates the call snapshot into a solver request. Vehicle
// i starts at node i; job j sits at node len(vehicles)+j.
func BuildSolveRequest(vehicles []entity.Vehicle, jobs []entity.Job, pins []int, profiles *ProfileSet, opts SolverOptions) *service.SolveRequest {
	totalDemand := 0
	solverJobs := make([]service.SolverJob, 0, len(jobs))
	for i, job := range jobs {
		delivery := jobDelivery(job, opts)
		totalDemand += delivery

		solverJob := service.SolverJob{
			ID:            i,
			LocationIndex: len(vehicles) + i,
			Service:       jobService(job, opts),
			Delivery:      []int{delivery},
		}
		if i < len(pins) && pins[i] != noPin {
			solverJob.Skills = []int{vehicleSkill(pins[i])}
		}
		solverJobs = append(solverJobs, solverJob)
	}

	solverVehicles := make([]service.SolverVehicle, 0, len(vehicles))
	for i, vehicle := range vehicles {
		capacity := vehicle.Capacity
		if capacity <= 0 {
			capacity = opts.DefaultCapacity
		}
		if capacity <= 0 {
			capacity = totalDemand
		}

		solverVehicles = append(solverVehicles, service.SolverVehicle{
			ID:         i,
			StartIndex: i,
			Profile:    profiles.ForVehicle(i).Name,
			Capacity:   []int{capacity},
			Skills:     []int{vehicleSkill(i)},
		})
	}

	matrices := make(map[string]service.SolverMatrix, len(profiles.Profiles))
	for _, profile := range profiles.Profiles {
		if profile.Matrix == nil {
			continue
		}
		matrices[profile.Name] = service.SolverMatrix{Durations: profile.Matrix.Serialize()}
	}

	return &service.SolveRequest{
		Vehicles: solverVehicles,
		Jobs:     solverJobs,
		Matrices: matrices,
	}
}

// solverAdapter runs the external solver and degrades to round-robin
type solverAdapter struct {
	solver service.RouteSolver
	logger *slog.Logger
}

// Solve never fails: when the solver is unreachable or its answer is unusable
// the deterministic round-robin assignment is returned instead.
func (a *solverAdapter) Solve(ctx context.Context, request *service.SolveRequest) entity.SolverResult {
	vehicleCount, jobCount := len(request.Vehicles), len(request.Jobs)

	response, err := a.solver.Solve(ctx, request)
	if err == nil {
		var result entity.SolverResult
		result, err = ConvertSolveResponse(response, vehicleCount, jobCount)
		if err == nil {
			return result
		}
	}

	a.logger.Warn("Solver unavailable, using round-robin fallback",
		slog.Int("vehicles", vehicleCount),
		slog.Int("jobs", jobCount),
		slog.Any("error", err),
	)

	return RoundRobin(vehicleCount, jobCount)
}

// ConvertSolveResponse maps solver routes back to vehicle and job indices.
// Unassigned jobs are every job absent from all step lists, regardless of what
// the solver claims.
func ConvertSolveResponse(response *service.SolveResponse, vehicleCount, jobCount int) (entity.SolverResult, error) {
	if response == nil {
		return entity.SolverResult{}, errors.New("empty solver response")
	}

	assigned := make([]bool, jobCount)
	seenVehicle := make(map[int]bool, len(response.Routes))
	assignments := make([]entity.Assignment, 0, len(response.Routes))

	for _, route := range response.Routes {
		if route.Vehicle < 0 || route.Vehicle >= vehicleCount {
			return entity.SolverResult{}, errors.Errorf("solver returned unknown vehicle %d", route.Vehicle)
		}
		if seenVehicle[route.Vehicle] {
			return entity.SolverResult{}, errors.Errorf("solver returned vehicle %d twice", route.Vehicle)
		}
		seenVehicle[route.Vehicle] = true

		steps := make([]entity.Step, 0, len(route.Steps))
		for _, s := range route.Steps {
			step, ok, err := convertStep(s, route.Vehicle, vehicleCount, jobCount)
			if err != nil {
				return entity.SolverResult{}, err
			}
			if !ok {
				continue
			}
			if step.Type == entity.StepJob {
				if assigned[step.JobIndex] {
					continue
				}
				assigned[step.JobIndex] = true
			}
			steps = append(steps, step)
		}

		assignments = append(assignments, entity.Assignment{VehicleIndex: route.Vehicle, Steps: steps})
	}

	slices.SortFunc(assignments, func(a, b entity.Assignment) int {
		return a.VehicleIndex - b.VehicleIndex
	})

	return entity.SolverResult{
		Assignments: assignments,
		Unassigned:  missingJobs(assigned),
	}, nil
}

// convertStep returns ok=false for step types that carry no stop (breaks etc.)
func convertStep(s service.SolverStep, vehicle, vehicleCount, jobCount int) (entity.Step, bool, error) {
	location := noLocation
	if s.LocationIndex != nil {
		location = *s.LocationIndex
		if location < 0 || location >= vehicleCount+jobCount {
			return entity.Step{}, false, errors.Errorf("solver returned unknown location %d", location)
		}
	}

	switch entity.StepType(s.Type) {
	case entity.StepStart:
		if location == noLocation {
			location = vehicle
		}

		return entity.Step{Type: entity.StepStart, JobIndex: noJob, LocationIndex: location}, true, nil
	case entity.StepJob:
		if s.ID == nil {
			return entity.Step{}, false, errors.New("solver returned a job step without id")
		}
		job := *s.ID
		if job < 0 || job >= jobCount {
			return entity.Step{}, false, errors.Errorf("solver returned unknown job %d", job)
		}
		if location == noLocation {
			location = vehicleCount + job
		}

		return entity.Step{Type: entity.StepJob, JobIndex: job, LocationIndex: location}, true, nil
	case entity.StepEnd:
		return entity.Step{Type: entity.StepEnd, JobIndex: noJob, LocationIndex: location}, true, nil
	default:
		return entity.Step{}, false, nil
	}
}

// RoundRobin assigns job i to vehicle i mod n. Only vehicles that receive at
// least one job get an assignment. With no vehicles every job is unassigned.
func RoundRobin(vehicleCount, jobCount int) entity.SolverResult {
	result := entity.SolverResult{Fallback: true}
	if vehicleCount == 0 {
		result.Unassigned = missingJobs(make([]bool, jobCount))

		return result
	}

	jobsByVehicle := make([][]int, vehicleCount)
	for job := range jobCount {
		vehicle := job % vehicleCount
		jobsByVehicle[vehicle] = append(jobsByVehicle[vehicle], job)
	}

	assigned := make([]bool, jobCount)
	for vehicle, jobs := range jobsByVehicle {
		if len(jobs) == 0 {
			continue
		}
		steps := make([]entity.Step, 0, len(jobs)+2)
		steps = append(steps, entity.Step{Type: entity.StepStart, JobIndex: noJob, LocationIndex: vehicle})
		for _, job := range jobs {
			steps = append(steps, entity.Step{Type: entity.StepJob, JobIndex: job, LocationIndex: vehicleCount + job})
		}
		steps = append(steps, entity.Step{Type: entity.StepEnd, JobIndex: noJob, LocationIndex: noLocation})

		result.Assignments = append(result.Assignments, entity.Assignment{VehicleIndex: vehicle, Steps: steps})
	}

	// Recomputed from the step lists rather than assumed empty
	for _, assignment := range result.Assignments {
		for _, job := range assignment.JobIndices() {
			assigned[job] = true
		}
	}
	result.Unassigned = missingJobs(assigned)

	return result
}

func missingJobs(assigned []bool) []int {
	missing := make([]int, 0)
	for job, ok := range assigned {
		if !ok {
			missing = append(missing, job)
		}
	}

	return missing
}
