package entity

import (
	"github.com/paulmach/orb"
)

// StepType is the kind of a solver route step.
type StepType string

const (
	// StepStart marks the vehicle leaving its start position.
	StepStart StepType = "start"
	// StepJob marks a job visit.
	StepJob StepType = "job"
	// StepEnd marks the end of the vehicle's route.
	StepEnd StepType = "end"
)

// Step is a single entry of a vehicle's ordered route.
// JobIndex and LocationIndex are -1 when the step carries no such reference.
type Step struct {
	Type          StepType `json:"type"`
	JobIndex      int      `json:"jobIndex"`
	LocationIndex int      `json:"locationIndex"`
}

// HasLocation reports whether the step refers to a node of the cost matrix.
func (s Step) HasLocation() bool {
	return s.LocationIndex >= 0
}

// Assignment is the ordered step list the solver produced for one vehicle.
type Assignment struct {
	VehicleIndex int    `json:"vehicleIndex"`
	Steps        []Step `json:"steps"`
}

// JobIndices returns the job indices visited by the assignment, in order.
func (a Assignment) JobIndices() []int {
	indices := make([]int, 0, len(a.Steps))
	for _, step := range a.Steps {
		if step.Type == StepJob && step.JobIndex >= 0 {
			indices = append(indices, step.JobIndex)
		}
	}

	return indices
}

// SolverResult is the outcome of the solve stage.
type SolverResult struct {
	Assignments []Assignment `json:"assignments"`
	Unassigned  []int        `json:"unassigned"` // Job indices
	Fallback    bool         `json:"fallback"`   // True when produced by the round-robin fallback
}

// Violation records a vehicle whose assignment enters one of its forbidden zones.
type Violation struct {
	VehicleIndex int      `json:"vehicleIndex"`
	JobIndices   []int    `json:"jobIndices"`
	JobLabels    []string `json:"jobLabels"`
}

// VehicleRoute is the materialized road geometry for one vehicle.
type VehicleRoute struct {
	VehicleID      string         `json:"vehicleId"`
	VehicleName    string         `json:"vehicleName"`
	Coordinates    orb.LineString `json:"coordinates"`
	Distance       float64        `json:"distance"` // meters
	Duration       float64        `json:"duration"` // seconds
	Color          string         `json:"color"`
	AssignedJobIDs []string       `json:"assignedJobIds"`
	Error          *string        `json:"error"`
}

// Failed reports whether the route is an error route.
func (r VehicleRoute) Failed() bool {
	return r.Error != nil
}

// NoticeLevel is the severity of an advisory notice.
type NoticeLevel string

const (
	// NoticeInfo is an informational notice.
	NoticeInfo NoticeLevel = "info"
	// NoticeWarning is a warning notice.
	NoticeWarning NoticeLevel = "warning"
)

// Notice codes
const (
	NoticeCodeZoneRestricted  = "ZONE_RESTRICTED"
	NoticeCodeZoneUnreachable = "ZONE_UNREACHABLE"
	NoticeCodeZoneViolation   = "ZONE_VIOLATION"
	NoticeCodeUnknownPin      = "UNKNOWN_PINNED_VEHICLE"
	NoticeCodeInvalidGeometry = "INVALID_ZONE_GEOMETRY"
	NoticeCodeSolverFallback  = "SOLVER_FALLBACK"
)

// Notice is an advisory message surfaced alongside the plan.
type Notice struct {
	Level     NoticeLevel `json:"level"`
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	VehicleID string      `json:"vehicleId,omitempty"`
	JobIDs    []string    `json:"jobIds,omitempty"`
}

// UnassignedJob describes a job the plan does not serve.
type UnassignedJob struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// RouteData is the complete result of one optimize call.
type RouteData struct {
	PlanID         string          `json:"planId"`
	VehicleRoutes  []VehicleRoute  `json:"vehicleRoutes"`
	WeatherRoutes  []RouteWeather  `json:"weatherRoutes"`
	UnassignedJobs []UnassignedJob `json:"unassignedJobs"`
	Notices        []Notice        `json:"notices"`
	Distance       float64         `json:"distance"` // meters, successful routes only
	Duration       float64         `json:"duration"` // seconds, successful routes only
	SolverFallback bool            `json:"solverFallback"`
}
