package service

import "context"

// SolverVehicle is a vehicle entry of a solver request
type SolverVehicle struct {
	ID         int    `json:"id"`
	StartIndex int    `json:"start_index"`
	Profile    string `json:"profile"`
	Capacity   []int  `json:"capacity"`
	Skills     []int  `json:"skills"`
}

// SolverJob is a job entry of a solver request
type SolverJob struct {
	ID            int   `json:"id"`
	LocationIndex int   `json:"location_index"`
	Service       int   `json:"service"`
	Delivery      []int `json:"delivery"`
	Skills        []int `json:"skills,omitempty"`
}

// SolverMatrix is the per-profile cost matrix sent to the solver
type SolverMatrix struct {
	Durations [][]int64 `json:"durations"`
}

// SolveRequest is the payload posted to the solver
type SolveRequest struct {
	Vehicles []SolverVehicle         `json:"vehicles"`
	Jobs     []SolverJob             `json:"jobs"`
	Matrices map[string]SolverMatrix `json:"matrices"`
}

// SolverStep is one step of a solved route
type SolverStep struct {
	Type          string `json:"type"`
	ID            *int   `json:"id,omitempty"`
	LocationIndex *int   `json:"location_index,omitempty"`
}

// SolverRoute is the ordered step list for one vehicle
type SolverRoute struct {
	Vehicle int          `json:"vehicle"`
	Steps   []SolverStep `json:"steps"`
}

// SolverUnassigned identifies a job the solver left out
type SolverUnassigned struct {
	ID int `json:"id"`
}

// SolveResponse is the solver's answer
type SolveResponse struct {
	Routes     []SolverRoute      `json:"routes"`
	Unassigned []SolverUnassigned `json:"unassigned"`
}

// RouteSolver submits a vehicle routing problem to an external optimizer.
type RouteSolver interface {
	Solve(ctx context.Context, request *SolveRequest) (*SolveResponse, error)
}
