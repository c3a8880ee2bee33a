package service

import (
	"context"
)

// PlanOptimizedEvent is emitted after every optimize call
type PlanOptimizedEvent struct {
	RequestID       string  `json:"request_id,omitempty"` // For distributed tracing
	PlanID          string  `json:"plan_id"`
	VehicleCount    int     `json:"vehicle_count"`
	JobCount        int     `json:"job_count"`
	RouteCount      int     `json:"route_count"`
	FailedRoutes    int     `json:"failed_routes"`
	UnassignedCount int     `json:"unassigned_count"`
	NoticeCount     int     `json:"notice_count"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	SolverFallback  bool    `json:"solver_fallback"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlanOptimized publishes a plan summary for downstream consumers
	PublishPlanOptimized(ctx context.Context, event *PlanOptimizedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
