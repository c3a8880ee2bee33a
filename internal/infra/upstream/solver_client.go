package upstream

import (
	"context"
	"log/slog"
	"net/http"

	"fleetroute/config"
	"fleetroute/internal/domain/constants"
	domainerrors "fleetroute/internal/domain/errors"
	"fleetroute/internal/domain/service"
)

// solverClient implements service.RouteSolver
type solverClient struct {
	client *RedundantClient
}

// NewSolverClient creates the vehicle routing solver client
func NewSolverClient(cfg *config.Config, logger *slog.Logger) service.RouteSolver {
	return &solverClient{client: NewRedundantClient(constants.UpstreamSolver, cfg.Upstream.Solver, logger)}
}

// Solve posts the problem and returns the solver's routes.
func (c *solverClient) Solve(ctx context.Context, request *service.SolveRequest) (*service.SolveResponse, error) {
	var resp service.SolveResponse
	if err := c.client.Do(ctx, &Request{Method: http.MethodPost, Body: request}, &resp); err != nil {
		return nil, domainerrors.NewUpstreamError(c.client.Service(), err)
	}

	return &resp, nil
}
