// Package app assembles the fx graph shared by the server and the CLI.
package app

import (
	"context"

	"fleetroute/internal/delivery/api"
	"fleetroute/internal/delivery/api/router/handler"
	"fleetroute/internal/infra/cache"
	"fleetroute/internal/infra/pubsub"
	"fleetroute/internal/infra/upstream"
	"fleetroute/internal/usecase/impl"

	"go.uber.org/fx"
)

// Core provides everything needed to run an optimize call. The caller
// supplies *config.Config and *slog.Logger.
func Core() fx.Option {
	return fx.Options(
		injectInfra(),
		injectUpstream(),
		injectUsecase(),
	)
}

// Server adds the HTTP delivery on top of Core.
func Server() fx.Option {
	return fx.Options(
		Core(),
		injectHandler(),
		injectDelivery(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		context.Background,
		cache.NewForecastCache,
		pubsub.NewEventPublisher,
	)
}

func injectUpstream() fx.Option {
	return fx.Provide(
		upstream.NewSnapClient,
		upstream.NewMatrixClient,
		upstream.NewSolverClient,
		upstream.NewDirectionsClient,
		upstream.NewWeatherClient,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewWeatherAnalyzer,
		impl.NewOptimizeService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewOptimizeHandler,
		handler.NewWeatherHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}
