package main

import (
	"context"
	"log/slog"
	"os"

	"fleetroute/config"
	"fleetroute/internal/app"
	"fleetroute/internal/delivery"
	logs "fleetroute/internal/infra/log"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
		),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		app.Server(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
