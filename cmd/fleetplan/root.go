package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"fleetroute/config"
	"fleetroute/internal/app"
	logs "fleetroute/internal/infra/log"
	"fleetroute/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type rootOptions struct {
	configDir string
	pretty    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "fleetplan",
		Short:         "Plan zone-aware fleet routes from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "Directory holding config.yaml (default: search the usual locations)")
	cmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "Indent JSON output")

	cmd.AddCommand(
		newOptimizeCmd(opts),
		newWeatherCmd(opts),
	)

	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configDir != "" {
		return config.NewFromDir(o.configDir)
	}

	return config.New()
}

// usecases is what the commands pull out of the fx graph
type usecases struct {
	fx.In

	Optimize usecase.OptimizeUsecase
	Weather  usecase.WeatherUsecase
}

// withUsecases starts the core graph, runs fn and stops the graph again.
// Logs go to stderr so stdout carries only the JSON result.
func (o *rootOptions) withUsecases(ctx context.Context, fn func(usecases) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}

	var ucs usecases
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, logger),
		app.Core(),
		fx.Populate(&ucs),
	)
	if err := fxApp.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if stopErr := fxApp.Stop(context.WithoutCancel(ctx)); stopErr != nil {
			logger.Warn("Shutdown failed", slog.Any("error", stopErr))
		}
	}()

	return fn(ucs)
}

func (o *rootOptions) writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	if o.pretty {
		encoder.SetIndent("", "  ")
	}

	return errors.WithStack(encoder.Encode(value))
}
