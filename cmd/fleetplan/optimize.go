package main

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"fleetroute/internal/delivery/api/router/handler"
	"fleetroute/internal/delivery/api/validator"
	"fleetroute/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type optimizeOptions struct {
	input       string
	skipWeather bool
	departure   string
}

func newOptimizeCmd(root *rootOptions) *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize a fleet snapshot and print the route data as JSON",
		Long: `Reads a snapshot with the same shape as the POST /api/v1/optimize body
({vehicles, jobs, zones, departureTime, includeWeather}) and prints the
resulting route data.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := opts.readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}

			return root.withUsecases(cmd.Context(), func(ucs usecases) error {
				routeData, err := ucs.Optimize.Optimize(cmd.Context(), input)
				if err != nil {
					return err
				}

				return root.writeJSON(cmd.OutOrStdout(), routeData)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Snapshot file, - for stdin")
	cmd.Flags().BoolVar(&opts.skipWeather, "skip-weather", false, "Skip the weather risk analysis")
	cmd.Flags().StringVar(&opts.departure, "departure", "", "Departure time (RFC 3339), overrides the snapshot")

	return cmd
}

// readInput decodes and validates the snapshot, then applies flag overrides
func (o *optimizeOptions) readInput(stdin io.Reader) (*usecase.OptimizeInput, error) {
	reader := stdin
	if o.input != "-" {
		file, err := os.Open(o.input)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open snapshot")
		}
		defer file.Close()
		reader = file
	}

	var req handler.OptimizeRequest
	if err := json.NewDecoder(reader).Decode(&req); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}
	if err := validator.New().Validate(&req); err != nil {
		return nil, errors.Wrap(err, "invalid snapshot")
	}

	input := req.ToInput()
	if o.skipWeather {
		input.IncludeWeather = false
	}
	if o.departure != "" {
		departure, err := time.Parse(time.RFC3339, o.departure)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --departure")
		}
		input.DepartureTime = departure
	}

	return input, nil
}
