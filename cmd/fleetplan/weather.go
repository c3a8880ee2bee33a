package main

import (
	"strconv"
	"strings"

	"fleetroute/internal/domain/constants"
	"fleetroute/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type weatherOptions struct {
	mode   string
	bounds string
}

func newWeatherCmd(root *rootOptions) *cobra.Command {
	opts := &weatherOptions{}

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Print a route-independent weather overview as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := &usecase.OverviewInput{Mode: opts.mode}
			if opts.bounds != "" {
				bound, err := parseBounds(opts.bounds)
				if err != nil {
					return err
				}
				input.Bounds = bound
			}

			return root.withUsecases(cmd.Context(), func(ucs usecases) error {
				points, err := ucs.Weather.Overview(cmd.Context(), input)
				if err != nil {
					return err
				}

				return root.writeJSON(cmd.OutOrStdout(), points)
			})
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", constants.OverviewModeGrid, "Sampling mode: grid or reference")
	cmd.Flags().StringVar(&opts.bounds, "bounds", "", "Grid bounds as minLon,minLat,maxLon,maxLat")

	return cmd
}

// parseBounds reads "minLon,minLat,maxLon,maxLat"
func parseBounds(value string) (orb.Bound, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return orb.Bound{}, errors.Errorf("bounds need 4 comma separated values, got %d", len(parts))
	}

	var numbers [4]float64
	for i, part := range parts {
		number, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return orb.Bound{}, errors.Wrapf(err, "invalid bounds value %q", part)
		}
		numbers[i] = number
	}

	return orb.Bound{
		Min: orb.Point{numbers[0], numbers[1]},
		Max: orb.Point{numbers[2], numbers[3]},
	}, nil
}
