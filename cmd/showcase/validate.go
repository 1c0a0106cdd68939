package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/loader"
	"github.com/spf13/cobra"
)

var errOutsideModel = errors.New("waypoints outside model bounds")

type validateOptions struct {
	model  string
	strict bool
}

func newValidateCmd() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check tours and, given a model, that every waypoint stays inside it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), cfg, loader.NewLoader(loader.BackendTypeGLTF), opts)
		},
	}
	cmd.Flags().StringVar(&opts.model, "model", "", "model to check every tour against, overriding each tour's own model")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a waypoint lies outside the model")
	return cmd
}

// runValidate reports each tour and any waypoint outside its model's padded bounds.
// The configuration itself was already validated by config.Load.
func runValidate(out io.Writer, cfg *config.ShowcaseConfig, ld loader.Loader, opts validateOptions) error {
	outside := 0
	for _, tour := range cfg.Tours {
		fmt.Fprintf(out, "%s: %d waypoints, %d sections\n", tour.Name, len(tour.Waypoints), len(tour.Waypoints)-1)

		path := opts.model
		if path == "" {
			path = cfg.ModelPath(tour)
		}
		if path == "" {
			continue
		}

		b, err := ld.Load(path)
		if err != nil {
			return err
		}
		for i, wp := range tour.CameraWaypoints() {
			if !b.Contains(wp.Position, cfg.BoundsPadding) {
				outside++
				fmt.Fprintf(out, "  warning: waypoint %d at %v is outside %s (padding %v)\n", i, wp.Position, path, cfg.BoundsPadding)
			}
		}
	}

	if outside > 0 && opts.strict {
		return fmt.Errorf("%d %w", outside, errOutsideModel)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
