package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/simulate"
	"github.com/spf13/cobra"
)

type traceOptions struct {
	scripts []string
	format  string
	workers int
}

func newTraceCmd() *cobra.Command {
	opts := traceOptions{}
	cmd := &cobra.Command{
		Use:   "trace --script walk.yaml [--script ...]",
		Short: "Replay input scripts headlessly and print the camera trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runTrace(cmd.OutOrStdout(), cfg, opts)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.scripts, "script", "s", nil, "input script YAML (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "csv", "output format: csv or yaml")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.NumCPU(), "parallel simulations")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func runTrace(out io.Writer, cfg *config.ShowcaseConfig, opts traceOptions) error {
	if opts.format != "csv" && opts.format != "yaml" {
		return fmt.Errorf("unknown format %q (want csv or yaml)", opts.format)
	}

	jobs := make([]simulate.Job, 0, len(opts.scripts))
	for _, path := range opts.scripts {
		script, err := simulate.LoadScript(path)
		if err != nil {
			return err
		}
		tour, err := cfg.Tour(script.Tour)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		name := script.Name
		if name == "" {
			name = path
		}
		jobs = append(jobs, simulate.Job{
			Name:      name,
			Waypoints: tour.CameraWaypoints(),
			Script:    script,
			Options:   cfg.Scroll.Options(),
		})
	}

	results := simulate.RunAll(jobs, opts.workers)
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("run %q: %w", r.Name, r.Err)
		}
	}

	if opts.format == "yaml" {
		return simulate.WriteYAML(out, results)
	}
	return simulate.WriteCSV(out, results)
}
