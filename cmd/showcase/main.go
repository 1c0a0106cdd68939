package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "showcase",
		Short: "Scroll-driven walk-through viewer",
		Long: `showcase - scroll-driven walk-through viewer

Walks a camera along a waypoint tour as you scroll, with an orbit view for
free inspection.

Controls (view):
  Wheel / drag     - walk the tour (scroll view), zoom / rotate (orbit view)
  Up/Down          - one wheel step back / forward, or orbit up / down
  Left/Right       - orbit left / right
  Space            - jump to the next waypoint
  Home/End         - jump to the start / end of the tour
  Tab              - swap scroll and orbit views
  R                - reset the active view
  P                - toggle profiler output
  Esc              - quit`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "showcase YAML file (defaults to the built-in apartment tour)")

	root.AddCommand(newViewCmd(), newTraceCmd(), newValidateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
