package main

import (
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/loader"
	"github.com/Carmen-Shannon/oxy-showcase/engine/profiler"
	"github.com/Carmen-Shannon/oxy-showcase/engine/renderer"
	"github.com/Carmen-Shannon/oxy-showcase/engine/window"
	"github.com/spf13/cobra"
)

type viewOptions struct {
	tour     string
	mode     string
	profile  bool
	software bool
	tickRate float64
}

func newViewCmd() *cobra.Command {
	opts := viewOptions{}
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.tour, "tour", "t", "", "tour to walk (defaults to the configured default tour)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "scroll", "starting view: scroll or orbit")
	cmd.Flags().BoolVar(&opts.profile, "profile", false, "log frame rate and memory once per second")
	cmd.Flags().BoolVar(&opts.software, "software", false, "force a software rendering adapter")
	cmd.Flags().Float64Var(&opts.tickRate, "tick-rate", 60, "controller updates per second")
	return cmd
}

func runView(opts viewOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	tour, err := cfg.Tour(opts.tour)
	if err != nil {
		return err
	}
	mode, err := parseMode(opts.mode)
	if err != nil {
		return err
	}

	w := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithPixelsPerLine(cfg.Window.PixelsPerLine),
	)

	cam := camera.NewCamera(cfg.Camera.Options(float32(w.Width()) / float32(w.Height()))...)
	waypoints := tour.CameraWaypoints()

	r := renderer.NewRenderer(w.SurfaceDescriptor(), w.Width(), w.Height(), rendererOptions(cfg.Window, opts.software)...)
	defer r.Release()
	r.SetPath(waypoints)

	orbitOpts := append(cfg.Orbit.Options(), camera.WithViewportHeight(float32(w.Height())))
	orbit := camera.NewOrbitController(orbitOpts...)
	if path := cfg.ModelPath(tour); path != "" {
		if b, err := loader.NewLoader(loader.BackendTypeGLTF).Load(path); err != nil {
			log.Printf("[Viewer] orbit view keeps configured framing: %v", err)
		} else {
			orbit.FrameBounds(b.Min, b.Max)
			log.Printf("[Viewer] orbit view framed on %s", path)
		}
	}

	v := newViewer(
		cam,
		camera.NewScrollController(waypoints, cfg.Scroll.Options()...),
		orbit,
		tour.Name,
		cfg.Window.PixelsPerLine,
	)
	if err := v.start(mode); err != nil {
		return fmt.Errorf("failed to attach %s controller: %w", mode, err)
	}
	defer v.detach()

	eng := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithTickRate(opts.tickRate),
		engine.WithProfiling(opts.profile),
		engine.WithProfiler(profiler.NewProfiler()),
	)

	profiling := opts.profile
	v.onQuit = func() { _ = w.Close() }
	v.onProfile = func() {
		profiling = !profiling
		if profiling {
			eng.EnableProfiler()
		} else {
			eng.DisableProfiler()
		}
	}

	w.SetScrollCallback(v.handleScroll)
	w.SetKeyDownCallback(v.handleKey)
	w.SetPointerDownCallback(v.pointerDown)
	w.SetPointerMoveCallback(v.pointerMove)
	w.SetPointerUpCallback(v.pointerUp)
	w.SetUpdateCallback(func() {
		if t, changed := v.title(); changed {
			w.SetTitle(t)
		}
	})

	eng.SetTickCallback(func(elapsed, _ float32) {
		v.tick(elapsed)
	})
	eng.SetRenderCallback(func(_ float32) {
		p, _ := v.progress()
		if err := r.Render(cam.ViewProjectionMatrix(), p); err != nil {
			log.Printf("[Viewer] render failed: %v", err)
		}
	})

	log.Printf("[Viewer] tour %q: %d waypoints, starting in %s view", tour.Name, len(waypoints), mode)
	eng.Run()
	return nil
}

func rendererOptions(wc config.WindowConfig, software bool) []renderer.RendererBuilderOption {
	present := renderer.PresentModeUncapped
	if wc.VSync {
		present = renderer.PresentModeVSync
	}
	msaa := renderer.MSAAOff
	if wc.MSAA {
		msaa = renderer.MSAA4x
	}
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(present),
		renderer.WithMSAA(msaa),
		renderer.WithForceSoftwareRenderer(software),
		renderer.WithPathStyle(renderer.DefaultPathStyle()),
	}
}
