package simulate

import (
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
)

// Sample is the controller and camera state recorded after one simulated frame.
type Sample struct {
	Frame         int        `yaml:"frame"`
	Elapsed       float32    `yaml:"elapsed"`
	ScrollOffset  float32    `yaml:"scroll_offset"`
	CurrentOffset float32    `yaml:"current_offset"`
	Velocity      float32    `yaml:"velocity"`
	TouchVelocity float32    `yaml:"touch_velocity"`
	Scrolling     bool       `yaml:"scrolling"`
	Decaying      bool       `yaml:"decaying"`
	Section       int        `yaml:"section"`
	LocalT        float32    `yaml:"local_t"`
	Position      [3]float32 `yaml:"position,flow"`
	Forward       [3]float32 `yaml:"forward,flow"`
}

// Job is one independent simulation for RunAll.
type Job struct {
	Name      string
	Waypoints []camera.Waypoint
	Script    Script
	Options   []camera.ScrollControllerOption
}

// Result pairs a job's name with its samples or error.
type Result struct {
	Name    string   `yaml:"name"`
	Samples []Sample `yaml:"samples,omitempty"`
	Err     error    `yaml:"-"`
}

// Run plays script against a fresh scroll controller attached to a headless camera.
// Frame f runs at elapsed f/FPS seconds: the frame's events are applied, the controller is
// updated, the state is sampled, and then simulated time advances to the next frame so any
// idle timeout that falls due fires before the next frame's input.
//
// Parameters:
//   - waypoints: the tour
//   - script: the input script, validated by Run
//   - options: extra controller options; the scheduler is always the simulation clock
//
// Returns:
//   - []Sample: one sample per frame
//   - error: error if the script is invalid or the controller cannot attach
func Run(waypoints []camera.Waypoint, script Script, options ...camera.ScrollControllerOption) ([]Sample, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("tour %q: %w", script.Tour, camera.ErrTooFewWaypoints)
	}

	clock := NewFrameClock()
	opts := append(append([]camera.ScrollControllerOption{}, options...), camera.WithScheduler(clock.Schedule))
	ctrl := camera.NewScrollController(waypoints, opts...)

	cam := camera.NewCamera()
	if err := ctrl.Attach(cam); err != nil {
		return nil, err
	}
	defer ctrl.Detach()

	fps := float64(script.FPS)
	samples := make([]Sample, 0, script.Frames)
	for f := 0; f < script.Frames; f++ {
		for _, ev := range script.eventsAt(f) {
			apply(ctrl, ev)
		}

		elapsed := float32(float64(f) / fps)
		ctrl.Update(elapsed)

		section, localT := ctrl.Section()
		samples = append(samples, Sample{
			Frame:         f,
			Elapsed:       elapsed,
			ScrollOffset:  ctrl.ScrollOffset(),
			CurrentOffset: ctrl.CurrentOffset(),
			Velocity:      ctrl.Velocity(),
			TouchVelocity: ctrl.TouchVelocity(),
			Scrolling:     ctrl.IsScrolling(),
			Decaying:      ctrl.IsDecaying(),
			Section:       section,
			LocalT:        localT,
			Position:      cam.Position(),
			Forward:       cam.Forward(),
		})

		clock.AdvanceTo(time.Duration(float64(f+1) * float64(time.Second) / fps))
	}
	return samples, nil
}

// RunAll runs every job on a worker pool and returns results in job order.
// Each job owns its controller, camera and clock, so jobs share no state.
//
// Parameters:
//   - jobs: the simulations to run
//   - workers: pool size; values below 1 run one worker
//
// Returns:
//   - []Result: one result per job, index-aligned with jobs
func RunAll(jobs []Job, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	pool := worker.NewDynamicWorkerPool(workers, len(jobs), 1*time.Second)

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		idx := i
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				job := jobs[idx]
				samples, err := Run(job.Waypoints, job.Script, job.Options...)
				results[idx] = Result{Name: job.Name, Samples: samples, Err: err}
				return nil, nil
			},
		})
	}
	wg.Wait()
	return results
}

// apply forwards one scripted event to the controller.
func apply(ctrl camera.ScrollController, ev Event) {
	switch ev.Kind {
	case EventWheel:
		ctrl.OnScrollDelta(ev.Delta)
	case EventTouchStart:
		ctrl.OnTouchStart()
	case EventTouchDrag:
		ctrl.OnTouchDrag(ev.Delta)
	case EventTouchEnd:
		ctrl.OnTouchEnd()
	case EventJump:
		ctrl.ScrollTo(ev.Delta)
	}
}
