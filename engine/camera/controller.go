package camera

import (
	"errors"
	"time"
)

var (
	// ErrNilCamera is returned by Attach when no camera is supplied.
	ErrNilCamera = errors.New("camera: nil camera")

	// ErrTooFewWaypoints is returned when a path has fewer than two waypoints.
	ErrTooFewWaypoints = errors.New("camera: path needs at least two waypoints")
)

// Controller drives a camera pose from user input once per frame.
// A controller is inert until attached; attaching creates fresh input state and detaching
// releases every timer and in-flight motion the controller started.
type Controller interface {
	// Attach binds the controller to a camera and resets its input state.
	// Attaching an already attached controller rebinds it to cam.
	//
	// Parameters:
	//   - cam: the camera pose to drive
	//
	// Returns:
	//   - error: ErrNilCamera if cam is nil
	Attach(cam Pose) error

	// Detach cancels pending timers, stops inertia and releases the camera.
	// Safe to call more than once.
	Detach()

	// Attached reports whether the controller currently drives a camera.
	//
	// Returns:
	//   - bool: true between Attach and Detach
	Attached() bool

	// Update advances the controller by one frame and writes the camera pose.
	//
	// Parameters:
	//   - elapsed: seconds since a fixed epoch, as supplied by the frame loop
	Update(elapsed float32)
}

// Timer is a cancellable pending callback returned by a Scheduler.
type Timer interface {
	// Stop prevents the callback from firing if it has not fired yet.
	//
	// Returns:
	//   - bool: true if the call stopped the timer
	Stop() bool
}

// Scheduler runs f once after d. The default scheduler uses time.AfterFunc;
// simulations and tests substitute a clock that advances with frames.
type Scheduler func(d time.Duration, f func()) Timer

// RealTimeScheduler schedules callbacks on the wall clock.
func RealTimeScheduler(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
