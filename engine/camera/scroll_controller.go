package camera

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/chewxy/math32"
)

// Default tuning of the scroll-driven path.
const (
	DefaultVelocityDecay   float32 = 0.92
	DefaultVelocityGain    float32 = 0.0001
	DefaultMaxVelocity     float32 = 0.003
	DefaultIdleTimeout             = 500 * time.Millisecond
	DefaultFarLerpSpeed    float32 = 0.04
	DefaultNearLerpSpeed   float32 = 0.06
	DefaultFarThreshold    float32 = 0.1
	DefaultPositionDamping float32 = 0.08
	DefaultLookDamping     float32 = 0.05
	DefaultBobAmplitude    float32 = 0.02
	DefaultBobFrequency    float32 = 6
	DefaultSwayAmplitude   float32 = 0.01
	DefaultSwayFrequency   float32 = 4
	DefaultTouchBlend      float32 = 0.8
	DefaultTouchDamping    float32 = 0.5
	DefaultInertiaGain     float32 = 0.3
	DefaultInertiaDecay    float32 = 0.95
	DefaultInertiaCutoff   float32 = 0.2
)

// ScrollController moves a camera along a fixed waypoint path from one-dimensional scroll
// and touch input. Input integrates into a clamped scroll offset; every frame a smoothed
// offset chases it, the eased path is sampled there, and the camera is damped toward the
// sample. A small bob and sway is layered on while input is active and fades toward the
// end of the path.
//
// All methods are safe to call from the input goroutine and the frame goroutine concurrently.
type ScrollController interface {
	Controller

	// OnScrollDelta feeds one wheel or trackpad event. Positive deltas move forward.
	// Non-finite deltas and input while detached are ignored.
	//
	// Parameters:
	//   - delta: signed magnitude in pixels or device-equivalent units
	OnScrollDelta(delta float32)

	// OnTouchStart begins a touch gesture, clearing the touch accumulator and any running inertia.
	OnTouchStart()

	// OnTouchDrag feeds one touch-move sample. The sample is blended into the touch
	// accumulator and the damped accumulator is fed through the scroll path.
	//
	// Parameters:
	//   - deltaPixels: signed vertical delta, positive forward
	OnTouchDrag(deltaPixels float32)

	// OnTouchEnd ends a touch gesture. If the touch accumulator is above the inertia cutoff,
	// inertia continues the motion one decay step per Update until it falls below the cutoff.
	OnTouchEnd()

	// ScrollTo jumps the scroll offset to a normalized position and clears momentum.
	// The camera still travels there through the usual smoothing.
	//
	// Parameters:
	//   - offset: target offset, clamped to [0, 1]
	ScrollTo(offset float32)

	// ScrollOffset returns the raw input offset in [0, 1].
	ScrollOffset() float32

	// CurrentOffset returns the smoothed offset that indexes the path.
	CurrentOffset() float32

	// Progress returns the value most recently reported to the progress callback.
	//
	// Returns:
	//   - float32: smoothed offset in [0, 1]
	Progress() float32

	// Velocity returns the scroll momentum accumulator.
	Velocity() float32

	// TouchVelocity returns the touch accumulator.
	TouchVelocity() float32

	// IsScrolling reports whether input arrived within the idle timeout.
	IsScrolling() bool

	// IsDecaying reports whether touch inertia is running.
	IsDecaying() bool

	// Section returns the path section the smoothed offset falls in and the un-eased
	// position within it.
	//
	// Returns:
	//   - index: section index in [0, TotalSections)
	//   - localT: position within the section in [0, 1]
	Section() (index int, localT float32)

	// Waypoints returns a copy of the path.
	Waypoints() []Waypoint

	// TotalSections returns the number of sections, one less than the number of waypoints.
	TotalSections() int
}

type scrollControllerImpl struct {
	mu *sync.Mutex

	waypoints []Waypoint
	cam       Pose

	// tuning
	velocityDecay   float32
	velocityGain    float32
	maxVelocity     float32
	idleTimeout     time.Duration
	farLerpSpeed    float32
	nearLerpSpeed   float32
	farThreshold    float32
	positionDamping float32
	lookDamping     float32
	bobAmplitude    float32
	bobFrequency    float32
	swayAmplitude   float32
	swayFrequency   float32
	touchBlend      float32
	touchDamping    float32
	inertiaGain     float32
	inertiaDecay    float32
	inertiaCutoff   float32
	referenceFPS    float32
	snapOnAttach    bool
	ease            func(float32) float32
	scheduler       Scheduler

	onProgress func(float32)
	onEnd      func()

	// scroll state, reset on Attach
	scrollOffset  float32
	currentOffset float32
	velocity      float32
	touchVelocity float32
	isScrolling   bool
	isDecaying    bool
	idleTimer     Timer
	idleGen       uint64
	lastElapsed   float32
	hasFrame      bool
}

var _ ScrollController = &scrollControllerImpl{}

// NewScrollController creates a ScrollController for the given path.
// The waypoints are copied. A path with fewer than two waypoints is accepted but never
// moves the camera.
//
// Parameters:
//   - waypoints: the camera path
//   - options: functional options to tune the controller
//
// Returns:
//   - ScrollController: the new, detached controller
func NewScrollController(waypoints []Waypoint, options ...ScrollControllerOption) ScrollController {
	sc := &scrollControllerImpl{
		mu:        &sync.Mutex{},
		waypoints: append([]Waypoint(nil), waypoints...),

		velocityDecay:   DefaultVelocityDecay,
		velocityGain:    DefaultVelocityGain,
		maxVelocity:     DefaultMaxVelocity,
		idleTimeout:     DefaultIdleTimeout,
		farLerpSpeed:    DefaultFarLerpSpeed,
		nearLerpSpeed:   DefaultNearLerpSpeed,
		farThreshold:    DefaultFarThreshold,
		positionDamping: DefaultPositionDamping,
		lookDamping:     DefaultLookDamping,
		bobAmplitude:    DefaultBobAmplitude,
		bobFrequency:    DefaultBobFrequency,
		swayAmplitude:   DefaultSwayAmplitude,
		swayFrequency:   DefaultSwayFrequency,
		touchBlend:      DefaultTouchBlend,
		touchDamping:    DefaultTouchDamping,
		inertiaGain:     DefaultInertiaGain,
		inertiaDecay:    DefaultInertiaDecay,
		inertiaCutoff:   DefaultInertiaCutoff,
		snapOnAttach:    true,
		ease:            common.SmoothStep,
		scheduler:       RealTimeScheduler,
	}

	for _, option := range options {
		option(sc)
	}
	return sc
}

// --- Controller ---

func (sc *scrollControllerImpl) Attach(cam Pose) error {
	if cam == nil {
		return ErrNilCamera
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.stopIdle()
	sc.scrollOffset = 0
	sc.currentOffset = 0
	sc.velocity = 0
	sc.touchVelocity = 0
	sc.isScrolling = false
	sc.isDecaying = false
	sc.hasFrame = false
	sc.lastElapsed = 0
	sc.cam = cam

	if sc.snapOnAttach && len(sc.waypoints) >= 2 {
		cam.SetPosition(sc.waypoints[0].Position)
		cam.LookAt(sc.waypoints[0].LookAt)
	}
	return nil
}

func (sc *scrollControllerImpl) Detach() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.stopIdle()
	sc.isScrolling = false
	sc.isDecaying = false
	sc.touchVelocity = 0
	sc.cam = nil
}

func (sc *scrollControllerImpl) Attached() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.cam != nil
}

func (sc *scrollControllerImpl) Update(elapsed float32) {
	sc.mu.Lock()
	if sc.cam == nil || !common.IsFinite(elapsed) || (sc.hasFrame && elapsed == sc.lastElapsed) {
		sc.mu.Unlock()
		return
	}
	var dt float32
	if sc.hasFrame && elapsed > sc.lastElapsed {
		dt = elapsed - sc.lastElapsed
	}
	sc.hasFrame = true
	sc.lastElapsed = elapsed

	sc.stepInertia()

	if len(sc.waypoints) < 2 {
		sc.mu.Unlock()
		return
	}

	speed := sc.nearLerpSpeed
	if math32.Abs(sc.scrollOffset-sc.currentOffset) > sc.farThreshold {
		speed = sc.farLerpSpeed
	}
	sc.currentOffset = common.Clamp(common.Lerp(sc.currentOffset, sc.scrollOffset, sc.damp(speed, dt)), 0, 1)

	sample := samplePath(sc.waypoints, sc.currentOffset, sc.ease)
	target := sample.position
	if sc.isScrolling {
		fade := 1 - sc.currentOffset
		target[0] += math32.Sin(elapsed*sc.swayFrequency) * sc.swayAmplitude * fade
		target[1] += math32.Sin(elapsed*sc.bobFrequency) * sc.bobAmplitude * fade
	}

	pos := common.LerpVec3(sc.cam.Position(), target, sc.damp(sc.positionDamping, dt))
	sc.cam.SetPosition(pos)

	forward := sc.cam.Forward()
	desired := common.NormalizeOr(sample.lookAt.Sub(pos), forward)
	dir := common.NormalizeOr(common.LerpVec3(forward, desired, sc.damp(sc.lookDamping, dt)), desired)
	sc.cam.LookAt(pos.Add(dir))

	progress := sc.currentOffset
	onProgress := sc.onProgress
	sc.mu.Unlock()

	if onProgress != nil {
		onProgress(progress)
	}
}

// --- input ---

func (sc *scrollControllerImpl) OnScrollDelta(delta float32) {
	if !common.IsFinite(delta) {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.cam == nil {
		return
	}
	sc.scrollBy(delta)
}

func (sc *scrollControllerImpl) OnTouchStart() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.cam == nil {
		return
	}
	sc.touchVelocity = 0
	sc.isDecaying = false
}

func (sc *scrollControllerImpl) OnTouchDrag(deltaPixels float32) {
	if !common.IsFinite(deltaPixels) {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.cam == nil {
		return
	}
	sc.touchVelocity = sc.touchVelocity*sc.touchBlend + deltaPixels*(1-sc.touchBlend)
	sc.scrollBy(sc.touchVelocity * sc.touchDamping)
}

func (sc *scrollControllerImpl) OnTouchEnd() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.cam == nil {
		return
	}
	if math32.Abs(sc.touchVelocity) > sc.inertiaCutoff {
		sc.isDecaying = true
	}
}

func (sc *scrollControllerImpl) ScrollTo(offset float32) {
	if !common.IsFinite(offset) {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.cam == nil {
		return
	}
	sc.scrollOffset = common.Clamp(offset, 0, 1)
	sc.velocity = 0
	sc.touchVelocity = 0
	sc.isDecaying = false
}

// --- state accessors ---

func (sc *scrollControllerImpl) ScrollOffset() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.scrollOffset
}

func (sc *scrollControllerImpl) CurrentOffset() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.currentOffset
}

func (sc *scrollControllerImpl) Progress() float32 {
	return sc.CurrentOffset()
}

func (sc *scrollControllerImpl) Velocity() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.velocity
}

func (sc *scrollControllerImpl) TouchVelocity() float32 {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.touchVelocity
}

func (sc *scrollControllerImpl) IsScrolling() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.isScrolling
}

func (sc *scrollControllerImpl) IsDecaying() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.isDecaying
}

func (sc *scrollControllerImpl) Section() (int, float32) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if len(sc.waypoints) < 2 {
		return 0, 0
	}
	s := samplePath(sc.waypoints, sc.currentOffset, sc.ease)
	return s.index, s.localT
}

func (sc *scrollControllerImpl) Waypoints() []Waypoint {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return append([]Waypoint(nil), sc.waypoints...)
}

func (sc *scrollControllerImpl) TotalSections() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if len(sc.waypoints) < 2 {
		return 0
	}
	return len(sc.waypoints) - 1
}

// --- internal helpers ---

// scrollBy integrates one delta into the momentum and the offset, then restarts the idle timer.
// Caller must hold the mutex.
func (sc *scrollControllerImpl) scrollBy(delta float32) {
	sc.velocity = sc.velocity*sc.velocityDecay + delta*sc.velocityGain
	sc.velocity = common.Clamp(sc.velocity, -sc.maxVelocity, sc.maxVelocity)
	sc.scrollOffset = common.Clamp(sc.scrollOffset+sc.velocity, 0, 1)
	sc.isScrolling = true
	sc.restartIdle()
}

// restartIdle replaces the pending idle timer. A timer only clears isScrolling if no newer
// timer was started and no detach happened after it was scheduled.
// Caller must hold the mutex.
func (sc *scrollControllerImpl) restartIdle() {
	sc.stopIdle()
	gen := sc.idleGen
	sc.idleTimer = sc.scheduler(sc.idleTimeout, func() {
		sc.mu.Lock()
		defer sc.mu.Unlock()
		if sc.idleGen != gen {
			return
		}
		sc.isScrolling = false
		sc.idleTimer = nil
	})
}

// stopIdle cancels the pending idle timer and invalidates any callback already in flight.
// Caller must hold the mutex.
func (sc *scrollControllerImpl) stopIdle() {
	if sc.idleTimer != nil {
		sc.idleTimer.Stop()
		sc.idleTimer = nil
	}
	sc.idleGen++
}

// stepInertia applies one inertia step while the touch accumulator is above the cutoff.
// Caller must hold the mutex.
func (sc *scrollControllerImpl) stepInertia() {
	if !sc.isDecaying {
		return
	}
	if math32.Abs(sc.touchVelocity) <= sc.inertiaCutoff {
		sc.isDecaying = false
		return
	}
	sc.scrollBy(sc.touchVelocity * sc.inertiaGain)
	sc.touchVelocity *= sc.inertiaDecay
}

// damp scales a per-frame factor to the frame's duration when a reference frame rate is set.
func (sc *scrollControllerImpl) damp(k, dt float32) float32 {
	return common.FrameDamping(k, dt, sc.referenceFPS)
}
