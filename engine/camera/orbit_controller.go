package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitController orbits the camera around a target using spherical coordinates
// (radius, azimuth, elevation). Input moves goal angles and a goal radius, all clamped to
// bounds; every frame the camera's actual angles and radius follow their goals on
// critically damped springs. There is no panning.
type OrbitController interface {
	Controller

	// Rotate turns the goal orientation by a pointer drag.
	// Dragging the full viewport height turns by 2π times the rotate speed.
	//
	// Parameters:
	//   - dx: horizontal drag in pixels
	//   - dy: vertical drag in pixels
	Rotate(dx, dy float32)

	// Zoom scales the goal radius. Positive delta moves closer to the target.
	//
	// Parameters:
	//   - delta: wheel steps, scaled by the zoom speed
	Zoom(delta float32)

	// OrbitLeft turns the goal azimuth left by one keyboard step.
	OrbitLeft()

	// OrbitRight turns the goal azimuth right by one keyboard step.
	OrbitRight()

	// OrbitUp raises the goal elevation by one keyboard step, clamped to the maximum elevation.
	OrbitUp()

	// OrbitDown lowers the goal elevation by one keyboard step, clamped to the minimum elevation.
	OrbitDown()

	// FrameBounds centres the target on an axis-aligned box and scales the radius bounds to it.
	//
	// Parameters:
	//   - min: box minimum corner
	//   - max: box maximum corner
	FrameBounds(min, max mgl32.Vec3)

	// Target returns the orbit pivot.
	Target() mgl32.Vec3

	// Radius returns the current, damped distance from the target.
	Radius() float32

	// Azimuth returns the current, damped horizontal angle around the Y axis in radians.
	Azimuth() float32

	// Elevation returns the current, damped angle above the horizontal plane in radians.
	Elevation() float32

	// Goal returns the angles and radius the camera is moving toward.
	//
	// Returns:
	//   - radius: goal distance from the target
	//   - azimuth: goal horizontal angle in radians
	//   - elevation: goal vertical angle in radians
	Goal() (radius, azimuth, elevation float32)

	// RadiusBounds returns the allowed distance range.
	RadiusBounds() (min, max float32)

	// ElevationBounds returns the allowed elevation range in radians.
	ElevationBounds() (min, max float32)
}

// orbitAxis is one damped spherical coordinate.
type orbitAxis struct {
	pos  float64
	vel  float64
	goal float64
}

func (a *orbitAxis) step(s harmonica.Spring) {
	a.pos, a.vel = s.Update(a.pos, a.vel, a.goal)
}

func (a *orbitAxis) settle() {
	a.pos = a.goal
	a.vel = 0
}

type orbitControllerImpl struct {
	mu *sync.Mutex

	cam    Pose
	target mgl32.Vec3

	radius    orbitAxis
	azimuth   orbitAxis
	elevation orbitAxis

	// constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	// input scaling
	rotateSpeed    float32
	zoomSpeed      float32
	orbitSpeed     float32
	viewportHeight float32

	// damping
	spring       harmonica.Spring
	frequency    float64
	dampingRatio float64
	fps          int

	startPosition *mgl32.Vec3
	lastElapsed   float32
	hasFrame      bool
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates an orbit controller.
// Defaults match a handheld apartment view: distance between 2 and 10 units, polar angle
// limited to π/2.2 from straight up, starting from (5, 4, 5) around the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the new, detached controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	start := mgl32.Vec3{5, 4, 5}
	oc := &orbitControllerImpl{
		mu: &sync.Mutex{},

		minRadius:    2,
		maxRadius:    10,
		minElevation: float32(math.Pi/2 - math.Pi/2.2),
		maxElevation: float32(math.Pi/2 - 0.01),

		rotateSpeed:    0.4,
		zoomSpeed:      0.4,
		orbitSpeed:     0.05,
		viewportHeight: 800,

		frequency:    6,
		dampingRatio: 1,
		fps:          60,

		startPosition: &start,
	}

	for _, option := range options {
		option(oc)
	}

	oc.spring = harmonica.NewSpring(harmonica.FPS(oc.fps), oc.frequency, oc.dampingRatio)
	if oc.startPosition != nil {
		oc.setGoalFromPosition(*oc.startPosition)
	}
	oc.clampGoals()
	oc.radius.settle()
	oc.azimuth.settle()
	oc.elevation.settle()
	return oc
}

// --- Controller ---

func (oc *orbitControllerImpl) Attach(cam Pose) error {
	if cam == nil {
		return ErrNilCamera
	}

	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.cam = cam
	oc.hasFrame = false
	oc.radius.settle()
	oc.azimuth.settle()
	oc.elevation.settle()
	oc.writePose()
	return nil
}

func (oc *orbitControllerImpl) Detach() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.cam = nil
	oc.radius.vel = 0
	oc.azimuth.vel = 0
	oc.elevation.vel = 0
}

func (oc *orbitControllerImpl) Attached() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.cam != nil
}

func (oc *orbitControllerImpl) Update(elapsed float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	if oc.cam == nil || !common.IsFinite(elapsed) || (oc.hasFrame && elapsed == oc.lastElapsed) {
		return
	}
	oc.hasFrame = true
	oc.lastElapsed = elapsed

	oc.radius.step(oc.spring)
	oc.azimuth.step(oc.spring)
	oc.elevation.step(oc.spring)
	oc.writePose()
}

// --- input ---

func (oc *orbitControllerImpl) Rotate(dx, dy float32) {
	if !common.IsFinite(dx) || !common.IsFinite(dy) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()

	scale := 2 * math.Pi / float64(oc.viewportHeight) * float64(oc.rotateSpeed)
	oc.azimuth.goal -= float64(dx) * scale
	oc.elevation.goal += float64(dy) * scale
	oc.clampGoals()
}

func (oc *orbitControllerImpl) Zoom(delta float32) {
	if !common.IsFinite(delta) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.radius.goal *= math.Pow(0.95, float64(delta*oc.zoomSpeed))
	oc.clampGoals()
}

func (oc *orbitControllerImpl) OrbitLeft() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.azimuth.goal -= float64(oc.orbitSpeed)
}

func (oc *orbitControllerImpl) OrbitRight() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.azimuth.goal += float64(oc.orbitSpeed)
}

func (oc *orbitControllerImpl) OrbitUp() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.elevation.goal += float64(oc.orbitSpeed)
	oc.clampGoals()
}

func (oc *orbitControllerImpl) OrbitDown() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.elevation.goal -= float64(oc.orbitSpeed)
	oc.clampGoals()
}

func (oc *orbitControllerImpl) FrameBounds(min, max mgl32.Vec3) {
	if !common.IsFiniteVec3(min) || !common.IsFiniteVec3(max) {
		return
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()

	oc.target = min.Add(max).Mul(0.5)
	size := max.Sub(min).Len()
	if size > 1e-6 {
		oc.minRadius = size * 0.2
		oc.maxRadius = size * 1.5
	}
	oc.clampGoals()
	if oc.cam != nil {
		oc.writePose()
	}
}

// --- state accessors ---

func (oc *orbitControllerImpl) Target() mgl32.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControllerImpl) Radius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return float32(oc.radius.pos)
}

func (oc *orbitControllerImpl) Azimuth() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return float32(oc.azimuth.pos)
}

func (oc *orbitControllerImpl) Elevation() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return float32(oc.elevation.pos)
}

func (oc *orbitControllerImpl) Goal() (float32, float32, float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return float32(oc.radius.goal), float32(oc.azimuth.goal), float32(oc.elevation.goal)
}

func (oc *orbitControllerImpl) RadiusBounds() (float32, float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.minRadius, oc.maxRadius
}

func (oc *orbitControllerImpl) ElevationBounds() (float32, float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.minElevation, oc.maxElevation
}

// --- internal helpers ---

// clampGoals restricts the goal radius and elevation to their bounds.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) clampGoals() {
	oc.radius.goal = float64(common.Clamp(float32(oc.radius.goal), oc.minRadius, oc.maxRadius))
	oc.elevation.goal = float64(common.Clamp(float32(oc.elevation.goal), oc.minElevation, oc.maxElevation))
}

// setGoalFromPosition converts a world-space position into goal spherical coordinates around the target.
// Caller must hold the mutex or own the controller exclusively.
func (oc *orbitControllerImpl) setGoalFromPosition(p mgl32.Vec3) {
	d := p.Sub(oc.target)
	r := d.Len()
	if r < 1e-6 {
		return
	}
	oc.radius.goal = float64(r)
	oc.azimuth.goal = math.Atan2(float64(d[0]), float64(d[2]))
	oc.elevation.goal = math.Asin(float64(d[1] / r))
}

// position computes the camera position from the current spherical coordinates.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) position() mgl32.Vec3 {
	cosElev := math.Cos(oc.elevation.pos)
	sinElev := math.Sin(oc.elevation.pos)
	cosAzim := math.Cos(oc.azimuth.pos)
	sinAzim := math.Sin(oc.azimuth.pos)
	r := oc.radius.pos

	return oc.target.Add(mgl32.Vec3{
		float32(r * cosElev * sinAzim),
		float32(r * sinElev),
		float32(r * cosElev * cosAzim),
	})
}

// writePose moves the attached camera to the current spherical coordinates, facing the target.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) writePose() {
	oc.cam.SetPosition(oc.position())
	oc.cam.LookAt(oc.target)
}
