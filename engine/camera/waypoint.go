package camera

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Waypoint is one control point of a scripted camera path.
// LookAt is only used to derive a look direction and may lie far outside the scene.
// Speed is carried with the path data but does not affect interpolation.
type Waypoint struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Speed    float32
}

// pathSample is the evaluated trajectory at a fractional offset.
type pathSample struct {
	position mgl32.Vec3
	lookAt   mgl32.Vec3
	index    int
	localT   float32
}

// samplePath evaluates the waypoint sequence at offset in [0, 1].
// The offset is scaled by the number of sections and split into a section index and a local
// parameter; the local parameter is passed through ease and both the position and the look
// target are interpolated between the section's endpoints. At offset 1 the last waypoint is returned.
// Caller guarantees len(waypoints) >= 2.
func samplePath(waypoints []Waypoint, offset float32, ease func(float32) float32) pathSample {
	total := len(waypoints) - 1
	t := common.Clamp(offset, 0, 1) * float32(total)
	index := int(t)
	localT := t - float32(index)
	if index >= total {
		index = total - 1
		localT = 1
	}

	eased := ease(localT)
	from, to := waypoints[index], waypoints[index+1]
	return pathSample{
		position: common.LerpVec3(from.Position, to.Position, eased),
		lookAt:   common.LerpVec3(from.LookAt, to.LookAt, eased),
		index:    index,
		localT:   localT,
	}
}

// SamplePath returns the eased position and look target of a waypoint path at offset,
// without any smoothing. It is the trajectory that a ScrollController chases.
//
// Parameters:
//   - waypoints: the path, at least two entries
//   - offset: normalized offset, clamped to [0, 1]
//
// Returns:
//   - position: interpolated camera position
//   - lookAt: interpolated look target
//   - error: ErrTooFewWaypoints if the path has fewer than two entries
func SamplePath(waypoints []Waypoint, offset float32) (position, lookAt mgl32.Vec3, err error) {
	if len(waypoints) < 2 {
		return mgl32.Vec3{}, mgl32.Vec3{}, ErrTooFewWaypoints
	}
	s := samplePath(waypoints, offset, common.SmoothStep)
	return s.position, s.lookAt, nil
}
