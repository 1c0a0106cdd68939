package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTarget sets the orbit pivot.
//
// Parameters:
//   - target: world-space pivot point
//
// Returns:
//   - OrbitControllerOption: functional option to set the target position
func WithTarget(target mgl32.Vec3) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.target = target
	}
}

// WithStartPosition sets the initial camera position. It is converted to spherical
// coordinates around the target after all options are applied.
//
// Parameters:
//   - p: world-space start position
//
// Returns:
//   - OrbitControllerOption: functional option to set the start position
func WithStartPosition(p mgl32.Vec3) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.startPosition = &p
	}
}

// WithSpherical sets the initial radius, azimuth and elevation directly, replacing any start position.
//
// Parameters:
//   - radius: distance from the target
//   - azimuth: horizontal angle in radians (0 = +Z axis)
//   - elevation: vertical angle in radians (0 = horizontal)
//
// Returns:
//   - OrbitControllerOption: functional option to set the spherical coordinates
func WithSpherical(radius, azimuth, elevation float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.startPosition = nil
		oc.radius.goal = float64(radius)
		oc.azimuth.goal = float64(azimuth)
		oc.elevation.goal = float64(elevation)
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - OrbitControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minRadius = min
		oc.maxRadius = max
	}
}

// WithMaxPolarAngle limits how far the camera may tilt away from straight up.
// The minimum elevation becomes π/2 - polar.
//
// Parameters:
//   - polar: largest angle from the +Y axis in radians
//
// Returns:
//   - OrbitControllerOption: functional option to set the lower elevation bound
func WithMaxPolarAngle(polar float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minElevation = mgl32.DegToRad(90) - polar
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians (keep below π/2 to avoid flipping over)
//
// Returns:
//   - OrbitControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.minElevation = min
		oc.maxElevation = max
	}
}

// WithRotateSpeed sets the drag rotation multiplier.
func WithRotateSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.rotateSpeed = speed
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.zoomSpeed = speed
	}
}

// WithOrbitSpeed sets the keyboard orbit step in radians.
func WithOrbitSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.orbitSpeed = speed
	}
}

// WithViewportHeight sets the pixel height a full-height drag is measured against.
func WithViewportHeight(height float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		if height > 0 {
			oc.viewportHeight = height
		}
	}
}

// WithDamping sets the springs the camera follows its goals with.
//
// Parameters:
//   - frequency: angular frequency; higher settles faster
//   - ratio: damping ratio; 1 is critically damped
//   - fps: frame rate the springs step at
//
// Returns:
//   - OrbitControllerOption: functional option to set the damping
func WithDamping(frequency, ratio float64, fps int) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.frequency = frequency
		oc.dampingRatio = ratio
		if fps > 0 {
			oc.fps = fps
		}
	}
}
