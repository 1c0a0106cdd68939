package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp returns the linear interpolation between a and b by t.
// Written as a + (b-a)*t so that the result never passes b when t is in [0, 1].
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp restricts v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothStep is the cubic Hermite ease 3t²-2t³. Input is clamped to [0, 1].
//
// Parameters:
//   - t: the linear parameter
//
// Returns:
//   - float32: the eased parameter, monotonic with zero slope at 0 and 1
func SmoothStep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// SmootherStep is the quintic ease 6t⁵-15t⁴+10t³. Input is clamped to [0, 1].
//
// Parameters:
//   - t: the linear parameter
//
// Returns:
//   - float32: the eased parameter, monotonic with zero first and second derivative at 0 and 1
func SmootherStep(t float32) float32 {
	t = Clamp(t, 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// LerpVec3 interpolates each component of a toward b by t.
//
// Parameters:
//   - a: start vector
//   - b: end vector
//   - t: interpolation factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// NormalizeOr returns v scaled to unit length, or fallback when v is too short to normalize.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: value returned for degenerate input
//
// Returns:
//   - mgl32.Vec3: the unit vector or fallback
func NormalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-8 || !IsFinite(l) {
		return fallback
	}
	return v.Mul(1 / l)
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// IsFiniteVec3 reports whether every component of v is finite.
func IsFiniteVec3(v mgl32.Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// FrameDamping converts a per-frame smoothing factor into one for an arbitrary time step.
// A factor k applied once per frame at referenceFPS is equivalent to 1-(1-k)^(dt*referenceFPS)
// applied once over dt seconds. When referenceFPS <= 0 or dt <= 0 the factor is returned unchanged.
//
// Parameters:
//   - k: per-frame factor in [0, 1]
//   - dt: elapsed seconds for this step
//   - referenceFPS: frame rate k was tuned at
//
// Returns:
//   - float32: the time-scaled factor
func FrameDamping(k, dt, referenceFPS float32) float32 {
	if referenceFPS <= 0 || dt <= 0 {
		return k
	}
	return 1 - math32.Pow(1-Clamp(k, 0, 1), dt*referenceFPS)
}
