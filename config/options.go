package config

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// easingFunc maps an easing name to its curve. An empty name is smoothstep.
func easingFunc(name string) (func(float32) float32, error) {
	switch name {
	case "", "smoothstep":
		return common.SmoothStep, nil
	case "smootherstep":
		return common.SmootherStep, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEasing, name)
	}
}

// CameraWaypoints converts the tour into controller waypoints.
//
// Returns:
//   - []camera.Waypoint: the tour's waypoints in order
func (t TourConfig) CameraWaypoints() []camera.Waypoint {
	out := make([]camera.Waypoint, len(t.Waypoints))
	for i, wp := range t.Waypoints {
		out[i] = camera.Waypoint{
			Position: mgl32.Vec3(wp.Position),
			LookAt:   mgl32.Vec3(wp.LookAt),
			Speed:    wp.Speed,
		}
	}
	return out
}

// Options converts the camera settings into builder options.
//
// Parameters:
//   - aspect: initial width / height
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c CameraConfig) Options(aspect float32) []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithPosition(mgl32.Vec3(c.Start)),
		camera.WithFov(mgl32.DegToRad(c.Fov)),
		camera.WithAspect(aspect),
		camera.WithNear(c.Near),
		camera.WithFar(c.Far),
	}
}

// Options converts the scroll tuning into controller options. Zero-valued fields keep the
// controller's built-in default, except the bob and sway amplitudes where zero turns the motion off.
//
// Returns:
//   - []camera.ScrollControllerOption: options for camera.NewScrollController
func (s ScrollConfig) Options() []camera.ScrollControllerOption {
	var opts []camera.ScrollControllerOption
	if s.VelocityDecay != 0 {
		opts = append(opts, camera.WithVelocityDecay(s.VelocityDecay))
	}
	if s.VelocityGain != 0 {
		opts = append(opts, camera.WithVelocityGain(s.VelocityGain))
	}
	if s.MaxVelocity != 0 {
		opts = append(opts, camera.WithMaxVelocity(s.MaxVelocity))
	}
	if s.IdleTimeout != 0 {
		opts = append(opts, camera.WithIdleTimeout(s.IdleTimeout))
	}
	if s.FarLerpSpeed != 0 || s.NearLerpSpeed != 0 || s.FarThreshold != 0 {
		opts = append(opts, camera.WithLerpSpeeds(
			common.Coalesce(s.FarLerpSpeed, camera.DefaultFarLerpSpeed),
			common.Coalesce(s.NearLerpSpeed, camera.DefaultNearLerpSpeed),
			common.Coalesce(s.FarThreshold, camera.DefaultFarThreshold),
		))
	}
	if s.PositionDamping != 0 {
		opts = append(opts, camera.WithPositionDamping(s.PositionDamping))
	}
	if s.LookDamping != 0 {
		opts = append(opts, camera.WithLookDamping(s.LookDamping))
	}
	opts = append(opts,
		camera.WithBob(s.BobAmplitude, common.Coalesce(s.BobFrequency, camera.DefaultBobFrequency)),
		camera.WithSway(s.SwayAmplitude, common.Coalesce(s.SwayFrequency, camera.DefaultSwayFrequency)),
	)
	if s.TouchBlend != 0 || s.TouchDamping != 0 {
		opts = append(opts, camera.WithTouch(
			common.Coalesce(s.TouchBlend, camera.DefaultTouchBlend),
			common.Coalesce(s.TouchDamping, camera.DefaultTouchDamping),
		))
	}
	if s.InertiaGain != 0 || s.InertiaDecay != 0 || s.InertiaCutoff != 0 {
		opts = append(opts, camera.WithInertia(
			common.Coalesce(s.InertiaGain, camera.DefaultInertiaGain),
			common.Coalesce(s.InertiaDecay, camera.DefaultInertiaDecay),
			common.Coalesce(s.InertiaCutoff, camera.DefaultInertiaCutoff),
		))
	}
	if ease, err := easingFunc(s.Easing); err == nil {
		opts = append(opts, camera.WithEasing(ease))
	}
	opts = append(opts,
		camera.WithSnapOnAttach(s.SnapOnAttach),
		camera.WithReferenceFrameRate(s.ReferenceFPS),
	)
	return opts
}

// Options converts the orbit tuning into controller options.
//
// Returns:
//   - []camera.OrbitControllerOption: options for camera.NewOrbitController
func (o OrbitConfig) Options() []camera.OrbitControllerOption {
	opts := []camera.OrbitControllerOption{
		camera.WithTarget(mgl32.Vec3(o.Target)),
		camera.WithStartPosition(mgl32.Vec3(o.Start)),
		camera.WithRadiusBounds(o.MinDistance, o.MaxDistance),
	}
	if o.MaxPolarAngle != 0 {
		opts = append(opts, camera.WithMaxPolarAngle(o.MaxPolarAngle))
	}
	if o.RotateSpeed != 0 {
		opts = append(opts, camera.WithRotateSpeed(o.RotateSpeed))
	}
	if o.ZoomSpeed != 0 {
		opts = append(opts, camera.WithZoomSpeed(o.ZoomSpeed))
	}
	if o.Frequency != 0 || o.DampingRatio != 0 {
		opts = append(opts, camera.WithDamping(o.Frequency, o.DampingRatio, 60))
	}
	return opts
}
