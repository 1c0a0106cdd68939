package camera

import "time"

// ScrollControllerOption is a functional option for configuring a ScrollController.
type ScrollControllerOption func(*scrollControllerImpl)

// WithVelocityDecay sets the factor momentum is multiplied by on every input event.
//
// Parameters:
//   - decay: per-event decay in [0, 1]
//
// Returns:
//   - ScrollControllerOption: functional option to set the velocity decay
func WithVelocityDecay(decay float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.velocityDecay = decay
	}
}

// WithVelocityGain sets how much one unit of input delta adds to momentum.
//
// Parameters:
//   - gain: offset per input unit
//
// Returns:
//   - ScrollControllerOption: functional option to set the velocity gain
func WithVelocityGain(gain float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.velocityGain = gain
	}
}

// WithMaxVelocity sets the symmetric momentum clamp.
//
// Parameters:
//   - max: largest offset change per input event
//
// Returns:
//   - ScrollControllerOption: functional option to set the velocity clamp
func WithMaxVelocity(max float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		if max < 0 {
			max = -max
		}
		sc.maxVelocity = max
	}
}

// WithIdleTimeout sets how long after the last input the controller stops reporting IsScrolling.
//
// Parameters:
//   - d: quiet period
//
// Returns:
//   - ScrollControllerOption: functional option to set the idle timeout
func WithIdleTimeout(d time.Duration) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.idleTimeout = d
	}
}

// WithLerpSpeeds sets the two-tier smoothing of the path offset. The far speed applies while
// the smoothed offset trails the input offset by more than threshold, the near speed otherwise.
//
// Parameters:
//   - far: per-frame factor when far behind
//   - near: per-frame factor when close
//   - threshold: offset gap separating the two tiers
//
// Returns:
//   - ScrollControllerOption: functional option to set the smoothing speeds
func WithLerpSpeeds(far, near, threshold float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.farLerpSpeed = far
		sc.nearLerpSpeed = near
		sc.farThreshold = threshold
	}
}

// WithPositionDamping sets the per-frame factor the camera moves toward the path sample by.
func WithPositionDamping(k float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.positionDamping = k
	}
}

// WithLookDamping sets the per-frame factor the look direction turns toward the path's look target by.
func WithLookDamping(k float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.lookDamping = k
	}
}

// WithBob sets the vertical micro-motion applied while scrolling.
//
// Parameters:
//   - amplitude: peak offset in world units at the start of the path
//   - frequency: angular frequency in radians per second
//
// Returns:
//   - ScrollControllerOption: functional option to set the bob
func WithBob(amplitude, frequency float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.bobAmplitude = amplitude
		sc.bobFrequency = frequency
	}
}

// WithSway sets the lateral micro-motion applied while scrolling.
//
// Parameters:
//   - amplitude: peak offset in world units at the start of the path
//   - frequency: angular frequency in radians per second
//
// Returns:
//   - ScrollControllerOption: functional option to set the sway
func WithSway(amplitude, frequency float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.swayAmplitude = amplitude
		sc.swayFrequency = frequency
	}
}

// WithTouch sets how drag samples feed the scroll path.
//
// Parameters:
//   - blend: weight kept from the previous touch accumulator per sample
//   - damping: scale applied to the accumulator before it is fed as a scroll delta
//
// Returns:
//   - ScrollControllerOption: functional option to set touch handling
func WithTouch(blend, damping float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.touchBlend = blend
		sc.touchDamping = damping
	}
}

// WithInertia sets the post-gesture motion.
//
// Parameters:
//   - gain: scale of the accumulator fed as a scroll delta per frame
//   - decay: per-frame multiplier of the accumulator
//   - cutoff: accumulator magnitude at or below which inertia stops
//
// Returns:
//   - ScrollControllerOption: functional option to set inertia
func WithInertia(gain, decay, cutoff float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.inertiaGain = gain
		sc.inertiaDecay = decay
		sc.inertiaCutoff = cutoff
	}
}

// WithEasing sets the easing applied within each path section.
// It must be monotonic on [0, 1] with ease(0) = 0 and ease(1) = 1. A nil ease is ignored.
func WithEasing(ease func(float32) float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		if ease != nil {
			sc.ease = ease
		}
	}
}

// WithSnapOnAttach controls whether Attach places the camera at the first waypoint.
// When disabled the camera glides from wherever it is.
func WithSnapOnAttach(snap bool) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.snapOnAttach = snap
	}
}

// WithReferenceFrameRate makes smoothing independent of frame rate. Every per-frame factor k
// is treated as tuned at fps and applied as 1-(1-k)^(dt*fps) for a frame lasting dt seconds.
// Zero (the default) applies the factors once per Update regardless of frame duration.
//
// Parameters:
//   - fps: the frame rate the factors were tuned at
//
// Returns:
//   - ScrollControllerOption: functional option to set the reference frame rate
func WithReferenceFrameRate(fps float32) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.referenceFPS = fps
	}
}

// WithScheduler replaces the wall-clock scheduler used for the idle timeout.
func WithScheduler(s Scheduler) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		if s != nil {
			sc.scheduler = s
		}
	}
}

// WithOnProgress registers a callback receiving the smoothed offset after every Update.
// The callback runs outside the controller's lock and may call back into the controller.
func WithOnProgress(f func(progress float32)) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.onProgress = f
	}
}

// WithOnEnd registers an end-of-path callback. Reaching the end of the path does not
// trigger it; the camera stays free to scroll back.
func WithOnEnd(f func()) ScrollControllerOption {
	return func(sc *scrollControllerImpl) {
		sc.onEnd = f
	}
}
