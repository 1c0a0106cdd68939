package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestEasingEndpointsAndMonotonic(t *testing.T) {
	easings := map[string]func(float32) float32{
		"smoothstep":   SmoothStep,
		"smootherstep": SmootherStep,
	}

	for name, ease := range easings {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, float32(0), ease(0))
			assert.Equal(t, float32(1), ease(1))
			assert.InDelta(t, 0.5, ease(0.5), 1e-6)

			prev := ease(0)
			for i := 1; i <= 1000; i++ {
				v := ease(float32(i) / 1000)
				assert.GreaterOrEqual(t, v, prev, "not monotonic at sample %d", i)
				prev = v
			}

			// slope vanishes at both ends
			h := float32(1e-3)
			assert.Less(t, (ease(h)-ease(0))/h, float32(0.01))
			assert.Less(t, (ease(1)-ease(1-h))/h, float32(0.01))
		})
	}
}

func TestEasingClampsInput(t *testing.T) {
	assert.Equal(t, float32(0), SmoothStep(-2))
	assert.Equal(t, float32(1), SmoothStep(3))
	assert.Equal(t, float32(0), SmootherStep(-0.1))
	assert.Equal(t, float32(1), SmootherStep(1.1))
}

func TestLerpDoesNotOvershoot(t *testing.T) {
	v := float32(0)
	for i := 0; i < 10000; i++ {
		v = Lerp(v, 1, 0.06)
		assert.LessOrEqual(t, v, float32(1))
	}
	assert.InDelta(t, 1, v, 1e-6)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		want float32
	}{
		{"below", -0.5, 0},
		{"inside", 0.25, 0.25},
		{"above", 1.5, 1},
		{"edge", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, 0, 1))
		})
	}
}

func TestNormalizeOr(t *testing.T) {
	fallback := mgl32.Vec3{0, 0, -1}
	assert.Equal(t, fallback, NormalizeOr(mgl32.Vec3{}, fallback))
	assert.Equal(t, fallback, NormalizeOr(mgl32.Vec3{math32.NaN(), 0, 0}, fallback))

	n := NormalizeOr(mgl32.Vec3{3, 0, 4}, fallback)
	assert.InDelta(t, 1, n.Len(), 1e-6)
	assert.InDelta(t, 0.6, n[0], 1e-6)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math32.NaN()))
	assert.False(t, IsFinite(math32.Inf(1)))
	assert.False(t, IsFiniteVec3(mgl32.Vec3{0, math32.Inf(-1), 0}))
}

func TestFrameDamping(t *testing.T) {
	// one reference frame is the raw factor
	assert.InDelta(t, 0.06, FrameDamping(0.06, 1.0/60, 60), 1e-5)
	// two reference frames compound
	want := 1 - (1-0.06)*(1-0.06)
	assert.InDelta(t, want, FrameDamping(0.06, 2.0/60, 60), 1e-5)
	// disabled
	assert.Equal(t, float32(0.06), FrameDamping(0.06, 0.5, 0))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(0.5), Coalesce[float32](0, 0.5, 0.7))
	assert.Equal(t, "", Coalesce[string]())
}
