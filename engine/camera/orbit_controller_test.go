package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbitDefaultsStartAtHandheldView(t *testing.T) {
	oc := NewOrbitController()
	cam := NewCamera()
	require.NoError(t, oc.Attach(cam))

	assertVec3InDelta(t, mgl32.Vec3{5, 4, 5}, cam.Position(), 1e-4)
	assertVec3InDelta(t, mgl32.Vec3{-5, -4, -5}.Normalize(), cam.Forward(), 1e-4)
	assert.InDelta(t, math.Pi/4, oc.Azimuth(), 1e-5)

	lo, hi := oc.RadiusBounds()
	assert.Equal(t, float32(2), lo)
	assert.Equal(t, float32(10), hi)
	minElev, _ := oc.ElevationBounds()
	assert.InDelta(t, math.Pi/2-math.Pi/2.2, minElev, 1e-6)
}

func TestOrbitZoomClampsToRadiusBounds(t *testing.T) {
	oc := NewOrbitController()

	oc.Zoom(1000)
	r, _, _ := oc.Goal()
	assert.Equal(t, float32(2), r)

	oc.Zoom(-1000)
	r, _, _ = oc.Goal()
	assert.Equal(t, float32(10), r)
}

func TestOrbitRotateClampsElevation(t *testing.T) {
	oc := NewOrbitController()
	minElev, maxElev := oc.ElevationBounds()

	oc.Rotate(0, 1e6)
	_, _, elev := oc.Goal()
	assert.Equal(t, maxElev, elev)

	oc.Rotate(0, -1e6)
	_, _, elev = oc.Goal()
	assert.Equal(t, minElev, elev)

	for i := 0; i < 200; i++ {
		oc.OrbitDown()
	}
	_, _, elev = oc.Goal()
	assert.Equal(t, minElev, elev)
}

func TestOrbitFollowsGoalsWithoutOvershoot(t *testing.T) {
	oc := NewOrbitController()
	cam := NewCamera()
	require.NoError(t, oc.Attach(cam))

	oc.Zoom(5)
	oc.Rotate(200, 0)
	goalRadius, goalAzimuth, _ := oc.Goal()
	require.Less(t, goalRadius, oc.Radius())

	prev := oc.Radius()
	for i := 0; i < 600; i++ {
		oc.Update(float32(i) / 60)
		r := oc.Radius()
		assert.LessOrEqual(t, r, prev+1e-6)
		assert.GreaterOrEqual(t, r, goalRadius-1e-4)
		prev = r
	}

	assert.InDelta(t, goalRadius, oc.Radius(), 1e-3)
	assert.InDelta(t, goalAzimuth, oc.Azimuth(), 1e-3)
	assert.InDelta(t, goalRadius, cam.Position().Sub(oc.Target()).Len(), 1e-3)
}

func TestOrbitUpdateAtSameTimeIsNoOp(t *testing.T) {
	oc := NewOrbitController()
	cam := NewCamera()
	require.NoError(t, oc.Attach(cam))

	oc.OrbitLeft()
	oc.Update(0)
	pos := cam.Position()
	oc.Update(0)
	oc.Update(0)
	assert.Equal(t, pos, cam.Position())
}

func TestOrbitFrameBounds(t *testing.T) {
	oc := NewOrbitController()
	cam := NewCamera()
	require.NoError(t, oc.Attach(cam))

	oc.FrameBounds(mgl32.Vec3{-2, 0, -2}, mgl32.Vec3{2, 2, 2})
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, oc.Target())

	lo, hi := oc.RadiusBounds()
	assert.InDelta(t, 1.2, lo, 1e-5)
	assert.InDelta(t, 9, hi, 1e-5)

	// camera faces the new target immediately
	toTarget := oc.Target().Sub(cam.Position()).Normalize()
	assertVec3InDelta(t, toTarget, cam.Forward(), 1e-4)
}

func TestOrbitLifecycle(t *testing.T) {
	oc := NewOrbitController(WithSpherical(4, 0, 0.5), WithTarget(mgl32.Vec3{1, 0, 0}))
	assert.ErrorIs(t, oc.Attach(nil), ErrNilCamera)
	assert.False(t, oc.Attached())

	cam := NewCamera()
	require.NoError(t, oc.Attach(cam))
	assert.True(t, oc.Attached())
	assert.InDelta(t, 4, cam.Position().Sub(mgl32.Vec3{1, 0, 0}).Len(), 1e-5)

	oc.Detach()
	assert.False(t, oc.Attached())
	pos := cam.Position()
	oc.Rotate(300, 0)
	oc.Update(1)
	assert.Equal(t, pos, cam.Position())
}
