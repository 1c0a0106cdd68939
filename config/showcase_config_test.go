package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultApartmentTour(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	tour, err := c.Tour("")
	require.NoError(t, err)
	assert.Equal(t, "apartment", tour.Name)
	require.Len(t, tour.Waypoints, 21)

	wps := tour.CameraWaypoints()
	assert.Equal(t, mgl32.Vec3{-0.5, 1.8, -8}, wps[0].Position)
	assert.Equal(t, mgl32.Vec3{1000, -401, -1000}, wps[20].LookAt)
	assert.Equal(t, float32(0.4), wps[17].Speed)

	assert.Equal(t, 500*time.Millisecond, c.Scroll.IdleTimeout)
	assert.Equal(t, camera.DefaultVelocityDecay, c.Scroll.VelocityDecay)
	assert.True(t, c.Scroll.SnapOnAttach)
	assert.Equal(t, []string{"apartment", "living-room"}, c.TourNames())
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Tours[0].Waypoints[0].Speed = 99
	assert.Equal(t, float32(1), Default().Tours[0].Waypoints[0].Speed)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showcase.yaml")
	doc := `
window:
  width: 1920
scroll:
  easing: smootherstep
  idle_timeout: 250ms
tours:
  - name: hall
    model: models/hall.glb
    waypoints:
      - {position: [0, 1.6, 0], look_at: [0, 1.6, -1]}
      - {position: [0, 1.6, -4], look_at: [0, 1.6, -5]}
default_tour: hall
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, c.Window.Width)
	assert.Equal(t, 800, c.Window.Height, "untouched keys keep defaults")
	assert.Equal(t, "smootherstep", c.Scroll.Easing)
	assert.Equal(t, 250*time.Millisecond, c.Scroll.IdleTimeout)
	assert.Equal(t, float32(0.92), c.Scroll.VelocityDecay)
	assert.Equal(t, []string{"hall"}, c.TourNames(), "tours are replaced, not merged")

	tour, err := c.Tour("hall")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "models/hall.glb"), c.ModelPath(tour))
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Tours, c.Tours)
	assert.Equal(t, "c.glb", c.ModelPath(c.Tours[0]))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"one waypoint", "tours: [{name: a, waypoints: [{position: [0,0,0], look_at: [0,0,1]}]}]\ndefault_tour: a", ErrTooFewWaypoints},
		{"duplicate", "tours: [{name: a, waypoints: [{}, {}]}, {name: a, waypoints: [{}, {}]}]\ndefault_tour: a", ErrDuplicateTour},
		{"unknown default", "default_tour: penthouse", ErrUnknownTour},
		{"easing", "scroll: {easing: bounce}", ErrUnknownEasing},
		{"window", "window: {width: 0}", ErrInvalid},
		{"clip planes", "camera: {near: 10, far: 1}", ErrInvalid},
		{"orbit", "orbit: {min_distance: 5, max_distance: 1}", ErrInvalid},
		{"nameless", "tours: [{waypoints: [{}, {}]}]\ndefault_tour: ''", ErrInvalid},
		{"not finite", "tours: [{name: a, waypoints: [{position: [.nan, 0, 0]}, {}]}]\ndefault_tour: a", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTourLookup(t *testing.T) {
	c := Default()

	tour, err := c.Tour("living-room")
	require.NoError(t, err)
	assert.Len(t, tour.Waypoints, 4)

	_, err = c.Tour("garage")
	assert.ErrorIs(t, err, ErrUnknownTour)

	c.DefaultTour = ""
	tour, err = c.Tour("")
	require.NoError(t, err)
	assert.Equal(t, "apartment", tour.Name)
}

func TestScrollOptionsDriveController(t *testing.T) {
	c := Default()
	c.Scroll.MaxVelocity = 0.001

	tour, err := c.Tour("")
	require.NoError(t, err)
	ctrl := camera.NewScrollController(tour.CameraWaypoints(), c.Scroll.Options()...)
	cam := camera.NewCamera(c.Camera.Options(16.0 / 9.0)...)
	require.NoError(t, ctrl.Attach(cam))
	defer ctrl.Detach()

	ctrl.OnScrollDelta(100)
	assert.InDelta(t, 0.001, ctrl.Velocity(), 1e-7)
	assert.Equal(t, tour.CameraWaypoints()[0].Position, cam.Position())
	assert.InDelta(t, mgl32.DegToRad(60), cam.Fov(), 1e-6)
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), 1e-6)
}

func TestOrbitOptionsDriveController(t *testing.T) {
	c := Default()
	ctrl := camera.NewOrbitController(c.Orbit.Options()...)

	lo, hi := ctrl.RadiusBounds()
	assert.Equal(t, float32(2), lo)
	assert.Equal(t, float32(10), hi)
	assert.InDelta(t, mgl32.Vec3{5, 4, 5}.Len(), ctrl.Radius(), 1e-4)
}
