package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewer(t *testing.T, mode viewMode) *viewer {
	t.Helper()
	cfg := config.Default()
	tour, err := cfg.Tour("")
	require.NoError(t, err)

	v := newViewer(
		camera.NewCamera(cfg.Camera.Options(1)...),
		camera.NewScrollController(tour.CameraWaypoints(), cfg.Scroll.Options()...),
		camera.NewOrbitController(cfg.Orbit.Options()...),
		tour.Name,
		cfg.Window.PixelsPerLine,
	)
	require.NoError(t, v.start(mode))
	t.Cleanup(func() {
		v.scroll.Detach()
		v.orbit.Detach()
	})
	return v
}

func TestParseMode(t *testing.T) {
	m, err := parseMode("orbit")
	require.NoError(t, err)
	assert.Equal(t, modeOrbit, m)

	m, err = parseMode("")
	require.NoError(t, err)
	assert.Equal(t, modeScroll, m)

	_, err = parseMode("fly")
	assert.Error(t, err)
}

func TestToggleSwapsControllers(t *testing.T) {
	v := newTestViewer(t, modeScroll)
	assert.True(t, v.scroll.Attached())
	assert.False(t, v.orbit.Attached())

	v.handleKey(common.KeyTab)
	assert.Equal(t, modeOrbit, v.currentMode())
	assert.False(t, v.scroll.Attached())
	assert.True(t, v.orbit.Attached())

	v.handleKey(common.KeyTab)
	assert.Equal(t, modeScroll, v.currentMode())
	assert.True(t, v.scroll.Attached())
}

func TestDetachReleasesActiveController(t *testing.T) {
	v := newTestViewer(t, modeScroll)
	v.handleScroll(100)
	v.pointerDown(0, 100)
	require.True(t, v.scroll.IsScrolling())

	v.detach()
	assert.False(t, v.scroll.Attached())
	assert.False(t, v.scroll.IsScrolling())
	assert.False(t, v.dragging)

	// input after exit is ignored
	v.handleScroll(100)
	assert.False(t, v.scroll.IsScrolling())
}

func TestWheelRouting(t *testing.T) {
	v := newTestViewer(t, modeScroll)
	v.handleScroll(100)
	assert.InDelta(t, 0.003, v.scroll.ScrollOffset(), 1e-7)

	v.handleKey(common.KeyTab)
	before, _, _ := v.orbit.Goal()
	// wheel down zooms out
	v.handleScroll(100)
	after, _, _ := v.orbit.Goal()
	assert.Greater(t, after, before)
	assert.InDelta(t, 0.003, v.scroll.ScrollOffset(), 1e-7, "scroll state untouched in orbit view")
}

func TestScrollKeys(t *testing.T) {
	v := newTestViewer(t, modeScroll)

	v.handleKey(common.KeySpace)
	assert.InDelta(t, 0.05, v.scroll.ScrollOffset(), 1e-6)
	v.handleKey(common.KeySpace)
	assert.InDelta(t, 0.10, v.scroll.ScrollOffset(), 1e-6)

	v.handleKey(common.KeyEnd)
	assert.Equal(t, float32(1), v.scroll.ScrollOffset())
	v.handleKey(common.KeyHome)
	assert.Equal(t, float32(0), v.scroll.ScrollOffset())

	v.handleKey(common.KeyDown)
	assert.Greater(t, v.scroll.ScrollOffset(), float32(0))

	v.handleKey(common.KeyR)
	assert.Equal(t, float32(0), v.scroll.ScrollOffset())
	assert.True(t, v.scroll.Attached())
}

func TestQuitAndProfileKeys(t *testing.T) {
	v := newTestViewer(t, modeScroll)
	quit, profile := 0, 0
	v.onQuit = func() { quit++ }
	v.onProfile = func() { profile++ }

	v.handleKey(common.KeyEsc)
	v.handleKey(common.KeyP)
	v.handleKey(common.KeyP)
	assert.Equal(t, 1, quit)
	assert.Equal(t, 2, profile)
}

func TestDragDrivesTouchInput(t *testing.T) {
	v := newTestViewer(t, modeScroll)

	// moves without a press are ignored
	v.pointerMove(10, 10)
	assert.Equal(t, float32(0), v.scroll.TouchVelocity())

	v.pointerDown(0, 100)
	v.pointerMove(0, 40)
	// upward drag of 60 px: 60 * (1 - 0.8)
	assert.InDelta(t, 12, v.scroll.TouchVelocity(), 1e-5)
	assert.Greater(t, v.scroll.ScrollOffset(), float32(0))

	v.pointerUp(0, 40)
	assert.True(t, v.scroll.IsDecaying())
}

func TestDragRotatesOrbit(t *testing.T) {
	v := newTestViewer(t, modeOrbit)
	_, az, _ := v.orbit.Goal()

	v.pointerDown(100, 100)
	v.pointerMove(180, 100)
	v.pointerUp(180, 100)

	_, az2, _ := v.orbit.Goal()
	assert.NotEqual(t, az, az2)
}

func TestTitleTracksProgress(t *testing.T) {
	v := newTestViewer(t, modeScroll)

	title, changed := v.title()
	assert.Equal(t, "Showcase - apartment - 0%", title)
	assert.True(t, changed)

	_, changed = v.title()
	assert.False(t, changed)

	v.handleKey(common.KeyTab)
	title, changed = v.title()
	assert.Equal(t, "Showcase - apartment - orbit", title)
	assert.True(t, changed)

	_, ok := v.progress()
	assert.False(t, ok)
}

func TestTickUpdatesActiveController(t *testing.T) {
	v := newTestViewer(t, modeScroll)
	v.scroll.ScrollTo(1)
	for i := 1; i <= 10; i++ {
		v.tick(float32(i) / 60)
	}
	assert.Greater(t, v.scroll.CurrentOffset(), float32(0))
}

func TestNextWaypointOffset(t *testing.T) {
	tests := []struct {
		offset   float32
		sections int
		want     float32
	}{
		{0, 4, 0.25},
		{0.25, 4, 0.5},
		{0.3, 4, 0.5},
		{0.99, 4, 1},
		{1, 4, 1},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, nextWaypointOffset(tt.offset, tt.sections), 1e-6, "offset %v", tt.offset)
	}
}
