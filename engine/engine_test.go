package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/profiler"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resizeRecorder struct {
	width, height int
	calls         int
}

func (r *resizeRecorder) SetPath([]camera.Waypoint) {}
func (r *resizeRecorder) Render(mgl32.Mat4, float32) error { return nil }
func (r *resizeRecorder) Release() {}
func (r *resizeRecorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.calls++
}

func quietEngine(options ...EngineBuilderOption) *engine {
	options = append([]EngineBuilderOption{WithProfiler(profiler.NewProfiler(profiler.WithQuiet()))}, options...)
	return NewEngine(options...).(*engine)
}

func TestResizeUpdatesRendererAndCamera(t *testing.T) {
	r := &resizeRecorder{}
	cam := camera.NewCamera()
	e := quietEngine(WithRenderer(r), WithCamera(cam))

	e.resize(1600, 900)
	assert.Equal(t, 1600, r.width)
	assert.Equal(t, 900, r.height)
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), 1e-6)

	// minimised
	e.resize(0, 0)
	assert.Equal(t, 1, r.calls)
	assert.InDelta(t, 16.0/9.0, cam.Aspect(), 1e-6)
}

func TestTickElapsedIsMonotonic(t *testing.T) {
	e := quietEngine(WithTickRate(200), WithRenderFrameLimit(200))

	var mu sync.Mutex
	var elapsed []float32
	var deltas []float32
	e.SetTickCallback(func(el, dt float32) {
		mu.Lock()
		defer mu.Unlock()
		elapsed = append(elapsed, el)
		deltas = append(deltas, dt)
	})

	renders := 0
	e.SetRenderCallback(func(float32) {
		mu.Lock()
		renders++
		mu.Unlock()
	})

	e.handle()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(elapsed) >= 5 && renders >= 2
	}, 2*time.Second, 5*time.Millisecond)
	e.Quit()
	e.Quit()
	e.wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(elapsed); i++ {
		assert.Greater(t, elapsed[i], elapsed[i-1])
		assert.Greater(t, deltas[i], float32(0))
	}
}

func TestSetTickRateWhileStopped(t *testing.T) {
	e := quietEngine()
	e.SetTickRate(120)
	assert.Equal(t, time.Second/120, e.engineTickRate)

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.engineTickRate)

	e.SetRenderFrameLimit(0)
	assert.Equal(t, time.Duration(0), e.renderFrameLimit)
}
