package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	return c.t
}

func (c *stepClock) advance() {
	c.t = c.t.Add(c.step)
}

func TestTickReportsOncePerInterval(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0), step: 20 * time.Millisecond}
	p := NewProfiler(WithClock(clock.now), WithQuiet())

	reports := 0
	for i := 0; i < 100; i++ {
		clock.advance()
		if p.Tick() {
			reports++
		}
	}

	// 100 frames of 20ms is two seconds
	assert.Equal(t, 2, reports)
	assert.InDelta(t, 50, p.Stats().FPS, 1e-9)
	assert.InDelta(t, 50, p.Stats().SmoothedFPS, 1e-9)
	assert.Greater(t, p.Stats().HeapMB, 0.0)
}

func TestSmoothedFPSWindow(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0), step: 100 * time.Millisecond}
	p := NewProfiler(WithClock(clock.now), WithQuiet(), WithInterval(100*time.Millisecond), WithAverageWindow(2))

	// each tick is one full interval of one frame: 10 FPS
	clock.advance()
	require.True(t, p.Tick())

	// one 300ms frame: 3.33 FPS
	clock.step = 300 * time.Millisecond
	clock.advance()
	require.True(t, p.Tick())
	assert.InDelta(t, (10+10.0/3)/2, p.Stats().SmoothedFPS, 1e-9)

	// oldest reading drops out
	clock.advance()
	require.True(t, p.Tick())
	assert.InDelta(t, 10.0/3, p.Stats().SmoothedFPS, 1e-9)
}

func TestStatsZeroBeforeFirstInterval(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0), step: time.Millisecond}
	p := NewProfiler(WithClock(clock.now), WithQuiet())

	clock.advance()
	assert.False(t, p.Tick())
	assert.Equal(t, Stats{}, p.Stats())
}
