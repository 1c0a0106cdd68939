package simulate

import (
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
)

// FrameClock is a simulated clock. Callbacks scheduled on it fire only when the clock is advanced
// past their deadline, which makes idle timeouts line up with frame numbers.
type FrameClock struct {
	mu     *sync.Mutex
	now    time.Duration
	seq    int
	timers []*frameTimer
}

type frameTimer struct {
	clock *FrameClock
	at    time.Duration
	seq   int
	f     func()
	done  bool
}

var _ camera.Timer = &frameTimer{}

// NewFrameClock creates a clock at time zero.
//
// Returns:
//   - *FrameClock: the clock
func NewFrameClock() *FrameClock {
	return &FrameClock{mu: &sync.Mutex{}}
}

// Schedule registers f to run once the clock reaches now+d. It never runs f synchronously,
// so it is safe to call while holding a lock f will take. Its signature matches camera.Scheduler.
//
// Parameters:
//   - d: delay from the current simulated time
//   - f: the callback
//
// Returns:
//   - camera.Timer: a handle that can cancel the callback
func (c *FrameClock) Schedule(d time.Duration, f func()) camera.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &frameTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

// Now returns the current simulated time.
func (c *FrameClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of callbacks that have neither fired nor been stopped.
func (c *FrameClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// AdvanceTo moves the clock forward to t and fires every due callback in deadline order.
// Moving backwards is ignored. Callbacks run without the clock's lock held.
//
// Parameters:
//   - t: the new simulated time
func (c *FrameClock) AdvanceTo(t time.Duration) {
	c.mu.Lock()
	if t > c.now {
		c.now = t
	}
	var due []*frameTimer
	live := c.timers[:0]
	for _, tm := range c.timers {
		switch {
		case tm.done:
		case tm.at <= c.now:
			tm.done = true
			due = append(due, tm)
		default:
			live = append(live, tm)
		}
	}
	c.timers = live
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, tm := range due {
		tm.f()
	}
}

// Advance moves the clock forward by d.
//
// Parameters:
//   - d: how far to move
func (c *FrameClock) Advance(d time.Duration) {
	c.AdvanceTo(c.Now() + d)
}

func (t *frameTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}
