package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often stats are collected and logged. Non-positive values are ignored.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: a function that sets the interval
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithAverageWindow sets how many interval readings the smoothed FPS spans.
//
// Parameters:
//   - n: number of readings, at least 1
//
// Returns:
//   - ProfilerBuilderOption: a function that sets the window
func WithAverageWindow(n int) ProfilerBuilderOption {
	return func(p *Profiler) {
		if n > 0 {
			p.window = n
		}
	}
}

// WithQuiet collects stats without logging them.
func WithQuiet() ProfilerBuilderOption {
	return func(p *Profiler) {
		p.quiet = true
	}
}

// WithClock replaces the wall clock, for deterministic tests.
//
// Parameters:
//   - now: function returning the current time
//
// Returns:
//   - ProfilerBuilderOption: a function that sets the clock
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}
