package profiler

import (
	"log"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Stats is one reporting interval's worth of measurements.
type Stats struct {
	// FPS is frames counted over the interval divided by its length.
	FPS float64
	// SmoothedFPS is the mean of the last few interval readings.
	SmoothedFPS float64
	HeapMB      float64
	AllocRateMB float64
	GCCount     uint32
	LastPauseUs uint64
	MaxPauseUs  uint64
	SysMB       float64
	// CPUPercent and RSSMB come from the OS view of the process and stay zero when unavailable.
	CPUPercent float64
	RSSMB      float64
}

// Profiler tracks frame rate, Go heap and process statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	proc    *process.Process
	now     func() time.Time
	quiet   bool
	history []float64
	window  int
	last    Stats
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second and the FPS average spans 30 readings.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		window:         30,
	}
	for _, option := range options {
		option(p)
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Printf("[Profiler] process stats unavailable: %v", err)
	} else {
		p.proc = proc
		// prime the CPU counter so the first interval reports a real delta
		_, _ = proc.Percent(0)
	}

	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were collected this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	s := Stats{FPS: float64(p.frameCount) / elapsed.Seconds()}
	s.SmoothedFPS = p.pushFPS(s.FPS)

	runtime.ReadMemStats(&p.memStats)
	s.HeapMB = float64(p.memStats.Alloc) / 1024 / 1024
	s.SysMB = float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	s.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	s.GCCount = p.memStats.NumGC
	if s.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if s.GCCount-startIdx > 256 {
			startIdx = s.GCCount - 256
		}
		for i := startIdx; i < s.GCCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
				s.MaxPauseUs = pause
			}
		}
	}

	if p.proc != nil {
		if cpu, err := p.proc.Percent(0); err == nil {
			s.CPUPercent = cpu
		}
		if mem, err := p.proc.MemoryInfo(); err == nil && mem != nil {
			s.RSSMB = float64(mem.RSS) / 1024 / 1024
		}
	}

	if !p.quiet {
		log.Printf("[Profiler] FPS: %.2f (avg %.2f) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB | CPU: %.1f%% | RSS: %.2f MB",
			s.FPS, s.SmoothedFPS, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB, s.CPUPercent, s.RSSMB)
	}

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.last = s
	return true
}

// Stats returns the measurements from the most recent completed interval.
//
// Returns:
//   - Stats: the last collected stats, zero before the first interval completes
func (p *Profiler) Stats() Stats {
	return p.last
}

// pushFPS appends a reading to the rolling window and returns the window mean.
func (p *Profiler) pushFPS(fps float64) float64 {
	p.history = append(p.history, fps)
	if len(p.history) > p.window {
		p.history = p.history[len(p.history)-p.window:]
	}
	sum := 0.0
	for _, v := range p.history {
		sum += v
	}
	return sum / float64(len(p.history))
}
