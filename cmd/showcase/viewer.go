package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/chewxy/math32"
)

type viewMode int

const (
	modeScroll viewMode = iota
	modeOrbit
)

func (m viewMode) String() string {
	if m == modeOrbit {
		return "orbit"
	}
	return "scroll"
}

func parseMode(s string) (viewMode, error) {
	switch s {
	case "", "scroll":
		return modeScroll, nil
	case "orbit":
		return modeOrbit, nil
	default:
		return modeScroll, fmt.Errorf("unknown mode %q (want scroll or orbit)", s)
	}
}

// viewer routes window input to whichever controller currently drives the camera.
// Window callbacks and the engine tick run on different goroutines.
type viewer struct {
	mu *sync.Mutex

	cam    camera.Camera
	scroll camera.ScrollController
	orbit  camera.OrbitController
	mode   viewMode

	tourName  string
	lineStep  float32
	dragging  bool
	lastX     float32
	lastY     float32
	lastTitle string

	onQuit    func()
	onProfile func()
}

func newViewer(cam camera.Camera, scroll camera.ScrollController, orbit camera.OrbitController, tourName string, lineStep float32) *viewer {
	return &viewer{
		mu:       &sync.Mutex{},
		cam:      cam,
		scroll:   scroll,
		orbit:    orbit,
		tourName: tourName,
		lineStep: common.Coalesce(lineStep, 100),
	}
}

// start attaches the controller for mode.
func (v *viewer) start(mode viewMode) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
	return v.active().Attach(v.cam)
}

// detach releases the active controller's timers and inertia. Called when the view exits.
func (v *viewer) detach() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active().Detach()
	v.dragging = false
}

// active returns the controller for the current mode. Caller must hold the mutex.
func (v *viewer) active() camera.Controller {
	if v.mode == modeOrbit {
		return v.orbit
	}
	return v.scroll
}

// toggle swaps scroll and orbit. The outgoing controller is detached first so its idle timer
// and inertia stop before the other one takes the camera.
func (v *viewer) toggle() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active().Detach()
	v.dragging = false
	if v.mode == modeScroll {
		v.mode = modeOrbit
	} else {
		v.mode = modeScroll
	}
	if err := v.active().Attach(v.cam); err != nil {
		log.Printf("[Viewer] failed to attach %s controller: %v", v.mode, err)
		return
	}
	log.Printf("[Viewer] switched to %s view", v.mode)
}

// reset re-attaches the active controller, which returns it to its starting state.
func (v *viewer) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active().Detach()
	v.dragging = false
	if err := v.active().Attach(v.cam); err != nil {
		log.Printf("[Viewer] failed to reset %s controller: %v", v.mode, err)
	}
}

func (v *viewer) currentMode() viewMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

func (v *viewer) handleScroll(delta float32) {
	switch v.currentMode() {
	case modeScroll:
		v.scroll.OnScrollDelta(delta)
	case modeOrbit:
		v.orbit.Zoom(-delta / v.lineStep)
	}
}

func (v *viewer) handleKey(code uint32) {
	switch code {
	case common.KeyTab:
		v.toggle()
		return
	case common.KeyR:
		v.reset()
		return
	case common.KeyEsc:
		if v.onQuit != nil {
			v.onQuit()
		}
		return
	case common.KeyP:
		if v.onProfile != nil {
			v.onProfile()
		}
		return
	}

	if v.currentMode() == modeOrbit {
		switch code {
		case common.KeyLeft:
			v.orbit.OrbitLeft()
		case common.KeyRight:
			v.orbit.OrbitRight()
		case common.KeyUp:
			v.orbit.OrbitUp()
		case common.KeyDown:
			v.orbit.OrbitDown()
		}
		return
	}

	switch code {
	case common.KeyUp:
		v.scroll.OnScrollDelta(-v.lineStep)
	case common.KeyDown:
		v.scroll.OnScrollDelta(v.lineStep)
	case common.KeyHome:
		v.scroll.ScrollTo(0)
	case common.KeyEnd:
		v.scroll.ScrollTo(1)
	case common.KeySpace:
		v.scroll.ScrollTo(nextWaypointOffset(v.scroll.ScrollOffset(), v.scroll.TotalSections()))
	}
}

// nextWaypointOffset returns the offset of the first waypoint after offset.
func nextWaypointOffset(offset float32, sections int) float32 {
	if sections <= 0 {
		return 0
	}
	n := float32(sections)
	// a tiny bias so an offset sitting on a waypoint still advances
	next := math32.Floor(offset*n+1e-4) + 1
	return common.Clamp(next/n, 0, 1)
}

func (v *viewer) pointerDown(x, y float32) {
	v.mu.Lock()
	v.dragging = true
	v.lastX, v.lastY = x, y
	mode := v.mode
	v.mu.Unlock()

	if mode == modeScroll {
		v.scroll.OnTouchStart()
	}
}

func (v *viewer) pointerMove(x, y float32) {
	v.mu.Lock()
	if !v.dragging {
		v.mu.Unlock()
		return
	}
	dx, dy := x-v.lastX, y-v.lastY
	v.lastX, v.lastY = x, y
	mode := v.mode
	v.mu.Unlock()

	switch mode {
	case modeScroll:
		// dragging upward walks forward
		v.scroll.OnTouchDrag(-dy)
	case modeOrbit:
		v.orbit.Rotate(dx, dy)
	}
}

func (v *viewer) pointerUp(x, y float32) {
	v.mu.Lock()
	wasDragging := v.dragging
	v.dragging = false
	mode := v.mode
	v.mu.Unlock()

	if wasDragging && mode == modeScroll {
		v.scroll.OnTouchEnd()
	}
}

// tick advances the active controller.
func (v *viewer) tick(elapsed float32) {
	v.mu.Lock()
	ctrl := v.active()
	v.mu.Unlock()
	ctrl.Update(elapsed)
}

// progress is the tour progress shown to the user; the orbit view reports none.
func (v *viewer) progress() (float32, bool) {
	if v.currentMode() != modeScroll {
		return 0, false
	}
	return v.scroll.Progress(), true
}

// title returns the window title for the current state and whether it changed since the last call.
func (v *viewer) title() (string, bool) {
	var t string
	if p, ok := v.progress(); ok {
		t = fmt.Sprintf("Showcase - %s - %d%%", v.tourName, int(math32.Round(p*100)))
	} else {
		t = fmt.Sprintf("Showcase - %s - orbit", v.tourName)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if t == v.lastTitle {
		return t, false
	}
	v.lastTitle = t
	return t, true
}
