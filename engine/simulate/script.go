package simulate

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// EventKind names one kind of scripted input.
type EventKind string

const (
	// EventWheel feeds Delta to OnScrollDelta.
	EventWheel EventKind = "wheel"
	// EventTouchStart begins a drag.
	EventTouchStart EventKind = "touch_start"
	// EventTouchDrag feeds Delta pixels to OnTouchDrag.
	EventTouchDrag EventKind = "touch_drag"
	// EventTouchEnd releases a drag, starting inertia.
	EventTouchEnd EventKind = "touch_end"
	// EventJump calls ScrollTo(Delta).
	EventJump EventKind = "jump"
)

var (
	ErrUnknownEvent = errors.New("unknown event kind")
	ErrBadScript    = errors.New("invalid script")
)

// Event is a scripted input applied at the start of a frame.
type Event struct {
	Frame int       `yaml:"frame"`
	Kind  EventKind `yaml:"kind"`
	Delta float32   `yaml:"delta,omitempty"`
	// Repeat applies the event on this many consecutive frames. Zero means once.
	Repeat int `yaml:"repeat,omitempty"`
}

// Script is a deterministic input recording for one tour.
type Script struct {
	Name   string  `yaml:"name"`
	Tour   string  `yaml:"tour"`
	FPS    float32 `yaml:"fps"`
	Frames int     `yaml:"frames"`
	Events []Event `yaml:"events"`
}

// LoadScript reads and validates a YAML script file.
//
// Parameters:
//   - path: the script file path
//
// Returns:
//   - Script: the parsed script with defaults applied
//   - error: error if the file cannot be read or the script is invalid
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a YAML script.
//
// Parameters:
//   - data: YAML document bytes
//
// Returns:
//   - Script: the parsed script with defaults applied
//   - error: error if decoding fails or the script is invalid
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Validate fills defaults (60 FPS) and checks frame numbers and event kinds.
// Events are stably sorted by frame so that same-frame events keep their file order.
//
// Returns:
//   - error: ErrBadScript or ErrUnknownEvent wrapped with detail
func (s *Script) Validate() error {
	if s.FPS == 0 {
		s.FPS = 60
	}
	if s.FPS < 0 {
		return fmt.Errorf("%w: fps must be positive, got %v", ErrBadScript, s.FPS)
	}
	if s.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrBadScript, s.Frames)
	}
	for i, ev := range s.Events {
		switch ev.Kind {
		case EventWheel, EventTouchStart, EventTouchDrag, EventTouchEnd, EventJump:
		default:
			return fmt.Errorf("event %d: %w %q", i, ErrUnknownEvent, ev.Kind)
		}
		if ev.Frame < 0 || ev.Frame >= s.Frames {
			return fmt.Errorf("%w: event %d at frame %d outside [0, %d)", ErrBadScript, i, ev.Frame, s.Frames)
		}
		if ev.Repeat < 0 {
			return fmt.Errorf("%w: event %d has negative repeat", ErrBadScript, i)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].Frame < s.Events[j].Frame
	})
	return nil
}

// eventsAt returns the events active on frame f, in script order.
func (s *Script) eventsAt(f int) []Event {
	var out []Event
	for _, ev := range s.Events {
		if ev.Frame > f {
			break
		}
		n := ev.Repeat
		if n == 0 {
			n = 1
		}
		if f < ev.Frame+n {
			out = append(out, ev)
		}
	}
	return out
}
