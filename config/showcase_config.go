package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"gopkg.in/yaml.v3"
)

//go:embed assets/showcase.yaml
var defaultShowcaseYAML []byte

var (
	ErrTooFewWaypoints = errors.New("tour needs at least two waypoints")
	ErrUnknownTour     = errors.New("unknown tour")
	ErrDuplicateTour   = errors.New("duplicate tour name")
	ErrUnknownEasing   = errors.New("unknown easing")
	ErrInvalid         = errors.New("invalid configuration")
)

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Title         string  `yaml:"title"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	PixelsPerLine float32 `yaml:"pixels_per_line"`
	VSync         bool    `yaml:"vsync"`
	MSAA          bool    `yaml:"msaa"`
}

// CameraConfig holds the perspective settings and the position the camera starts at before a
// controller takes over.
type CameraConfig struct {
	Fov   float32    `yaml:"fov"` // degrees
	Near  float32    `yaml:"near"`
	Far   float32    `yaml:"far"`
	Start [3]float32 `yaml:"start,flow"`
}

// ScrollConfig is the tuning of the scroll-driven tour camera.
type ScrollConfig struct {
	VelocityDecay   float32       `yaml:"velocity_decay"`
	VelocityGain    float32       `yaml:"velocity_gain"`
	MaxVelocity     float32       `yaml:"max_velocity"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	FarLerpSpeed    float32       `yaml:"far_lerp_speed"`
	NearLerpSpeed   float32       `yaml:"near_lerp_speed"`
	FarThreshold    float32       `yaml:"far_threshold"`
	PositionDamping float32       `yaml:"position_damping"`
	LookDamping     float32       `yaml:"look_damping"`
	BobAmplitude    float32       `yaml:"bob_amplitude"`
	BobFrequency    float32       `yaml:"bob_frequency"`
	SwayAmplitude   float32       `yaml:"sway_amplitude"`
	SwayFrequency   float32       `yaml:"sway_frequency"`
	TouchBlend      float32       `yaml:"touch_blend"`
	TouchDamping    float32       `yaml:"touch_damping"`
	InertiaGain     float32       `yaml:"inertia_gain"`
	InertiaDecay    float32       `yaml:"inertia_decay"`
	InertiaCutoff   float32       `yaml:"inertia_cutoff"`
	Easing          string        `yaml:"easing"`
	SnapOnAttach    bool          `yaml:"snap_on_attach"`
	ReferenceFPS    float32       `yaml:"reference_fps"`
}

// OrbitConfig is the tuning of the free-look orbit camera.
type OrbitConfig struct {
	Target        [3]float32 `yaml:"target,flow"`
	Start         [3]float32 `yaml:"start,flow"`
	Fov           float32    `yaml:"fov"`
	MinDistance   float32    `yaml:"min_distance"`
	MaxDistance   float32    `yaml:"max_distance"`
	MaxPolarAngle float32    `yaml:"max_polar_angle"`
	RotateSpeed   float32    `yaml:"rotate_speed"`
	ZoomSpeed     float32    `yaml:"zoom_speed"`
	Frequency     float64    `yaml:"frequency"`
	DampingRatio  float64    `yaml:"damping_ratio"`
}

// WaypointConfig is one keyframe of a tour.
type WaypointConfig struct {
	Position [3]float32 `yaml:"position,flow"`
	LookAt   [3]float32 `yaml:"look_at,flow"`
	Speed    float32    `yaml:"speed"`
}

// TourConfig is a named waypoint path, optionally tied to the model it walks through.
type TourConfig struct {
	Name      string           `yaml:"name"`
	Model     string           `yaml:"model,omitempty"`
	Waypoints []WaypointConfig `yaml:"waypoints"`
}

// ShowcaseConfig is the complete viewer configuration.
type ShowcaseConfig struct {
	Window        WindowConfig `yaml:"window"`
	Camera        CameraConfig `yaml:"camera"`
	Scroll        ScrollConfig `yaml:"scroll"`
	Orbit         OrbitConfig  `yaml:"orbit"`
	BoundsPadding float32      `yaml:"bounds_padding"`
	DefaultTour   string       `yaml:"default_tour"`
	Tours         []TourConfig `yaml:"tours"`

	// baseDir resolves relative model paths; empty for the embedded defaults.
	baseDir string
}

// Default returns the built-in configuration: the apartment walk-through with the
// stock scroll and orbit tuning.
//
// Returns:
//   - *ShowcaseConfig: a fresh copy of the defaults
func Default() *ShowcaseConfig {
	var c ShowcaseConfig
	if err := yaml.Unmarshal(defaultShowcaseYAML, &c); err != nil {
		panic(fmt.Errorf("embedded showcase config is corrupt: %w", err))
	}
	return &c
}

// Load reads a YAML file layered over the defaults. Keys absent from the file keep their
// default values; a tours list in the file replaces the default tours entirely.
// An empty path returns the defaults.
//
// Parameters:
//   - path: config file path, or "" for defaults only
//
// Returns:
//   - *ShowcaseConfig: the merged, validated configuration
//   - error: error if the file cannot be read, decoded or validated
func Load(path string) (*ShowcaseConfig, error) {
	c := Default()
	if path == "" {
		return c, c.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := c.merge(data); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	c.baseDir = filepath.Dir(path)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Config] loaded %s (%d tours, default %q)", path, len(c.Tours), c.DefaultTour)
	return c, nil
}

// Parse is Load for in-memory YAML.
//
// Parameters:
//   - data: YAML document bytes
//
// Returns:
//   - *ShowcaseConfig: the merged, validated configuration
//   - error: error if decoding or validation fails
func Parse(data []byte) (*ShowcaseConfig, error) {
	c := Default()
	if err := c.merge(data); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ShowcaseConfig) merge(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Validate checks the configuration and returns the first problem found.
// Errors wrap ErrInvalid, ErrTooFewWaypoints, ErrDuplicateTour, ErrUnknownTour or ErrUnknownEasing.
//
// Returns:
//   - error: nil if the configuration is usable
func (c *ShowcaseConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Orbit.MinDistance <= 0 || c.Orbit.MaxDistance < c.Orbit.MinDistance {
		return fmt.Errorf("%w: orbit distance [%v, %v]", ErrInvalid, c.Orbit.MinDistance, c.Orbit.MaxDistance)
	}
	if _, err := easingFunc(c.Scroll.Easing); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Tours))
	for _, t := range c.Tours {
		if t.Name == "" {
			return fmt.Errorf("%w: tour without a name", ErrInvalid)
		}
		if seen[t.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateTour, t.Name)
		}
		seen[t.Name] = true

		if len(t.Waypoints) < 2 {
			return fmt.Errorf("tour %q has %d: %w", t.Name, len(t.Waypoints), ErrTooFewWaypoints)
		}
		for i, wp := range t.Waypoints {
			if !finite3(wp.Position) || !finite3(wp.LookAt) || !common.IsFinite(wp.Speed) {
				return fmt.Errorf("%w: tour %q waypoint %d is not finite", ErrInvalid, t.Name, i)
			}
		}
	}

	if c.DefaultTour != "" && !seen[c.DefaultTour] {
		return fmt.Errorf("default %w %q", ErrUnknownTour, c.DefaultTour)
	}
	return nil
}

// Tour looks up a tour by name. An empty name selects the default tour, or the first tour
// when no default is set.
//
// Parameters:
//   - name: the tour name
//
// Returns:
//   - TourConfig: the tour
//   - error: ErrUnknownTour if no tour matches
func (c *ShowcaseConfig) Tour(name string) (TourConfig, error) {
	if name == "" {
		name = c.DefaultTour
	}
	for _, t := range c.Tours {
		if name == "" || t.Name == name {
			return t, nil
		}
	}
	return TourConfig{}, fmt.Errorf("%w %q", ErrUnknownTour, name)
}

// TourNames lists the configured tours in file order.
func (c *ShowcaseConfig) TourNames() []string {
	names := make([]string, 0, len(c.Tours))
	for _, t := range c.Tours {
		names = append(names, t.Name)
	}
	return names
}

// ModelPath resolves a tour's model against the config file's directory.
//
// Parameters:
//   - t: the tour
//
// Returns:
//   - string: the model path, or "" if the tour has none
func (c *ShowcaseConfig) ModelPath(t TourConfig) string {
	if t.Model == "" || filepath.IsAbs(t.Model) || c.baseDir == "" {
		return t.Model
	}
	return filepath.Join(c.baseDir, t.Model)
}

func finite3(v [3]float32) bool {
	return common.IsFinite(v[0]) && common.IsFinite(v[1]) && common.IsFinite(v[2])
}
