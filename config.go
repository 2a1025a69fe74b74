package heartbloom

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the animation and its host.
type Config struct {
	// Seed seeds the particle generator. Zero means the host picks one.
	Seed      uint64          `yaml:"seed"`
	Window    WindowConfig    `yaml:"window"`
	Shape     ShapeConfig     `yaml:"shape"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Render    RenderConfig    `yaml:"render"`
	Input     InputConfig     `yaml:"input"`
}

// WindowConfig holds display settings for Run.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	ShowFPS   bool   `yaml:"show_fps"`
	Resizable bool   `yaml:"resizable"`
	// ScreenshotDir receives PNG captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// InputConfig maps host input to animation and camera changes.
type InputConfig struct {
	// WheelSensitivity converts one wheel step into a rotation speed change.
	// Scrolling up (positive wheel Y) speeds the rotation up.
	WheelSensitivity float64 `yaml:"wheel_sensitivity"`
	// ZoomStep is the distance factor applied per zoom key press.
	ZoomStep float64 `yaml:"zoom_step"`
	// ZoomDuration is the zoom tween length in seconds.
	ZoomDuration float64 `yaml:"zoom_duration"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("heartbloom: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file overwrite the defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every setting that would make generation, the engine or
// the host fail.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Shape.Count <= 0 {
		fail("shape.count %d must be positive", c.Shape.Count)
	}
	if c.Shape.FlowCount < 0 {
		fail("shape.flow_count %d must not be negative", c.Shape.FlowCount)
	}
	if c.Shape.HalfExtent < 0 {
		fail("shape.half_extent %v must not be negative", c.Shape.HalfExtent)
	}
	if !(c.Animation.CycleDuration > 0) {
		fail("animation.cycle_duration %v must be positive", c.Animation.CycleDuration)
	}
	if !(c.Animation.TickDelta > 0) {
		fail("animation.tick_delta %v must be positive", c.Animation.TickDelta)
	}
	if _, err := Easing(c.Animation.Easing); err != nil {
		fail("animation.easing %q is not registered", c.Animation.Easing)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		fail("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		fail("camera.fov %v must be in (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		fail("camera near %v / far %v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far)
	}
	if _, ok := ParseBlendMode(c.Render.Blend); !ok {
		fail("render.blend %q is not one of normal, add, screen", c.Render.Blend)
	}
	if c.Render.Opacity < 0 || c.Render.Opacity > 1 {
		fail("render.opacity %v must be in [0, 1]", c.Render.Opacity)
	}
	return errors.Join(errs...)
}
