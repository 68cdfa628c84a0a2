// Package config provides configuration loading and access for the particle field.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Field      FieldConfig      `yaml:"field"`
	Driver     DriverConfig     `yaml:"driver"`
	Background BackgroundConfig `yaml:"background"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Headless   HeadlessConfig   `yaml:"headless"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	Resizable bool `yaml:"resizable"`
}

// FieldConfig holds the particle field constants.
type FieldConfig struct {
	ParticleRadius    float64 `yaml:"particle_radius"`    // Draw radius and edge clamp margin
	AreaPerParticle   float64 `yaml:"area_per_particle"`  // Surface area per particle before clamping
	MinParticles      int     `yaml:"min_particles"`      // Lower bound on particle count
	MaxParticles      int     `yaml:"max_particles"`      // Upper bound on particle count
	InteractionRadius float64 `yaml:"interaction_radius"` // Pointer repulsion reach
	RepulsionScale    float64 `yaml:"repulsion_scale"`    // Repulsion = falloff * density * this
	ReturnSpeed       float64 `yaml:"return_speed"`       // Spring factor toward the baseline
	MaxDrift          float64 `yaml:"max_drift"`          // Drift per axis is uniform in [-this, this]
	DensityMin        float64 `yaml:"density_min"`
	DensityMax        float64 `yaml:"density_max"`
	Color             RGBA    `yaml:"color"`
}

// DriverConfig holds frame loop parameters.
type DriverConfig struct {
	ResizeDebounceMs int `yaml:"resize_debounce_ms"` // Quiet period before a resize reinitializes
	HeadlessTickMs   int `yaml:"headless_tick_ms"`   // Frame interval for timer-driven hosts
}

// BackgroundConfig holds the backdrop tint parameters.
type BackgroundConfig struct {
	Color     RGBA    `yaml:"color"`
	NoiseAmp  float64 `yaml:"noise_amp"`  // Brightness variation, 0 = flat fill
	Scale     float64 `yaml:"scale"`      // Noise frequency per pixel
	TimeSpeed float64 `yaml:"time_speed"` // Noise animation speed per second
	TexSize   int     `yaml:"tex_size"`   // Noise texture resolution (stretched to screen)
}

// TerminalConfig holds the text-mode host parameters.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Field pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // Field pixels per terminal row
}

// HeadlessConfig holds the synthetic pointer used by timer-driven runs.
type HeadlessConfig struct {
	OrbitRadius float64 `yaml:"orbit_radius"` // Fraction of the smaller surface side
	OrbitPeriod float64 `yaml:"orbit_period"` // Seconds per revolution
	LeaveEvery  float64 `yaml:"leave_every"`  // Seconds between pointer-leave spells, 0 = never
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames averaged by the perf collector
}

// RGBA is a YAML-friendly colour. Alpha is 0-255.
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Color converts to image/color.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ResizeDebounce time.Duration // Driver.ResizeDebounceMs as a duration
	HeadlessTick   time.Duration // Driver.HeadlessTickMs as a duration
	FrameDT        float64       // Seconds per frame at the target FPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the field cannot run with.
func (c *Config) validate() error {
	f := c.Field
	if f.AreaPerParticle <= 0 {
		return fmt.Errorf("field.area_per_particle must be positive, got %v", f.AreaPerParticle)
	}
	if f.MinParticles < 0 || f.MaxParticles < f.MinParticles {
		return fmt.Errorf("field particle bounds invalid: min=%d max=%d", f.MinParticles, f.MaxParticles)
	}
	if f.InteractionRadius <= 0 {
		return fmt.Errorf("field.interaction_radius must be positive, got %v", f.InteractionRadius)
	}
	if f.DensityMax < f.DensityMin {
		return fmt.Errorf("field density range invalid: [%v, %v)", f.DensityMin, f.DensityMax)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %vx%v", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Driver.ResizeDebounceMs < 0 {
		return fmt.Errorf("driver.resize_debounce_ms must not be negative, got %d", c.Driver.ResizeDebounceMs)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ResizeDebounce = time.Duration(c.Driver.ResizeDebounceMs) * time.Millisecond

	tick := c.Driver.HeadlessTickMs
	if tick <= 0 {
		tick = 16
	}
	c.Derived.HeadlessTick = time.Duration(tick) * time.Millisecond

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.FrameDT = 1.0 / float64(fps)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
