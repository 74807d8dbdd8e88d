// Package config loads viewer settings from a YAML file and reconciles
// them with CLI flags.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Alec-Izett/AircraftSim-Izett/internal/logging"
	"github.com/Alec-Izett/AircraftSim-Izett/internal/viewer"
)

// Config holds all configurable render and output settings.
type Config struct {
	// Scene
	Model      string        `yaml:"model"`  // builtin name or path to a model file
	Script     string        `yaml:"script"` // builtin scenario or path to a keyframe file
	Background string        `yaml:"background"`
	Camera     viewer.Camera `yaml:"camera"`

	// Render settings
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Supersample int     `yaml:"supersample"`
	FPS         int     `yaml:"fps"`
	DurationSec float64 `yaml:"duration_sec"`
	Workers     int     `yaml:"workers"`

	// Output
	Animation string `yaml:"animation"`  // animated WebP path
	FramesDir string `yaml:"frames_dir"` // optional per-frame stills

	Logging logging.Config `yaml:"logging"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Model       string
	Script      string
	Animation   string
	FramesDir   string
	Width       int
	FPS         int
	DurationSec float64
	Workers     int
}

// Load reads a YAML config file. Fields not set in the file keep their zero
// values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI flags over the file values, then fills remaining
// empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Script != "" {
		c.Script = flags.Script
	}
	if flags.Animation != "" {
		c.Animation = flags.Animation
	}
	if flags.FramesDir != "" {
		c.FramesDir = flags.FramesDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.DurationSec > 0 {
		c.DurationSec = flags.DurationSec
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Model == "" {
		c.Model = "mav"
	}
	if c.Script == "" {
		c.Script = "demo"
	}
	if c.Width <= 0 {
		c.Width = 480
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Animation == "" {
		c.Animation = "mav.webp"
	}
}

// Duration returns the animation length, defaulting from the scenario when
// the config leaves it unset.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationSec * float64(time.Second))
}
