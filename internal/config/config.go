// Package config loads planeview settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	View   View   `yaml:"view"`
	Input  Input  `yaml:"input"`
	Theme  Theme  `yaml:"theme"`
	Remote Remote `yaml:"remote"`
	// Watch reloads the open point file when it changes on disk.
	Watch bool `yaml:"watch"`
}

// Point is a graph position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type View struct {
	// Min and Max are the initial bottom-left and top-right corners.
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`

	MinScale      float64       `yaml:"min_scale"`
	MaxScale      float64       `yaml:"max_scale"`
	FitMargin     float64       `yaml:"fit_margin"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

type Input struct {
	ZoomDivisor  float64 `yaml:"zoom_divisor"`
	WheelDivisor float64 `yaml:"wheel_divisor"`
	PinchFactor  float64 `yaml:"pinch_factor"`
	// WheelStep is the deltaY of one wheel notch.
	WheelStep float64 `yaml:"wheel_step"`
	// HitRadius is the pick radius in text lines.
	HitRadius float64 `yaml:"hit_radius"`
	// PanStep is the fraction of the visible extent an arrow key pans.
	PanStep float64 `yaml:"pan_step"`
}

type Theme struct {
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Border     string `yaml:"border"`
	Axis       string `yaml:"axis"`
	Grid       string `yaml:"grid"`
	Label      string `yaml:"label"`
	Curve      string `yaml:"curve"`
	Point      string `yaml:"point"`
	Hover      string `yaml:"hover"`
}

type Remote struct {
	// Listen is the bridge address; empty disables it.
	Listen string `yaml:"listen"`
}

func Default() Config {
	return Config{
		View: View{
			Min:           Point{X: -10, Y: -6},
			Max:           Point{X: 10, Y: 6},
			MinScale:      1e-12,
			MaxScale:      1e12,
			FitMargin:     0.05,
			FrameInterval: 33 * time.Millisecond,
		},
		Input: Input{
			ZoomDivisor:  1000,
			WheelDivisor: 600,
			PinchFactor:  2.7,
			WheelStep:    100,
			HitRadius:    1,
			PanStep:      0.1,
		},
		Theme: Theme{
			Foreground: "#E6E6E6",
			Accent:     "#7C3AED",
			Border:     "#243141",
			Axis:       "#E6E6E6",
			Grid:       "#3B4A5C",
			Label:      "#9AA5B1",
			Curve:      "#54F330",
			Point:      "#7C3AED",
			Hover:      "#FFA500",
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a viewer cannot run with.
func (c Config) Validate() error {
	switch {
	case c.View.Min.X >= c.View.Max.X || c.View.Min.Y >= c.View.Max.Y:
		return fmt.Errorf("%w: view min must be below max", ErrInvalid)
	case c.View.MinScale <= 0 || c.View.MaxScale <= c.View.MinScale:
		return fmt.Errorf("%w: need 0 < min_scale < max_scale", ErrInvalid)
	case c.View.FitMargin < 0:
		return fmt.Errorf("%w: fit_margin is negative", ErrInvalid)
	case c.View.FrameInterval <= 0:
		return fmt.Errorf("%w: frame_interval must be positive", ErrInvalid)
	case c.Input.ZoomDivisor <= 0 || c.Input.WheelDivisor <= 0:
		return fmt.Errorf("%w: zoom divisors must be positive", ErrInvalid)
	case c.Input.PinchFactor <= 0 || c.Input.WheelStep <= 0:
		return fmt.Errorf("%w: pinch_factor and wheel_step must be positive", ErrInvalid)
	case c.Input.HitRadius <= 0:
		return fmt.Errorf("%w: hit_radius must be positive", ErrInvalid)
	}
	return nil
}

// Marshal renders c as YAML, for --print-config.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
