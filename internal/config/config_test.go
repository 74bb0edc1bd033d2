package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "planeview.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeFile(t, `
view:
  min: {x: -1, y: -2}
  frame_interval: 50ms
input:
  wheel_divisor: 300
theme:
  curve: "#FF0000"
watch: true
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, Point{X: -1, Y: -2}, cfg.View.Min)
	assert.Equal(t, Point{X: 10, Y: 6}, cfg.View.Max)
	assert.Equal(t, 50*time.Millisecond, cfg.View.FrameInterval)
	assert.Equal(t, 300.0, cfg.Input.WheelDivisor)
	assert.Equal(t, 2.7, cfg.Input.PinchFactor)
	assert.Equal(t, "#FF0000", cfg.Theme.Curve)
	assert.Equal(t, "#FFA500", cfg.Theme.Hover)
	assert.True(t, cfg.Watch)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "view: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"EmptyXRange", func(c *Config) { c.View.Max.X = c.View.Min.X }},
		{"InvertedYRange", func(c *Config) { c.View.Min.Y, c.View.Max.Y = 5, -5 }},
		{"ZeroMinScale", func(c *Config) { c.View.MinScale = 0 }},
		{"ScaleLimitsSwapped", func(c *Config) { c.View.MaxScale = c.View.MinScale / 2 }},
		{"NegativeMargin", func(c *Config) { c.View.FitMargin = -0.1 }},
		{"NoFrameInterval", func(c *Config) { c.View.FrameInterval = 0 }},
		{"ZeroWheelDivisor", func(c *Config) { c.Input.WheelDivisor = 0 }},
		{"ZeroPinch", func(c *Config) { c.Input.PinchFactor = 0 }},
		{"ZeroHitRadius", func(c *Config) { c.Input.HitRadius = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	_, err := Load(writeFile(t, "input:\n  zoom_divisor: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMarshalRoundTrip(t *testing.T) {
	b, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(b), "wheel_divisor: 600")

	cfg, err := Load(writeFile(t, string(b)))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
