package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"planeview/internal/config"
)

func printConfig(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append(args, "--print-config"))
	if err := cmd.Execute(); err != nil {
		return config.Config{}, err
	}
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &cfg))
	return cfg, nil
}

func TestPrintDefaults(t *testing.T) {
	cfg, err := printConfig(t)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "planeview.yaml")
	require.NoError(t, os.WriteFile(p, []byte("watch: true\nremote:\n  listen: 127.0.0.1:9000\ninput:\n  hit_radius: 2\n"), 0o644))

	cfg, err := printConfig(t, "--config", p, "--listen", "127.0.0.1:7070", "--xrange", "-1,1", "--frame-interval", "50ms")
	require.NoError(t, err)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "127.0.0.1:7070", cfg.Remote.Listen)
	assert.Equal(t, 2.0, cfg.Input.HitRadius)
	assert.Equal(t, -1.0, cfg.View.Min.X)
	assert.Equal(t, 1.0, cfg.View.Max.X)
	assert.Equal(t, config.Default().View.Min.Y, cfg.View.Min.Y)
	assert.Equal(t, 50*time.Millisecond, cfg.View.FrameInterval)
}

func TestBadFlags(t *testing.T) {
	_, err := printConfig(t, "--xrange", "1")
	assert.ErrorContains(t, err, "--xrange")

	_, err = printConfig(t, "--yrange", "3,-3")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = printConfig(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = printConfig(t, "a.csv", "b.csv")
	assert.Error(t, err)
}
