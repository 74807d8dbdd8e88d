package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndResolve(t *testing.T) {
	src := `model: spacecraft
width: 320
fps: 24
duration_sec: 3.5
camera:
  elevation: 35
  azimuth: -20
  view_span: 30
animation: out/spin.webp
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{})

	assert.Equal(t, "spacecraft", cfg.Model)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 320, cfg.Height, "height defaults to width")
	assert.Equal(t, 24, cfg.FPS)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 35.0, cfg.Camera.ElevationDeg)
	assert.Equal(t, 30.0, cfg.Camera.ViewSpan)
	assert.Equal(t, "out/spin.webp", cfg.Animation)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3500*time.Millisecond, cfg.Duration())
	assert.Greater(t, cfg.Workers, 0)
}

func TestFlagsOverrideFile(t *testing.T) {
	src := `model: mav
width: 480
fps: 30
`
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Resolve(Flags{Model: "cube", Width: 96, FPS: 12, Workers: 2})

	assert.Equal(t, "cube", cfg.Model)
	assert.Equal(t, 96, cfg.Width)
	assert.Equal(t, 12, cfg.FPS)
	assert.Equal(t, 2, cfg.Workers)
}

func TestResolveDefaultsWithoutFile(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	assert.Equal(t, "mav", cfg.Model)
	assert.Equal(t, "demo", cfg.Script)
	assert.Equal(t, 480, cfg.Width)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "mav.webp", cfg.Animation)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unterminated"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
