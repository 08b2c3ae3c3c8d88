package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.LowPassEnabled())
	assert.False(t, cfg.RandomSeed())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	content := "sensor: Distance\nsamples: 64\nwindow: 4\nlow-pass-alpha: 3\nseed: -1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "distance", cfg.Sensor)
	assert.Equal(t, 64, cfg.Samples)
	assert.Equal(t, 4, cfg.Window)
	assert.Equal(t, 1.0, cfg.Alpha)
	assert.True(t, cfg.RandomSeed())
	assert.Equal(t, 0.05, cfg.Dt)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SENSORFILTER_WINDOW", "25")
	t.Setenv("SENSORFILTER_NOISE_STD", "0.1")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Window)
	assert.Equal(t, 0.1, cfg.NoiseStd)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNormalizeDisablesLowPass(t *testing.T) {
	cfg := Default()
	cfg.Alpha = -0.5
	cfg = cfg.Normalize()
	assert.Equal(t, 0.0, cfg.Alpha)
	assert.False(t, cfg.LowPassEnabled())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{
		Sensor:    "humidity",
		Samples:   -1,
		Dt:        0,
		Window:    0,
		NoiseStd:  -1,
		OutputDir: " ",
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, want := range []string{"sensor", "samples", "dt", "window", "noise std", "output dir"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestSensorKind(t *testing.T) {
	cfg := Default()
	kind, err := cfg.SensorKind()
	require.NoError(t, err)
	assert.Equal(t, "temperature", kind.String())
}
