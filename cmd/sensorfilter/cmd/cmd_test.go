package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/sensor-filter/internal/config"
	"github.com/cwbudde/sensor-filter/internal/record"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func fixClock(t *testing.T) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

func TestRunCommand(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	stdout, stderr, err := execute(t, "run", "--samples", "60", "--window", "5", "--output-dir", dir)
	require.NoError(t, err)

	rawPath := filepath.Join(dir, "raw_temperature_20260102-030405.csv")
	assert.Contains(t, stdout, "Raw data:      "+rawPath)
	assert.Contains(t, stdout, "moving average")
	assert.Contains(t, stdout, "low-pass")
	assert.Contains(t, stdout, "Plot image:")
	assert.Contains(t, stderr, "simulation complete")

	times, raw, err := record.ReadRaw(rawPath)
	require.NoError(t, err)
	assert.Len(t, times, 60)
	assert.Len(t, raw, 60)

	_, err = os.Stat(filepath.Join(dir, "plot_temperature_20260102-030405.png"))
	require.NoError(t, err)
}

func TestRunCommandNoPlotNoLowPass(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()

	stdout, _, err := execute(t, "run", "--sensor", "distance", "--samples", "20",
		"--low-pass-alpha", "0", "--no-plot", "--output-dir", dir)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Plot image:")
	assert.NotContains(t, stdout, "low-pass")

	data, err := os.ReadFile(filepath.Join(dir, "filtered_distance_20260102-030405.csv"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("time_s,raw,moving_average\n")))
}

func TestRunCommandInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--window", "0", "--sensor", "sonar", "--output-dir", t.TempDir())
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "window")
	assert.Contains(t, err.Error(), "sensor")
}

func TestRunCommandConfigFile(t *testing.T) {
	fixClock(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("samples: 12\nplot: false\n"), 0o644))

	_, _, err := execute(t, "--config", cfgPath, "run", "--output-dir", dir)
	require.NoError(t, err)

	times, _, err := record.ReadRaw(filepath.Join(dir, "raw_temperature_20260102-030405.csv"))
	require.NoError(t, err)
	assert.Len(t, times, 12)
	_, err = os.Stat(filepath.Join(dir, "plot_temperature_20260102-030405.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestFilterCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")
	out := filepath.Join(dir, "filtered.csv")
	require.NoError(t, record.WriteRaw(in, []float64{0, 0.1, 0.2, 0.3}, []float64{10, 0, 0, 0}))

	stdout, _, err := execute(t, "filter", "-i", in, "-o", out, "--window", "2", "--low-pass-alpha", "0.5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Filtered data: "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "time_s,raw,moving_average,low_pass\n" +
		"0.0000,10.000000,10.000000,10.000000\n" +
		"0.1000,0.000000,5.000000,5.000000\n" +
		"0.2000,0.000000,0.000000,2.500000\n" +
		"0.3000,0.000000,0.000000,1.250000\n"
	assert.Equal(t, want, string(data))
}

func TestFilterCommandMissingPaths(t *testing.T) {
	_, _, err := execute(t, "filter")
	require.ErrorIs(t, err, errMissingPath)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sensorfilter")
}

func TestSampleRate(t *testing.T) {
	assert.InDelta(t, 10.0, sampleRate([]float64{0, 0.1}, 0.05), 1e-9)
	assert.InDelta(t, 20.0, sampleRate([]float64{0}, 0.05), 1e-9)
	assert.InDelta(t, 20.0, sampleRate([]float64{1, 1}, 0.05), 1e-9)
}
