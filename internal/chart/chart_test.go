package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Input {
	return Input{
		Sensor:        "temperature",
		Unit:          "°C",
		Times:         []float64{0, 0.05, 0.1, 0.15},
		Raw:           []float64{25, 26, 24.5, 25.5},
		MovingAverage: []float64{25, 25.5, 25.25, 25},
		LowPass:       []float64{25, 25.2, 25.06, 25.148},
	}
}

func TestBuild(t *testing.T) {
	p, err := Build(sample())
	require.NoError(t, err)
	assert.Equal(t, "Temperature sensor: raw vs filtered", p.Title.Text)
	assert.Equal(t, "Measurement [°C]", p.Y.Label.Text)
}

func TestBuildLengthMismatch(t *testing.T) {
	in := sample()
	in.LowPass = in.LowPass[:2]
	_, err := Build(in)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestRenderPNG(t *testing.T) {
	in := sample()
	in.LowPass = nil
	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, Render(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Distance", capitalize("distance"))
	assert.Equal(t, "", capitalize(""))
}
