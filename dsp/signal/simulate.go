package signal

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/sensor-filter/dsp/core"
)

var (
	// ErrUnknownSensor is returned for a sensor kind or name that is not recognized.
	ErrUnknownSensor = errors.New("signal: unknown sensor")
	// ErrInvalidSamples is returned for a negative sample count.
	ErrInvalidSamples = errors.New("signal: sample count must be >= 0")
	// ErrInvalidNoiseStd is returned for a negative or non-finite noise standard deviation.
	ErrInvalidNoiseStd = errors.New("signal: noise std must be finite and >= 0")
)

const (
	temperatureBaseline = 25.0 // °C
	temperatureDrift    = 0.02 // °C per second
	temperatureRippleHz = 0.05

	distanceOffset   = 0.5 // m
	distanceMotionHz = 0.25
)

// Simulator generates sensor readings on a fixed time base.
//
// A Simulator is not safe for concurrent use; it advances its random source.
type Simulator struct {
	cfg   core.SamplingConfig
	noise distuv.Normal
}

// NewSimulator creates a simulator drawing noise from src. A nil src is
// replaced by a source seeded with 1.
func NewSimulator(src rand.Source, opts ...core.SamplingOption) *Simulator {
	if src == nil {
		src = rand.NewSource(1)
	}
	return &Simulator{
		cfg:   core.ApplySamplingOptions(opts...),
		noise: distuv.Normal{Mu: 0, Sigma: 0, Src: src},
	}
}

// Config returns the sampling configuration.
func (s *Simulator) Config() core.SamplingConfig {
	return s.cfg
}

// Times returns the time axis k*Period for k in [0, samples).
func (s *Simulator) Times(samples int) []float64 {
	out := make([]float64, max(samples, 0))
	for k := range out {
		out[k] = s.cfg.Time(k)
	}
	return out
}

// Generate dispatches to the model selected by kind.
func (s *Simulator) Generate(kind SensorKind, samples int, amplitude, noiseStd float64) (times, values []float64, err error) {
	switch kind {
	case SensorTemperature:
		return s.Temperature(samples, amplitude, noiseStd)
	case SensorDistance:
		return s.Distance(samples, amplitude, noiseStd)
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownSensor, kind)
	}
}

// Temperature simulates a heater warming up:
//
//	x(t) = 25 + 0.02*t + amplitude*sin(2*pi*0.05*t) + N(0, noiseStd)
func (s *Simulator) Temperature(samples int, amplitude, noiseStd float64) (times, values []float64, err error) {
	return s.generate(samples, noiseStd, func(t float64) float64 {
		ripple := amplitude * math.Sin(2*math.Pi*temperatureRippleHz*t)
		return temperatureBaseline + temperatureDrift*t + ripple
	}, false)
}

// Distance simulates an object oscillating around 0.5 m. Readings are
// clipped at zero since a range sensor cannot report negative distances.
func (s *Simulator) Distance(samples int, amplitude, noiseStd float64) (times, values []float64, err error) {
	return s.generate(samples, noiseStd, func(t float64) float64 {
		return distanceOffset + amplitude*math.Sin(2*math.Pi*distanceMotionHz*t)
	}, true)
}

func (s *Simulator) generate(samples int, noiseStd float64, ideal func(t float64) float64, clipAtZero bool) ([]float64, []float64, error) {
	if samples < 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidSamples, samples)
	}
	if noiseStd < 0 || !core.IsFinite(noiseStd) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidNoiseStd, noiseStd)
	}

	s.noise.Sigma = noiseStd
	times := s.Times(samples)
	values := make([]float64, samples)
	for k, t := range times {
		v := ideal(t) + s.noise.Rand()
		if clipAtZero {
			v = math.Max(0, v)
		}
		values[k] = v
	}
	return times, values, nil
}
