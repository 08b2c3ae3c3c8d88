// Package config holds the run configuration of the sensor-filter tool and
// loads it from flags, environment and an optional config file via viper.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/cwbudde/sensor-filter/dsp/core"
	"github.com/cwbudde/sensor-filter/dsp/signal"
)

// EnvPrefix prefixes environment overrides, e.g. SENSORFILTER_WINDOW=20.
const EnvPrefix = "SENSORFILTER"

// Viper keys.
const (
	KeySensor    = "sensor"
	KeySamples   = "samples"
	KeyDt        = "dt"
	KeyWindow    = "window"
	KeyAlpha     = "low-pass-alpha"
	KeyAmplitude = "amplitude"
	KeyNoiseStd  = "noise-std"
	KeySeed      = "seed"
	KeyOutputDir = "output-dir"
	KeyPlot      = "plot"
)

// ErrInvalidConfig is returned by Validate and wraps every problem found.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one simulate-filter-record run.
type Config struct {
	Sensor    string  `mapstructure:"sensor"`
	Samples   int     `mapstructure:"samples"`
	Dt        float64 `mapstructure:"dt"`
	Window    int     `mapstructure:"window"`
	Alpha     float64 `mapstructure:"low-pass-alpha"`
	Amplitude float64 `mapstructure:"amplitude"`
	NoiseStd  float64 `mapstructure:"noise-std"`
	Seed      int64   `mapstructure:"seed"`
	OutputDir string  `mapstructure:"output-dir"`
	Plot      bool    `mapstructure:"plot"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Sensor:    signal.SensorTemperature.String(),
		Samples:   500,
		Dt:        0.05,
		Window:    10,
		Alpha:     0.2,
		Amplitude: 1.0,
		NoiseStd:  0.5,
		Seed:      42,
		OutputDir: "data",
		Plot:      true,
	}
}

// SetDefaults registers Default() values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeySensor, d.Sensor)
	v.SetDefault(KeySamples, d.Samples)
	v.SetDefault(KeyDt, d.Dt)
	v.SetDefault(KeyWindow, d.Window)
	v.SetDefault(KeyAlpha, d.Alpha)
	v.SetDefault(KeyAmplitude, d.Amplitude)
	v.SetDefault(KeyNoiseStd, d.NoiseStd)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyOutputDir, d.OutputDir)
	v.SetDefault(KeyPlot, d.Plot)
}

// New returns a viper instance with defaults and environment overrides
// configured. If file is non-empty it is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}
	return v, nil
}

// Load decodes v into a Config, normalizes it and validates the result.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize applies the alpha conventions: a non-positive alpha disables the
// low-pass stage (stored as 0) and values above 1 are clamped to 1.
func (c Config) Normalize() Config {
	c.Sensor = strings.ToLower(strings.TrimSpace(c.Sensor))
	if c.Alpha <= 0 {
		c.Alpha = 0
	} else {
		c.Alpha = core.Clamp(c.Alpha, 0, 1)
	}
	return c
}

// LowPassEnabled reports whether the low-pass stage runs.
func (c Config) LowPassEnabled() bool {
	return c.Alpha > 0
}

// RandomSeed reports whether the seed should come from the clock.
func (c Config) RandomSeed() bool {
	return c.Seed < 0
}

// SensorKind returns the parsed sensor.
func (c Config) SensorKind() (signal.SensorKind, error) {
	return signal.ParseSensorKind(c.Sensor)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := c.SensorKind(); err != nil {
		result = multierror.Append(result, fmt.Errorf("sensor must be one of %v: %w", signal.SensorNames(), err))
	}
	if c.Samples < 0 {
		result = multierror.Append(result, fmt.Errorf("samples must be >= 0, got %d", c.Samples))
	}
	if !(c.Dt > 0) || math.IsInf(c.Dt, 0) {
		result = multierror.Append(result, fmt.Errorf("dt must be a positive number of seconds, got %v", c.Dt))
	}
	if c.Window < 1 {
		result = multierror.Append(result, fmt.Errorf("window must be >= 1, got %d", c.Window))
	}
	if math.IsNaN(c.Alpha) {
		result = multierror.Append(result, errors.New("low-pass alpha must be a number"))
	}
	if !core.IsFinite(c.Amplitude) {
		result = multierror.Append(result, fmt.Errorf("amplitude must be finite, got %v", c.Amplitude))
	}
	if c.NoiseStd < 0 || !core.IsFinite(c.NoiseStd) {
		result = multierror.Append(result, fmt.Errorf("noise std must be >= 0, got %v", c.NoiseStd))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		result = multierror.Append(result, errors.New("output dir must not be empty"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
