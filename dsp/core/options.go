package core

// SamplingConfig describes the implicit time base of a sample sequence.
type SamplingConfig struct {
	// Period is the spacing between successive samples in seconds.
	Period float64
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns a 50 ms sampling period (20 Hz).
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Period: 0.05,
	}
}

// WithPeriod sets the sampling period in seconds.
func WithPeriod(period float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if period > 0 && IsFinite(period) {
			cfg.Period = period
		}
	}
}

// WithSampleRate sets the sampling period from a rate in Hz.
func WithSampleRate(sampleRate float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.Period = 1 / sampleRate
		}
	}
}

// SampleRate returns 1/Period.
func (c SamplingConfig) SampleRate() float64 {
	return 1 / c.Period
}

// Time returns the timestamp of sample k.
func (c SamplingConfig) Time(k int) float64 {
	return float64(k) * c.Period
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
