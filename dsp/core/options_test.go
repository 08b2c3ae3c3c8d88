package core

import "testing"

func TestApplySamplingOptions(t *testing.T) {
	cfg := ApplySamplingOptions(WithPeriod(0.01))
	if cfg.Period != 0.01 {
		t.Fatalf("period = %v, want 0.01", cfg.Period)
	}
	if !NearlyEqual(cfg.SampleRate(), 100, 1e-12) {
		t.Fatalf("sample rate = %v, want 100", cfg.SampleRate())
	}
}

func TestWithSampleRate(t *testing.T) {
	cfg := ApplySamplingOptions(WithSampleRate(4))
	if cfg.Period != 0.25 {
		t.Fatalf("period = %v, want 0.25", cfg.Period)
	}
	if got := cfg.Time(3); got != 0.75 {
		t.Fatalf("Time(3) = %v, want 0.75", got)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplySamplingOptions(WithPeriod(0), WithSampleRate(-1), nil)
	def := DefaultSamplingConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
