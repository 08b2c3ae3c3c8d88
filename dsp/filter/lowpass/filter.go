package lowpass

import (
	"errors"
	"fmt"
)

// ErrInvalidAlpha is returned when alpha lies outside (0, 1].
var ErrInvalidAlpha = errors.New("lowpass: alpha must be in (0, 1]")

// Filter is a streaming exponential smoothing filter.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	alpha  float64
	y      float64
	seeded bool
}

// New creates a low-pass filter with smoothing factor alpha.
func New(alpha float64) (*Filter, error) {
	if err := validate(alpha); err != nil {
		return nil, err
	}
	return &Filter{alpha: alpha}, nil
}

func validate(alpha float64) error {
	// The negated form also rejects NaN.
	if !(alpha > 0 && alpha <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}
	return nil
}

// ProcessSample filters one input sample. The first sample after New or
// Reset seeds the filter and is returned unchanged.
func (f *Filter) ProcessSample(x float64) float64 {
	switch {
	case !f.seeded:
		f.seeded = true
		f.y = x
	case f.alpha == 1:
		f.y = x
	default:
		f.y = f.alpha*x + (1-f.alpha)*f.y
	}
	return f.y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least len(src) long.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset returns the filter to the unseeded state.
func (f *Filter) Reset() {
	f.y = 0
	f.seeded = false
}

// Alpha returns the smoothing factor.
func (f *Filter) Alpha() float64 {
	return f.alpha
}

// Seeded reports whether the filter has consumed at least one sample.
func (f *Filter) Seeded() bool {
	return f.seeded
}

// Last returns the most recent output, or 0 before the first sample.
func (f *Filter) Last() float64 {
	return f.y
}

// Apply returns the exponentially smoothed samples. The output has the same
// length as the input; an empty input yields an empty output.
func Apply(samples []float64, alpha float64) ([]float64, error) {
	if err := validate(alpha); err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	f := Filter{alpha: alpha}
	f.ProcessBlockTo(out, samples)
	return out, nil
}
