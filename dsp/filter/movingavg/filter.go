package movingavg

import (
	"errors"
	"fmt"
)

// ErrInvalidWindowSize is returned when the window size is less than one.
var ErrInvalidWindowSize = errors.New("movingavg: window size must be >= 1")

// Filter is a streaming moving-average filter over a trailing window.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	size int
	ring []float64 // grows to size, then wraps
	pos  int       // oldest sample once the ring is full
	sum  float64
}

// New creates a moving-average filter averaging up to windowSize samples.
func New(windowSize int) (*Filter, error) {
	if err := validate(windowSize); err != nil {
		return nil, err
	}
	return &Filter{size: windowSize}, nil
}

func validate(windowSize int) error {
	if windowSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, windowSize)
	}
	return nil
}

// ProcessSample pushes x into the window and returns the mean of the
// samples currently held.
func (f *Filter) ProcessSample(x float64) float64 {
	if len(f.ring) < f.size {
		f.ring = append(f.ring, x)
		f.sum += x
		return f.sum / float64(len(f.ring))
	}

	f.sum -= f.ring[f.pos]
	f.ring[f.pos] = x
	f.sum += x

	f.pos++
	if f.pos == f.size {
		f.pos = 0
	}
	return f.sum / float64(f.size)
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

// Reset empties the window.
func (f *Filter) Reset() {
	f.ring = f.ring[:0]
	f.pos = 0
	f.sum = 0
}

// WindowSize returns the configured window capacity.
func (f *Filter) WindowSize() int {
	return f.size
}

// Len returns the number of samples currently averaged.
func (f *Filter) Len() int {
	return len(f.ring)
}

// Full reports whether the ramp-up phase is over.
func (f *Filter) Full() bool {
	return len(f.ring) == f.size
}

// Sum returns the running sum of the samples in the window.
func (f *Filter) Sum() float64 {
	return f.sum
}

// Apply returns the moving average of samples over windowSize. The output
// has the same length as the input; an empty input yields an empty output.
func Apply(samples []float64, windowSize int) ([]float64, error) {
	if err := validate(windowSize); err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out, nil
	}

	f := &Filter{size: windowSize, ring: make([]float64, 0, min(windowSize, len(samples)))}
	f.ProcessBlockTo(out, samples)
	return out, nil
}
