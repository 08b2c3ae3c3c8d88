package testutil

import (
	"math"
	"math/rand"
)

// NoisyRamp returns offset + slope*i plus uniform noise in [-noise, noise],
// seeded for reproducibility.
func NoisyRamp(seed int64, offset, slope, noise float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = offset + slope*float64(i) + (rng.Float64()*2-1)*noise
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	return NoisyRamp(seed, 0, 0, amplitude, length)
}

// Step returns zeros up to pos and level from pos on.
func Step(length, pos int, level float64) []float64 {
	out := make([]float64, length)
	for i := max(pos, 0); i < length; i++ {
		out[i] = level
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NaiveMovingAverage recomputes every window mean from scratch. It is the
// reference the ring-buffer implementation is checked against.
func NaiveMovingAverage(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		lo := max(0, i-window+1)
		var sum float64
		for _, v := range x[lo : i+1] {
			sum += v
		}
		out[i] = sum / float64(i-lo+1)
	}
	return out
}

// Mean returns the arithmetic mean of x, or NaN for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
