package noise

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/sensor-filter/dsp/core"
)

var (
	// ErrEmptyInput is returned when there are no samples to compare.
	ErrEmptyInput = errors.New("noise: input is empty")
	// ErrLengthMismatch is returned when raw and filtered differ in length.
	ErrLengthMismatch = errors.New("noise: raw and filtered lengths differ")
	// ErrInvalidSampleRate is returned for a sample rate that is not finite and positive.
	ErrInvalidSampleRate = errors.New("noise: sample rate must be positive")
)

// minSpectrumLen is the shortest input analyzed in the frequency domain.
const minSpectrumLen = 8

// Report summarizes a raw/filtered pair.
type Report struct {
	Samples int

	RawMean      float64
	RawStd       float64
	FilteredMean float64
	FilteredStd  float64

	// ResidualRMS is the RMS of raw - filtered.
	ResidualRMS float64

	// Roughness is the standard deviation of first differences.
	RawRoughness      float64
	FilteredRoughness float64

	// HighBandCutoff is the lower edge (Hz) of the band used for HighBandAttenuationDB.
	HighBandCutoff float64
	// HighBandAttenuationDB is 10*log10(P_raw/P_filtered) above HighBandCutoff.
	// Equal band powers give 0. NaN when the input is too short for a spectrum.
	HighBandAttenuationDB float64
}

// RoughnessReduction returns RawRoughness / FilteredRoughness. Equal
// roughness, including two flat signals, yields 1; a flat output of a rough
// input yields +Inf.
func (r Report) RoughnessReduction() float64 {
	if r.RawRoughness == r.FilteredRoughness {
		return 1
	}
	if r.FilteredRoughness == 0 {
		return math.Inf(1)
	}
	return r.RawRoughness / r.FilteredRoughness
}

// Compare measures the effect of a filter given its input and output.
func Compare(raw, filtered []float64, sampleRate float64) (Report, error) {
	if len(raw) == 0 {
		return Report{}, ErrEmptyInput
	}
	if len(raw) != len(filtered) {
		return Report{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(raw), len(filtered))
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	r := Report{
		Samples:               len(raw),
		HighBandCutoff:        sampleRate / 4,
		HighBandAttenuationDB: math.NaN(),
	}
	r.RawMean, r.RawStd = meanStd(raw)
	r.FilteredMean, r.FilteredStd = meanStd(filtered)

	residual := core.Subtract(nil, raw, filtered)
	r.ResidualRMS = floats.Norm(residual, 2) / math.Sqrt(float64(len(residual)))

	var scratch []float64
	scratch = core.Diff(scratch, raw)
	_, r.RawRoughness = meanStd(scratch)
	scratch = core.Diff(scratch, filtered)
	_, r.FilteredRoughness = meanStd(scratch)

	if len(raw) >= minSpectrumLen {
		rawHigh, err := bandPower(raw, sampleRate, r.HighBandCutoff)
		if err != nil {
			return Report{}, err
		}
		filtHigh, err := bandPower(filtered, sampleRate, r.HighBandCutoff)
		if err != nil {
			return Report{}, err
		}
		if rawHigh == filtHigh {
			r.HighBandAttenuationDB = 0
		} else {
			r.HighBandAttenuationDB = core.PowerRatioToDB(rawHigh, filtHigh)
		}
	}

	return r, nil
}

// meanStd returns the mean and sample standard deviation; the deviation of
// fewer than two values is 0.
func meanStd(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

// bandPower returns the summed power spectrum of x above cutoffHz. The mean is
// removed and a Hann window applied before the transform.
func bandPower(x []float64, sampleRate, cutoffHz float64) (float64, error) {
	n := len(x)
	fftSize := nextPowerOf2(n)

	centered := make([]float64, n)
	mean := stat.Mean(x, nil)
	for i, v := range x {
		centered[i] = v - mean
	}
	vecmath.MulBlockInPlace(centered, hann(n))

	in := make([]complex128, fftSize)
	for i, v := range centered {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("noise: failed to create FFT plan: %w", err)
	}
	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, in); err != nil {
		return 0, fmt.Errorf("noise: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	binHz := sampleRate / float64(fftSize)
	var sum float64
	for k, p := range power {
		if float64(k)*binHz >= cutoffHz {
			sum += p
		}
	}
	return sum, nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
