// Package noise quantifies how much a smoothing filter removed from a raw
// sensor sequence.
//
// [Compare] reports time-domain spread (standard deviation, sample-to-sample
// roughness, residual RMS) and the attenuation of the upper half of the
// spectrum, measured on Hann-windowed FFTs of the raw and filtered sequences.
package noise
