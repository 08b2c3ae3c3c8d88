// Package movingavg provides a boxcar (moving-average) FIR filter.
//
// A [Filter] keeps the most recent windowSize samples in a ring buffer together
// with a running sum, so each sample costs O(1) amortized work. The ring grows
// with the samples seen until it holds windowSize of them, so memory is bounded
// by min(windowSize, samples seen) and independent of the stream length.
//
// Until the window has filled, outputs average over the samples seen so far:
//
//	y[i] = mean(x[max(0, i-N+1) .. i])
//
// The running sum is maintained by adding the incoming sample and subtracting
// the evicted one. Over very long streams this accumulates floating-point
// rounding relative to summing the buffer from scratch. The drift is bounded
// by the magnitude of the samples and is accepted; outputs are never
// re-normalized.
//
// [Apply] is the batch form. Feeding the same samples one at a time through
// [Filter.ProcessSample] produces identical results.
package movingavg
