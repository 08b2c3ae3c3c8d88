// Package lowpass provides a first-order exponential smoothing filter
// (single-pole IIR low-pass).
//
//	y[0] = x[0]
//	y[n] = alpha*x[n] + (1-alpha)*y[n-1]
//
// The filter is seeded with the first input sample rather than zero, so there
// is no start-up transient towards the signal level. alpha must lie in (0, 1]:
// values close to 1 track the input quickly, values close to 0 smooth heavily.
// alpha == 1 passes the input through unchanged.
package lowpass
