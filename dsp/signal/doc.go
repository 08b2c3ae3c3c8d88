// Package signal simulates noisy sensor readings.
//
// A [Simulator] produces a time axis and a raw sample sequence for a
// temperature probe (slow drift plus ripple) or a distance sensor (periodic
// motion, clipped at zero). Gaussian measurement noise is drawn from an
// explicit random source owned by the simulator, so two simulators built from
// equally seeded sources produce identical sequences.
package signal
