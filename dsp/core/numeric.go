package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps, using an
// absolute test first and a relative one for large magnitudes.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// PowerRatioToDB converts a power ratio to dB (10*log10 convention).
// Returns +Inf when den is zero and num is not, NaN when both are zero.
func PowerRatioToDB(num, den float64) float64 {
	if num == 0 && den == 0 {
		return math.NaN()
	}

	if den == 0 {
		return math.Inf(1)
	}

	if num == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(num/den)
}
