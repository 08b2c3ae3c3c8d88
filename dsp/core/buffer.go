package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Subtract writes a[i]-b[i] into dst and returns dst resized to the shorter
// of a and b.
func Subtract(dst, a, b []float64) []float64 {
	n := min(len(a), len(b))
	dst = EnsureLen(dst, n)
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
	return dst
}

// Diff writes the first differences x[i+1]-x[i] into dst and returns it.
// The result is one element shorter than x, or empty for len(x) < 2.
func Diff(dst, x []float64) []float64 {
	if len(x) < 2 {
		return dst[:0]
	}
	dst = EnsureLen(dst, len(x)-1)
	for i := range dst {
		dst[i] = x[i+1] - x[i]
	}
	return dst
}
