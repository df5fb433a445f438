package core

import (
	"math"
	"math/bits"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// The tolerance is absolute near zero and relative otherwise.
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

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidSampleRate reports whether sampleRate is a usable rate in Hz.
func ValidSampleRate(sampleRate float64) bool {
	return sampleRate > 0 && IsFinite(sampleRate)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a positive power of two n.
// The result is undefined for other inputs; check with IsPowerOfTwo first.
func Log2(n int) int {
	return bits.TrailingZeros(uint(n))
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
