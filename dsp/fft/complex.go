package fft

// Lift converts real samples into complex values with zero imaginary part.
func Lift(samples []float64) []complex128 {
	out := make([]complex128, len(samples))
	for i, v := range samples {
		out[i] = complex(v, 0)
	}

	return out
}

// RealPart returns the real component of every value.
func RealPart(values []complex128) []float64 {
	out := make([]float64, len(values))
	for i, c := range values {
		out[i] = real(c)
	}

	return out
}

// Conj conjugates values in place.
func Conj(values []complex128) {
	for i, c := range values {
		values[i] = complex(real(c), -imag(c))
	}
}
