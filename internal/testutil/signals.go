package testutil

import (
	"math"
	"math/rand"
)

// Sine generates amplitude*sin(2*pi*freqHz*n/sampleRate) for n in [0, length).
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Tones sums unit-amplitude sines at each frequency.
func Tones(sampleRate float64, length int, freqsHz ...float64) []float64 {
	out := make([]float64, length)
	for _, f := range freqsHz {
		for i, v := range Sine(f, sampleRate, 1, length) {
			out[i] += v
		}
	}
	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude) with a fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ComplexNoise generates seeded complex noise with both parts in [-amplitude, amplitude).
func ComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	re := Noise(seed, amplitude, length)
	im := Noise(seed+1, amplitude, length)
	out := make([]complex128, length)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

// Impulse generates a unit impulse at pos. Out-of-range positions yield silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DFT is a direct O(N^2) reference transform.
func DFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for t, v := range x {
			sin, cos := math.Sincos(-2 * math.Pi * float64(k*t%n) / float64(n))
			sum += v * complex(cos, sin)
		}
		out[k] = sum
	}
	return out
}
