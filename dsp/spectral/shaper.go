package spectral

import "github.com/cwbudde/algo-spectral/dsp/spectrum"

// Shaper rewrites an N-point spectrum in place. Bin k corresponds to
// k*sampleRate/N Hz. Shapers that keep the spectrum conjugate-symmetric keep
// the inverse transform real.
type Shaper interface {
	Shape(bins []complex128, sampleRate float64) error
}

// ShaperFunc adapts a function to [Shaper].
type ShaperFunc func(bins []complex128, sampleRate float64) error

// Shape calls f.
func (f ShaperFunc) Shape(bins []complex128, sampleRate float64) error {
	return f(bins, sampleRate)
}

// BinRule is a stateless per-bin rewrite. It receives the bin's folded
// frequency in Hz (see spectrum.FoldedFrequency) and the bin value and
// returns the replacement value. Bins k and N-k see the same frequency.
type BinRule func(freqHz float64, bin complex128) complex128

// Shape applies r to every bin.
func (r BinRule) Shape(bins []complex128, sampleRate float64) error {
	n := len(bins)
	for k, c := range bins {
		bins[k] = r(spectrum.FoldedFrequency(k, n, sampleRate), c)
	}

	return nil
}

// Gain returns a rule that multiplies a bin by the gain chosen by gainAt.
func Gain(gainAt func(freqHz float64) float64) BinRule {
	return func(freqHz float64, bin complex128) complex128 {
		g := gainAt(freqHz)
		if g == 1 {
			return bin
		}

		return bin * complex(g, 0)
	}
}

// Zero returns a rule that clears bins for which reject reports true.
func Zero(reject func(freqHz float64) bool) BinRule {
	return func(freqHz float64, bin complex128) complex128 {
		if reject(freqHz) {
			return 0
		}

		return bin
	}
}
