package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func split(in []complex128) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// BinFrequency returns the frequency in Hz of bin k in an n-point spectrum.
func BinFrequency(k, n int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(n)
}

// FoldedFrequency returns the frequency of bin k folded about Nyquist. Bins
// above n/2 report the frequency of their mirror bin n-k, so a rule keyed on
// the result treats both halves of a real signal's spectrum alike.
func FoldedFrequency(k, n int, sampleRate float64) float64 {
	return BinFrequency(min(k, n-k), n, sampleRate)
}

// Frequencies returns BinFrequency for every bin of an n-point spectrum.
func Frequencies(n int, sampleRate float64) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = BinFrequency(k, n, sampleRate)
	}
	return out
}

// Magnitude returns |X[k]| for each bin.
//
// The computation runs through algo-vecmath, which picks a SIMD kernel when
// the CPU supports one. Scratch buffers are pooled.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Phase returns arg(X[k]) in radians for each bin.
func Phase(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// Peak returns the largest bin magnitude and its index.
// An empty spectrum yields (0, -1).
func Peak(in []complex128) (float64, int) {
	if len(in) == 0 {
		return 0, -1
	}

	peak, idx := 0.0, 0
	for i, m := range Magnitude(in) {
		if m > peak {
			peak, idx = m, i
		}
	}
	return peak, idx
}

// Energy returns sum |X[k]|^2.
func Energy(in []complex128) float64 {
	sum := 0.0
	for _, p := range Power(in) {
		sum += p
	}
	return sum
}

// Scale multiplies every bin by gain in place.
func Scale(bins []complex128, gain float64) {
	g := complex(gain, 0)
	for i := range bins {
		bins[i] *= g
	}
}

// Polar rebuilds a bin from magnitude and phase.
func Polar(magnitude, phase float64) complex128 {
	sin, cos := math.Sincos(phase)
	return complex(magnitude*cos, magnitude*sin)
}
