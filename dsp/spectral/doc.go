// Package spectral composes frequency-domain edits over one transform round.
//
// A [Shaper] rewrites a spectrum in place. A [Chain] holds an ordered list of
// shapers built once at construction; Process lifts the samples to complex
// values, runs the forward transform, hands the spectrum to every stage in
// order, runs the inverse transform once and returns the real part. Stacking
// a low-pass, an equalizer and a normalizer therefore costs a single
// forward/inverse pair.
//
// Frequency rules see bins folded about Nyquist, so bin N-k is edited
// exactly like bin k. A spectrum that stays conjugate-symmetric loses nothing
// when the real part is taken, and running stages in one round gives the same
// result as running them one round at a time.
//
// Buffers must have a power-of-two length; other lengths fail with
// fft.ErrInvalidLength. Nothing is padded or truncated.
package spectral
