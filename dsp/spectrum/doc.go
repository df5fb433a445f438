// Package spectrum provides bin-level helpers for spectra produced by
// package fft: bin frequencies, magnitudes, powers, phases and peaks.
//
// Bin k of an N-point spectrum sampled at sampleRate Hz sits at
// k*sampleRate/N Hz. For real input, bin N-k is the conjugate mirror of bin k;
// [FoldedFrequency] maps both to the same frequency in [0, sampleRate/2].
package spectrum
