// Package fft implements the discrete Fourier transform used by the spectral
// effects.
//
// The native kernel is an iterative radix-2 Cooley-Tukey transform and only
// accepts power-of-two lengths. The inverse transform conjugates the input,
// runs the forward kernel, conjugates the result and scales by 1/N, so
// Inverse(Forward(x)) reproduces x within floating-point tolerance.
//
// Spectrum values are plain complex128. The helpers [Lift], [RealPart] and
// [Conj] convert between real sample buffers and complex sequences.
//
// [Transformer] abstracts over the native [Plan] and a plan backed by
// github.com/cwbudde/algo-fft; both honour the same length precondition and
// scaling.
package fft
