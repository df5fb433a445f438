// Package pipeline turns a YAML processing document into a sequence of steps
// and runs WAV files through it.
//
// Consecutive spectral stages (filter, eq, dehum, denoise, softgate,
// normalize) are fused into one spectral.Chain, so they share a single
// forward/inverse transform per channel. Time-domain stages (resample,
// bitdepth) close the current chain and run on their own.
//
// Documents are loaded through viper, so every top-level key can be
// overridden from the environment with the SPECTRA_ prefix
// (SPECTRA_OUTPUT, SPECTRA_BACKEND, ...).
package pipeline
