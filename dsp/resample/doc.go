// Package resample converts sample rates by time-domain interpolation.
//
// For a rate ratio r = outRate/inRate the output has round(len(input)*r)
// samples, and output sample i reads the input at position i/r. Three
// kernels are available:
//
//   - MethodLinear:  weighted average of the floor and ceil neighbours (default)
//   - MethodNearest: the input sample closest to the read position
//   - MethodCubic:   4-point Catmull-Rom through interp.Hermite4
//
// Neighbours that fall outside the input reuse the nearest in-bounds sample.
// No anti-aliasing filter is applied.
//
// Common workflows:
//   - NewForRates(inRate, outRate, opts...) then Process
//   - Convert(input, inRate, outRate, method)
//   - ConvertContainer for mono or stereo containers
package resample
