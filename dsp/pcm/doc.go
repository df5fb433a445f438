// Package pcm converts integer PCM samples between signed bit depths.
//
// The full-scale value of a b-bit signed sample is 2^(b-1)-1. Conversion
// normalizes by the source full scale, rescales by the target full scale and
// rounds half away from zero. No dither or noise shaping is applied.
package pcm
