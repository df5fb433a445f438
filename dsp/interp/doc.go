// Package interp provides the interpolation kernels used by the sample-rate
// converter.
//
// Available kernels, from cheapest to highest quality:
//
//   - [Nearest]:  rounds the read position to the closest sample
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite (Catmull-Rom)
//
// [At], [LinearAt], [NearestAt] and [CubicAt] read a buffer at a fractional
// position and clamp neighbours that fall outside the buffer to the nearest
// in-bounds sample.
package interp
