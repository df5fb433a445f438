// Package core holds small numeric helpers shared by the spectral packages:
// dB conversions, tolerant comparisons and power-of-two arithmetic.
package core
