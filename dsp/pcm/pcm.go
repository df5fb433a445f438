package pcm

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MinBitDepth is the smallest supported signed bit depth.
	MinBitDepth = 2
	// MaxBitDepth is the largest supported signed bit depth.
	MaxBitDepth = 32
)

// ErrInvalidBitDepth indicates a bit depth outside [MinBitDepth, MaxBitDepth].
var ErrInvalidBitDepth = errors.New("pcm: invalid bit depth")

func checkBits(bits int) error {
	if bits < MinBitDepth || bits > MaxBitDepth {
		return fmt.Errorf("%w: must be in [%d, %d]: %d", ErrInvalidBitDepth, MinBitDepth, MaxBitDepth, bits)
	}
	return nil
}

// FullScale returns 2^(bits-1)-1, the largest positive b-bit sample.
func FullScale(bits int) (float64, error) {
	if err := checkBits(bits); err != nil {
		return 0, err
	}
	return fullScale(bits), nil
}

func fullScale(bits int) float64 {
	return math.Ldexp(1, bits-1) - 1
}

// Limits returns the inclusive integer range of a b-bit signed sample.
func Limits(bits int) (lo, hi int, err error) {
	if err := checkBits(bits); err != nil {
		return 0, 0, err
	}
	fs := int(fullScale(bits))
	return -fs - 1, fs, nil
}

// ConvertBitDepth rescales samples from fromBits to toBits and returns a new
// slice.
func ConvertBitDepth(samples []int, fromBits, toBits int) ([]int, error) {
	if err := checkBits(fromBits); err != nil {
		return nil, err
	}
	if err := checkBits(toBits); err != nil {
		return nil, err
	}

	scale := fullScale(toBits) / fullScale(fromBits)
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(math.Round(float64(s) * scale))
	}
	return out, nil
}

// ToFloat normalizes b-bit samples to roughly [-1, 1].
func ToFloat(samples []int, bits int) ([]float64, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}

	fs := fullScale(bits)
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) / fs
	}
	return out, nil
}

// FromFloat scales normalized samples to b-bit integers, rounding and
// clamping to the representable range.
func FromFloat(samples []float64, bits int) ([]int, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}

	fs := fullScale(bits)
	scaled := make([]float64, len(samples))
	for i, v := range samples {
		scaled[i] = v * fs
	}
	return Quantize(scaled, bits)
}

// Quantize rounds samples that are already at b-bit scale and clamps them to
// the representable range. NaN maps to 0.
func Quantize(samples []float64, bits int) ([]int, error) {
	lo, hi, err := Limits(bits)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(samples))
	for i, v := range samples {
		switch {
		case math.IsNaN(v):
			out[i] = 0
		case v <= float64(lo):
			out[i] = lo
		case v >= float64(hi):
			out[i] = hi
		default:
			out[i] = int(math.Round(v))
		}
	}
	return out, nil
}
