package channel

import (
	"errors"
	"fmt"
)

// ErrChannelMismatch is returned when interleaved data does not divide into
// the requested channel count.
var ErrChannelMismatch = errors.New("channel: interleaved length is not a multiple of the channel count")

// Container holds one mono buffer or a left/right pair.
//
// For stereo input Samples is carried through unchanged; processing only
// touches Left and Right.
type Container struct {
	Samples []float64
	Left    []float64
	Right   []float64
}

// Mono wraps samples without copying.
func Mono(samples []float64) Container {
	return Container{Samples: samples}
}

// Stereo wraps a left/right pair without copying.
func Stereo(left, right []float64) Container {
	return Container{Left: left, Right: right}
}

// IsStereo reports whether the container carries a channel split.
func (c Container) IsStereo() bool {
	return c.Left != nil && c.Right != nil
}

// Channels returns 2 for stereo containers and 1 otherwise.
func (c Container) Channels() int {
	if c.IsStereo() {
		return 2
	}
	return 1
}

// Len returns the frame count: len(Samples) for mono, the longer of
// Left/Right for stereo.
func (c Container) Len() int {
	if !c.IsStereo() {
		return len(c.Samples)
	}
	return max(len(c.Left), len(c.Right))
}

// Func processes one channel and returns the new buffer.
type Func func(samples []float64) ([]float64, error)

// Map applies fn to each channel of c and returns a new container. The input
// buffers are handed to fn as-is; fn decides whether it copies.
func Map(c Container, fn Func) (Container, error) {
	if !c.IsStereo() {
		out, err := fn(c.Samples)
		if err != nil {
			return Container{}, err
		}
		return Container{Samples: out}, nil
	}

	left, err := fn(c.Left)
	if err != nil {
		return Container{}, fmt.Errorf("left channel: %w", err)
	}

	right, err := fn(c.Right)
	if err != nil {
		return Container{}, fmt.Errorf("right channel: %w", err)
	}

	return Container{Samples: c.Samples, Left: left, Right: right}, nil
}

// Interleave packs the container into frame-interleaved order
// (L0 R0 L1 R1 ... for stereo). Stereo channels of unequal length are
// zero-padded to the longer one.
func Interleave(c Container) []float64 {
	if !c.IsStereo() {
		return append([]float64(nil), c.Samples...)
	}

	frames := c.Len()
	out := make([]float64, 2*frames)
	for i := 0; i < frames; i++ {
		if i < len(c.Left) {
			out[2*i] = c.Left[i]
		}
		if i < len(c.Right) {
			out[2*i+1] = c.Right[i]
		}
	}
	return out
}

// Deinterleave splits frame-interleaved data with 1 or 2 channels.
func Deinterleave(data []float64, channels int) (Container, error) {
	switch channels {
	case 1:
		return Mono(append([]float64(nil), data...)), nil
	case 2:
		if len(data)%2 != 0 {
			return Container{}, fmt.Errorf("%w: %d values, 2 channels", ErrChannelMismatch, len(data))
		}
		frames := len(data) / 2
		left := make([]float64, frames)
		right := make([]float64, frames)
		for i := 0; i < frames; i++ {
			left[i] = data[2*i]
			right[i] = data[2*i+1]
		}
		return Stereo(left, right), nil
	default:
		return Container{}, fmt.Errorf("channel: unsupported channel count %d", channels)
	}
}
