package hum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
)

// Common mains frequencies.
const (
	Hum50Hz  = 50.0
	Hum60Hz  = 60.0
	Hum100Hz = 100.0
)

// Notch widths in Hz.
const (
	NotchNarrow = 1.0
	NotchMedium = 2.0
	NotchWide   = 5.0
)

// ErrInvalidParameter indicates a non-positive hum frequency or a negative
// notch width.
var ErrInvalidParameter = errors.New("hum: invalid parameter")

// Remover zeroes every bin near a harmonic of the hum frequency.
type Remover struct {
	hum, width float64
}

// New creates a remover for humHz with the given notch half-width.
func New(humHz, notchWidthHz float64) (*Remover, error) {
	if !core.IsFinite(humHz) || humHz <= 0 {
		return nil, fmt.Errorf("%w: hum frequency must be > 0: %v", ErrInvalidParameter, humHz)
	}
	if !core.IsFinite(notchWidthHz) || notchWidthHz < 0 {
		return nil, fmt.Errorf("%w: notch width must be >= 0: %v", ErrInvalidParameter, notchWidthHz)
	}
	return &Remover{hum: humHz, width: notchWidthHz}, nil
}

// HumHz returns the fundamental.
func (r *Remover) HumHz() float64 { return r.hum }

// NotchWidthHz returns the notch half-width.
func (r *Remover) NotchWidthHz() float64 { return r.width }

// Rejects reports whether a bin at freqHz falls inside a notch.
func (r *Remover) Rejects(freqHz float64) bool {
	rem := math.Mod(freqHz, r.hum)
	return rem < r.width || r.hum-rem < r.width
}

// Shape implements spectral.Shaper.
func (r *Remover) Shape(bins []complex128, sampleRate float64) error {
	return spectral.Zero(r.Rejects).Shape(bins, sampleRate)
}

// Apply removes hum from a single channel.
func (r *Remover) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return spectral.Apply(samples, sampleRate, r)
}

// Process removes hum from every channel of c.
func (r *Remover) Process(c channel.Container, sampleRate float64) (channel.Container, error) {
	return channel.Map(c, func(samples []float64) ([]float64, error) {
		return r.Apply(samples, sampleRate)
	})
}
