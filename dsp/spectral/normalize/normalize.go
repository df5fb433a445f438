package normalize

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

var (
	// ErrSilentInput is returned when every bin of the spectrum is zero.
	ErrSilentInput = errors.New("normalize: silent input")
	// ErrInvalidTarget indicates a non-finite target level.
	ErrInvalidTarget = errors.New("normalize: invalid target level")
)

// Normalizer scales every bin by 10^(targetDB/20) / peak|X|.
type Normalizer struct {
	targetDB float64
	target   float64
}

// New creates a normalizer for the given target peak level in dB.
func New(targetDB float64) (*Normalizer, error) {
	if !core.IsFinite(targetDB) {
		return nil, fmt.Errorf("%w: %v dB", ErrInvalidTarget, targetDB)
	}
	return &Normalizer{targetDB: targetDB, target: core.DBToLinear(targetDB)}, nil
}

// TargetDB returns the target level.
func (n *Normalizer) TargetDB() float64 { return n.targetDB }

// Shape implements spectral.Shaper.
func (n *Normalizer) Shape(bins []complex128, sampleRate float64) error {
	peak, _ := spectrum.Peak(bins)
	if peak == 0 {
		return ErrSilentInput
	}
	spectrum.Scale(bins, n.target/peak)
	return nil
}

// Apply normalizes a single channel.
func (n *Normalizer) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return spectral.Apply(samples, sampleRate, n)
}

// Process normalizes each channel against its own peak.
func (n *Normalizer) Process(c channel.Container, sampleRate float64) (channel.Container, error) {
	return channel.Map(c, func(samples []float64) ([]float64, error) {
		return n.Apply(samples, sampleRate)
	})
}
