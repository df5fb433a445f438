package denoise

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
)

// SoftGate scales a bin whose magnitude a is below the threshold amplitude t
// by a/t. Bins at or above t pass unchanged.
type SoftGate struct {
	thresholdDB float64
	threshold   float64
}

// NewSoftGate creates a soft gate with a threshold in dB (amplitude
// 10^(dB/20)).
func NewSoftGate(thresholdDB float64) (*SoftGate, error) {
	if !core.IsFinite(thresholdDB) {
		return nil, fmt.Errorf("%w: %v dB", ErrInvalidThreshold, thresholdDB)
	}
	return &SoftGate{thresholdDB: thresholdDB, threshold: core.DBToLinear(thresholdDB)}, nil
}

// ThresholdDB returns the gate threshold in dB.
func (g *SoftGate) ThresholdDB() float64 { return g.thresholdDB }

// Shape implements spectral.Shaper.
func (g *SoftGate) Shape(bins []complex128, sampleRate float64) error {
	for k, c := range bins {
		if a := cmplx.Abs(c); a < g.threshold {
			bins[k] = c * complex(a/g.threshold, 0)
		}
	}
	return nil
}

// Apply gates a single channel.
func (g *SoftGate) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return spectral.Apply(samples, sampleRate, g)
}

// Process gates every channel of c.
func (g *SoftGate) Process(c channel.Container, sampleRate float64) (channel.Container, error) {
	return process(g, c, sampleRate)
}
