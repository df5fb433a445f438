package denoise

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
)

var (
	// ErrNoStages is returned by NewReducer for an empty stage list.
	ErrNoStages = errors.New("denoise: no stages")
	// ErrInvalidThreshold indicates a NaN threshold.
	ErrInvalidThreshold = errors.New("denoise: invalid threshold")
)

// Stage pairs a metric with its threshold.
type Stage struct {
	Method    Method
	Threshold float64
}

// Rejects reports whether the stage zeroes bin.
func (s Stage) Rejects(bin complex128) bool {
	return s.Method.below(bin, s.Threshold)
}

func (s Stage) String() string {
	return fmt.Sprintf("%s<%g", s.Method, s.Threshold)
}

// Reducer zeroes every bin that one of its stages rejects.
type Reducer struct {
	stages []Stage
}

// NewReducer builds a reducer from stages, evaluated in the given order.
func NewReducer(stages []Stage) (*Reducer, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	for i, s := range stages {
		if !s.Method.valid() {
			return nil, fmt.Errorf("stage %d: %w: %v", i, ErrUnsupportedMethod, s.Method)
		}
		if math.IsNaN(s.Threshold) {
			return nil, fmt.Errorf("stage %d: %w", i, ErrInvalidThreshold)
		}
	}

	return &Reducer{stages: append([]Stage(nil), stages...)}, nil
}

// Stages returns a copy of the stage list.
func (r *Reducer) Stages() []Stage {
	return append([]Stage(nil), r.stages...)
}

// Filter returns the bin after the stage list: zero if a stage rejects it,
// otherwise unchanged.
func (r *Reducer) Filter(bin complex128) complex128 {
	for _, s := range r.stages {
		if s.Rejects(bin) {
			return 0
		}
	}
	return bin
}

// Shape implements spectral.Shaper.
func (r *Reducer) Shape(bins []complex128, sampleRate float64) error {
	for k, c := range bins {
		bins[k] = r.Filter(c)
	}
	return nil
}

// Apply denoises a single channel.
func (r *Reducer) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return spectral.Apply(samples, sampleRate, r)
}

// Process denoises every channel of c.
func (r *Reducer) Process(c channel.Container, sampleRate float64) (channel.Container, error) {
	return process(r, c, sampleRate)
}

func process(s spectral.Shaper, c channel.Container, sampleRate float64) (channel.Container, error) {
	return channel.Map(c, func(samples []float64) ([]float64, error) {
		return spectral.Apply(samples, sampleRate, s)
	})
}
