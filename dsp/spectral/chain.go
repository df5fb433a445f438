package spectral

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fft"
)

var (
	// ErrInvalidSampleRate indicates a sample rate that is not positive and finite.
	ErrInvalidSampleRate = errors.New("spectral: sample rate must be > 0 and finite")
	// ErrNilStage indicates a nil shaper in a chain.
	ErrNilStage = errors.New("spectral: nil stage")
)

type config struct {
	backend fft.Backend
}

// Option configures a [Chain].
type Option func(*config)

// WithBackend selects the transform implementation. The default is the
// native radix-2 kernel.
func WithBackend(b fft.Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}

// Chain applies an ordered list of shapers inside a single forward/inverse
// transform round. A Chain is immutable and safe for concurrent use when its
// stages are.
type Chain struct {
	stages  []Shaper
	backend fft.Backend
}

// NewChain builds a chain from stages, applied in the given order.
// An empty chain is valid and reproduces its input.
func NewChain(stages []Shaper, opts ...Option) (*Chain, error) {
	cfg := config{backend: fft.BackendRadix2}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	for i, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilStage, i)
		}
	}

	return &Chain{
		stages:  append([]Shaper(nil), stages...),
		backend: cfg.backend,
	}, nil
}

// Len returns the number of stages.
func (c *Chain) Len() int { return len(c.stages) }

// Stages returns a copy of the stage list.
func (c *Chain) Stages() []Shaper {
	return append([]Shaper(nil), c.stages...)
}

// Shape runs every stage over bins in order, stopping at the first error.
func (c *Chain) Shape(bins []complex128, sampleRate float64) error {
	for i, s := range c.stages {
		if err := s.Shape(bins, sampleRate); err != nil {
			return fmt.Errorf("spectral: stage %d: %w", i, err)
		}
	}

	return nil
}

// Process transforms samples, shapes the spectrum and returns the real part
// of the inverse transform. samples is not modified.
func (c *Chain) Process(samples []float64, sampleRate float64) ([]float64, error) {
	tr, bins, err := c.shaped(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	if err := tr.Inverse(bins, bins); err != nil {
		return nil, err
	}

	return fft.RealPart(bins), nil
}

// Analyze returns the spectrum of samples after all stages have run, without
// transforming back.
func (c *Chain) Analyze(samples []float64, sampleRate float64) ([]complex128, error) {
	_, bins, err := c.shaped(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	return bins, nil
}

func (c *Chain) shaped(samples []float64, sampleRate float64) (fft.Transformer, []complex128, error) {
	if !core.ValidSampleRate(sampleRate) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	tr, err := fft.NewTransformer(c.backend, len(samples))
	if err != nil {
		return nil, nil, err
	}

	bins := fft.Lift(samples)
	if err := tr.Forward(bins, bins); err != nil {
		return nil, nil, err
	}

	if err := c.Shape(bins, sampleRate); err != nil {
		return nil, nil, err
	}

	return tr, bins, nil
}

// Apply runs shapers over samples in one transform round.
func Apply(samples []float64, sampleRate float64, shapers ...Shaper) ([]float64, error) {
	chain, err := NewChain(shapers)
	if err != nil {
		return nil, err
	}

	return chain.Process(samples, sampleRate)
}
