package pipeline

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
	"github.com/cwbudde/algo-spectral/internal/wavio"
)

type options struct {
	logger logrus.FieldLogger
}

// Option configures a Pipeline.
type Option func(*options)

// WithLogger routes step logging to l. The default is the logrus standard
// logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Pipeline is a built, immutable step sequence.
type Pipeline struct {
	steps  []step
	logger logrus.FieldLogger
}

// New validates cfg and builds its steps.
func New(cfg *Config, opts ...Option) (*Pipeline, error) {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	backend, err := fft.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	p := &Pipeline{logger: o.logger}

	var (
		pending []spectral.Shaper
		names   []string
	)
	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		chain, err := spectral.NewChain(pending, spectral.WithBackend(backend))
		if err != nil {
			return err
		}
		p.steps = append(p.steps, &spectralStep{names: names, chain: chain})
		pending, names = nil, nil
		return nil
	}

	for i, sc := range cfg.Stages {
		if isSpectral(sc.Type) {
			s, err := shaper(sc)
			if err != nil {
				return nil, fmt.Errorf("stage %d (%s): %w", i, sc.Type, err)
			}
			pending = append(pending, s)
			names = append(names, sc.Type)
			continue
		}

		if err := flush(); err != nil {
			return nil, err
		}
		st, err := timeDomainStep(sc)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, sc.Type, err)
		}
		p.steps = append(p.steps, st)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return p, nil
}

// Steps returns the step names in execution order. Fused spectral stages
// appear as one name joined with "+". A fused step shares one transform round
// and matches running its stages one at a time, except that an all-pass
// leaves complex DC and Nyquist bins for the stages after it to measure.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Process runs sig through every step.
func (p *Pipeline) Process(sig Signal) (Signal, error) {
	for i, s := range p.steps {
		start := time.Now()
		out, err := s.Run(sig)
		if err != nil {
			p.logger.WithFields(logrus.Fields{
				"step":  s.Name(),
				"index": i,
			}).WithError(err).Error("Step failed")
			return Signal{}, fmt.Errorf("step %s: %w", s.Name(), err)
		}

		p.logger.WithFields(logrus.Fields{
			"step":        s.Name(),
			"index":       i,
			"channels":    out.Audio.Channels(),
			"frames":      out.Audio.Len(),
			"sample_rate": out.SampleRate,
			"bit_depth":   out.BitDepth,
			"elapsed":     time.Since(start),
		}).Debug("Step finished")
		sig = out
	}
	return sig, nil
}

// ProcessAudio runs decoded WAV audio through the pipeline and re-encodes
// it at the final sample rate and bit depth.
func (p *Pipeline) ProcessAudio(a *wavio.Audio) (*wavio.Audio, error) {
	c, err := a.Container()
	if err != nil {
		return nil, err
	}

	out, err := p.Process(Signal{Audio: c, SampleRate: a.SampleRate, BitDepth: a.BitDepth})
	if err != nil {
		return nil, err
	}
	return wavio.FromContainer(out.Audio, out.SampleRate, out.BitDepth)
}

// RunFile reads inPath, processes it and writes outPath.
func (p *Pipeline) RunFile(inPath, outPath string) error {
	start := time.Now()

	in, err := wavio.ReadFile(inPath)
	if err != nil {
		return err
	}
	p.logger.WithFields(logrus.Fields{
		"input":       inPath,
		"channels":    in.Channels,
		"sample_rate": in.SampleRate,
		"bit_depth":   in.BitDepth,
		"frames":      in.Frames(),
	}).Info("Decoded input")

	out, err := p.ProcessAudio(in)
	if err != nil {
		return err
	}

	if err := wavio.WriteFile(outPath, out); err != nil {
		return err
	}
	p.logger.WithFields(logrus.Fields{
		"output":      outPath,
		"sample_rate": out.SampleRate,
		"bit_depth":   out.BitDepth,
		"elapsed":     time.Since(start),
	}).Info("Wrote output")
	return nil
}
