package pipeline

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/pcm"
	"github.com/cwbudde/algo-spectral/dsp/resample"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
	"github.com/cwbudde/algo-spectral/dsp/spectral/denoise"
	"github.com/cwbudde/algo-spectral/dsp/spectral/equalizer"
	"github.com/cwbudde/algo-spectral/dsp/spectral/filter"
	"github.com/cwbudde/algo-spectral/dsp/spectral/hum"
	"github.com/cwbudde/algo-spectral/dsp/spectral/normalize"
)

// Signal is the audio travelling through a pipeline. Samples are held at
// their native integer scale.
type Signal struct {
	Audio      channel.Container
	SampleRate int
	BitDepth   int
}

type step interface {
	Name() string
	Run(sig Signal) (Signal, error)
}

func isSpectral(typ string) bool {
	switch typ {
	case StageFilter, StageEqualizer, StageDehum, StageDenoise, StageSoftGate, StageNormalize:
		return true
	default:
		return false
	}
}

// shaper builds the spectral stage described by sc.
func shaper(sc StageConfig) (spectral.Shaper, error) {
	switch sc.Type {
	case StageFilter:
		kind, err := filter.ParseKind(sc.Kind)
		if err != nil {
			return nil, err
		}
		side := filter.SideLow
		if sc.Side != "" {
			if side, err = filter.ParseSide(sc.Side); err != nil {
				return nil, err
			}
		}
		return filter.New(filter.Spec{
			Kind:      kind,
			Cutoff:    sc.Cutoff,
			Low:       sc.Low,
			High:      sc.High,
			Center:    sc.Center,
			GainDB:    sc.GainDB,
			Bandwidth: sc.Bandwidth,
			Side:      side,
			Phase:     sc.Phase,
		})
	case StageEqualizer:
		return equalizer.New(sc.Bands)
	case StageDehum:
		humHz, width := sc.HumHz, sc.NotchWidth
		if humHz == 0 {
			humHz = hum.Hum50Hz
		}
		if width == 0 {
			width = hum.NotchNarrow
		}
		return hum.New(humHz, width)
	case StageDenoise:
		stages := make([]denoise.Stage, 0, len(sc.Gates))
		for _, g := range sc.Gates {
			m, err := denoise.ParseMethod(g.Method)
			if err != nil {
				return nil, err
			}
			stages = append(stages, denoise.Stage{Method: m, Threshold: g.Threshold})
		}
		return denoise.NewReducer(stages)
	case StageSoftGate:
		return denoise.NewSoftGate(sc.ThresholdDB)
	case StageNormalize:
		return normalize.New(sc.TargetDB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, sc.Type)
	}
}

// spectralStep runs fused spectral stages in one transform round per channel.
type spectralStep struct {
	names []string
	chain *spectral.Chain
}

func (s *spectralStep) Name() string { return strings.Join(s.names, "+") }

func (s *spectralStep) Run(sig Signal) (Signal, error) {
	rate := float64(sig.SampleRate)
	out, err := channel.Map(sig.Audio, func(samples []float64) ([]float64, error) {
		return s.chain.Process(samples, rate)
	})
	if err != nil {
		return Signal{}, err
	}
	sig.Audio = out
	return sig, nil
}

type resampleStep struct {
	rate   int
	method resample.Method
}

func (s *resampleStep) Name() string { return StageResample }

func (s *resampleStep) Run(sig Signal) (Signal, error) {
	out, err := resample.ConvertContainer(sig.Audio, float64(sig.SampleRate), float64(s.rate), s.method)
	if err != nil {
		return Signal{}, err
	}
	sig.Audio = out
	sig.SampleRate = s.rate
	return sig, nil
}

type bitDepthStep struct {
	bits int
}

func (s *bitDepthStep) Name() string { return StageBitDepth }

func (s *bitDepthStep) Run(sig Signal) (Signal, error) {
	from := sig.BitDepth
	out, err := channel.Map(sig.Audio, func(samples []float64) ([]float64, error) {
		ints, err := pcm.Quantize(samples, from)
		if err != nil {
			return nil, err
		}
		converted, err := pcm.ConvertBitDepth(ints, from, s.bits)
		if err != nil {
			return nil, err
		}
		res := make([]float64, len(converted))
		for i, v := range converted {
			res[i] = float64(v)
		}
		return res, nil
	})
	if err != nil {
		return Signal{}, err
	}
	sig.Audio = out
	sig.BitDepth = s.bits
	return sig, nil
}

func timeDomainStep(sc StageConfig) (step, error) {
	switch sc.Type {
	case StageResample:
		if sc.Rate <= 0 {
			return nil, fmt.Errorf("%w: resample rate must be > 0: %d", ErrInvalidConfig, sc.Rate)
		}
		m, err := resample.ParseMethod(sc.Method)
		if err != nil {
			return nil, err
		}
		return &resampleStep{rate: sc.Rate, method: m}, nil
	case StageBitDepth:
		if _, err := pcm.FullScale(sc.Bits); err != nil {
			return nil, err
		}
		return &bitDepthStep{bits: sc.Bits}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, sc.Type)
	}
}
