package resample

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/interp"
)

var (
	// ErrInvalidRate indicates an invalid input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrUnknownMethod indicates an interpolation method outside the known set.
	ErrUnknownMethod = errors.New("resample: unknown interpolation method")
)

// Method selects the interpolation kernel.
type Method int

const (
	// MethodLinear blends the two neighbouring samples.
	MethodLinear Method = iota
	// MethodNearest picks the closest sample.
	MethodNearest
	// MethodCubic uses 4-point Catmull-Rom interpolation.
	MethodCubic
)

func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodNearest:
		return "nearest"
	case MethodCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "linear", "nearest" or "cubic" to a Method.
// The empty string selects MethodLinear.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return MethodLinear, nil
	case "nearest":
		return MethodNearest, nil
	case "cubic":
		return MethodCubic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

func (m Method) reader() (func(x []float64, pos float64) float64, error) {
	switch m {
	case MethodLinear:
		return interp.LinearAt, nil
	case MethodNearest:
		return interp.NearestAt, nil
	case MethodCubic:
		return interp.CubicAt, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

type config struct {
	method Method
}

// Option configures the resampler.
type Option func(*config)

// WithMethod selects the interpolation kernel.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// Resampler converts buffers from one fixed rate to another. It holds no
// per-call state and is safe for concurrent use.
type Resampler struct {
	inRate, outRate float64
	ratio           float64
	method          Method
	read            func(x []float64, pos float64) float64
}

// NewForRates creates a resampler from inRate to outRate.
func NewForRates(inRate, outRate float64, opts ...Option) (*Resampler, error) {
	if !core.ValidSampleRate(inRate) || !core.ValidSampleRate(outRate) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrInvalidRate, inRate, outRate)
	}

	cfg := config{method: MethodLinear}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	read, err := cfg.method.reader()
	if err != nil {
		return nil, err
	}

	return &Resampler{
		inRate:  inRate,
		outRate: outRate,
		ratio:   outRate / inRate,
		method:  cfg.method,
		read:    read,
	}, nil
}

// Ratio returns outRate/inRate.
func (r *Resampler) Ratio() float64 { return r.ratio }

// Method returns the configured kernel.
func (r *Resampler) Method() Method { return r.method }

// Rates returns the input and output sample rates.
func (r *Resampler) Rates() (inRate, outRate float64) { return r.inRate, r.outRate }

// OutputLen returns the number of samples Process produces for inputLen.
func (r *Resampler) OutputLen(inputLen int) int {
	return int(math.Round(float64(inputLen) * r.ratio))
}

// Process converts input and returns a new buffer.
func (r *Resampler) Process(input []float64) []float64 {
	if len(input) == 0 {
		return []float64{}
	}

	out := make([]float64, r.OutputLen(len(input)))
	for i := range out {
		out[i] = r.read(input, float64(i)/r.ratio)
	}
	return out
}

// ProcessContainer converts every channel of c.
func (r *Resampler) ProcessContainer(c channel.Container) (channel.Container, error) {
	return channel.Map(c, func(samples []float64) ([]float64, error) {
		return r.Process(samples), nil
	})
}

// Convert is a one-shot helper around NewForRates and Process.
func Convert(input []float64, inRate, outRate float64, method Method) ([]float64, error) {
	r, err := NewForRates(inRate, outRate, WithMethod(method))
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

// ConvertContainer is the container counterpart of Convert.
func ConvertContainer(c channel.Container, inRate, outRate float64, method Method) (channel.Container, error) {
	r, err := NewForRates(inRate, outRate, WithMethod(method))
	if err != nil {
		return channel.Container{}, err
	}
	return r.ProcessContainer(c)
}
