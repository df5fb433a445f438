package fft

import (
	"fmt"
	"strings"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Transformer is a fixed-length forward/inverse DFT.
//
// Inverse must be scaled by 1/N so that Inverse(Forward(x)) == x.
type Transformer interface {
	Len() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// Backend selects the implementation behind a [Transformer].
type Backend int

const (
	// BackendRadix2 is the native iterative radix-2 kernel.
	BackendRadix2 Backend = iota
	// BackendAlgoFFT delegates to github.com/cwbudde/algo-fft plans.
	BackendAlgoFFT
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendRadix2:
		return "radix2"
	case BackendAlgoFFT:
		return "algofft"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps a backend name to its [Backend].
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "radix2", "native":
		return BackendRadix2, nil
	case "algofft", "algo-fft":
		return BackendAlgoFFT, nil
	default:
		return 0, fmt.Errorf("fft: unknown backend %q", name)
	}
}

// NewTransformer creates a transformer of length n on the given backend.
func NewTransformer(backend Backend, n int) (Transformer, error) {
	switch backend {
	case BackendRadix2:
		plan, err := NewPlan(n)
		if err != nil {
			return nil, err
		}

		return plan, nil
	case BackendAlgoFFT:
		plan, err := newAlgoPlan(n)
		if err != nil {
			return nil, err
		}

		return plan, nil
	default:
		return nil, fmt.Errorf("fft: unknown backend %v", backend)
	}
}

// algoPlan adapts an algo-fft plan to the power-of-two contract of this package.
type algoPlan struct {
	n    int
	plan *algofft.Plan[complex128]
}

func newAlgoPlan(n int) (*algoPlan, error) {
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create algo-fft plan: %w", err)
	}

	return &algoPlan{n: n, plan: plan}, nil
}

func (a *algoPlan) Len() int { return a.n }

func (a *algoPlan) Forward(dst, src []complex128) error {
	if err := a.checkLen(dst, src); err != nil {
		return err
	}

	if err := a.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("fft: forward transform failed: %w", err)
	}

	return nil
}

func (a *algoPlan) Inverse(dst, src []complex128) error {
	if err := a.checkLen(dst, src); err != nil {
		return err
	}

	if err := a.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("fft: inverse transform failed: %w", err)
	}

	return nil
}

func (a *algoPlan) checkLen(dst, src []complex128) error {
	if len(src) != a.n || len(dst) != a.n {
		return fmt.Errorf("%w: got src=%d dst=%d, plan expects %d", ErrInvalidLength, len(src), len(dst), a.n)
	}

	return nil
}
