package fft

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// ErrInvalidLength is returned when a transform length is not a power of two.
var ErrInvalidLength = errors.New("fft: length must be a power of two")

// Plan holds the precomputed tables for a radix-2 transform of fixed length.
//
// A Plan is immutable after construction and safe for concurrent use.
type Plan struct {
	n       int
	rev     []int
	twiddle []complex128
}

// NewPlan prepares a transform of length n.
func NewPlan(n int) (*Plan, error) {
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	levels := core.Log2(n)

	rev := make([]int, n)
	for i := range rev {
		j := 0
		for bit := 0; bit < levels; bit++ {
			j = (j << 1) | ((i >> bit) & 1)
		}
		rev[i] = j
	}

	// w_k = exp(-2*pi*i*k/N) for k in [0, N/2).
	twiddle := make([]complex128, n/2)
	for k := range twiddle {
		sin, cos := math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		twiddle[k] = complex(cos, sin)
	}

	return &Plan{
		n:       n,
		rev:     rev,
		twiddle: twiddle,
	}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Forward computes the DFT of src into dst. dst and src may be the same slice.
func (p *Plan) Forward(dst, src []complex128) error {
	if err := p.checkLen(dst, src); err != nil {
		return err
	}

	if &dst[0] != &src[0] {
		copy(dst, src)
	}

	p.transform(dst)

	return nil
}

// Inverse computes the inverse DFT of src into dst, scaled by 1/N.
// dst and src may be the same slice.
func (p *Plan) Inverse(dst, src []complex128) error {
	if err := p.checkLen(dst, src); err != nil {
		return err
	}

	if &dst[0] != &src[0] {
		copy(dst, src)
	}

	Conj(dst)
	p.transform(dst)

	scale := 1 / float64(p.n)
	for i, c := range dst {
		dst[i] = complex(real(c)*scale, -imag(c)*scale)
	}

	return nil
}

func (p *Plan) checkLen(dst, src []complex128) error {
	if len(src) != p.n {
		return fmt.Errorf("%w: input has %d values, plan expects %d", ErrInvalidLength, len(src), p.n)
	}
	if len(dst) != p.n {
		return fmt.Errorf("%w: output has %d values, plan expects %d", ErrInvalidLength, len(dst), p.n)
	}

	return nil
}

// transform runs the in-place decimation-in-time kernel on x.
func (p *Plan) transform(x []complex128) {
	n := p.n

	for i, j := range p.rev {
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				lo := start + j
				hi := lo + half
				t := p.twiddle[j*step] * x[hi]
				x[hi] = x[lo] - t
				x[lo] += t
			}
		}
	}
}

// Forward returns the DFT of x in a newly allocated slice.
func Forward(x []complex128) ([]complex128, error) {
	plan, err := NewPlan(len(x))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, x); err != nil {
		return nil, err
	}

	return out, nil
}

// Inverse returns the scaled inverse DFT of X in a newly allocated slice.
func Inverse(X []complex128) ([]complex128, error) {
	plan, err := NewPlan(len(X))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(X))
	if err := plan.Inverse(out, X); err != nil {
		return nil, err
	}

	return out, nil
}
