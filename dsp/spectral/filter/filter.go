package filter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

// ErrInvalidParameter is returned for out-of-range filter parameters.
var ErrInvalidParameter = errors.New("filter: invalid parameter")

// Filter is a spectral filter that can run standalone or inside a chain.
type Filter interface {
	spectral.Shaper
	// Apply filters one channel and returns a new buffer.
	Apply(samples []float64, sampleRate float64) ([]float64, error)
	// Spec returns the descriptor the filter was built from.
	Spec() Spec
}

func apply(s spectral.Shaper, samples []float64, sampleRate float64) ([]float64, error) {
	return spectral.Apply(samples, sampleRate, s)
}

func checkFrequency(name string, hz float64) error {
	if !core.IsFinite(hz) || hz < 0 {
		return fmt.Errorf("%w: %s must be >= 0 and finite: %v", ErrInvalidParameter, name, hz)
	}
	return nil
}

func checkFinite(name string, v float64) error {
	if !core.IsFinite(v) {
		return fmt.Errorf("%w: %s must be finite: %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func checkRange(low, high float64) error {
	if err := checkFrequency("low cutoff", low); err != nil {
		return err
	}
	if err := checkFrequency("high cutoff", high); err != nil {
		return err
	}
	if low > high {
		return fmt.Errorf("%w: low cutoff %v above high cutoff %v", ErrInvalidParameter, low, high)
	}
	return nil
}

// HighPass zeroes bins below the cutoff frequency.
type HighPass struct {
	cutoff float64
}

// NewHighPass creates a high-pass filter.
func NewHighPass(cutoffHz float64) (*HighPass, error) {
	if err := checkFrequency("cutoff", cutoffHz); err != nil {
		return nil, err
	}
	return &HighPass{cutoff: cutoffHz}, nil
}

// Shape implements spectral.Shaper.
func (f *HighPass) Shape(bins []complex128, sampleRate float64) error {
	return spectral.Zero(func(hz float64) bool { return hz < f.cutoff }).Shape(bins, sampleRate)
}

// Apply implements Filter.
func (f *HighPass) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return apply(f, samples, sampleRate)
}

// Spec implements Filter.
func (f *HighPass) Spec() Spec { return Spec{Kind: KindHighPass, Cutoff: f.cutoff} }

// LowPass zeroes bins above the cutoff frequency.
type LowPass struct {
	cutoff float64
}

// NewLowPass creates a low-pass filter.
func NewLowPass(cutoffHz float64) (*LowPass, error) {
	if err := checkFrequency("cutoff", cutoffHz); err != nil {
		return nil, err
	}
	return &LowPass{cutoff: cutoffHz}, nil
}

// Shape implements spectral.Shaper.
func (f *LowPass) Shape(bins []complex128, sampleRate float64) error {
	return spectral.Zero(func(hz float64) bool { return hz > f.cutoff }).Shape(bins, sampleRate)
}

// Apply implements Filter.
func (f *LowPass) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return apply(f, samples, sampleRate)
}

// Spec implements Filter.
func (f *LowPass) Spec() Spec { return Spec{Kind: KindLowPass, Cutoff: f.cutoff} }

// BandPass keeps bins within [low, high] and zeroes the rest.
type BandPass struct {
	low, high float64
}

// NewBandPass creates a band-pass filter.
func NewBandPass(lowHz, highHz float64) (*BandPass, error) {
	if err := checkRange(lowHz, highHz); err != nil {
		return nil, err
	}
	return &BandPass{low: lowHz, high: highHz}, nil
}

// Shape implements spectral.Shaper.
func (f *BandPass) Shape(bins []complex128, sampleRate float64) error {
	return spectral.Zero(func(hz float64) bool { return hz < f.low || hz > f.high }).Shape(bins, sampleRate)
}

// Apply implements Filter.
func (f *BandPass) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return apply(f, samples, sampleRate)
}

// Spec implements Filter.
func (f *BandPass) Spec() Spec { return Spec{Kind: KindBandPass, Low: f.low, High: f.high} }

// BandStop zeroes bins within [low, high].
type BandStop struct {
	low, high float64
}

// NewBandStop creates a band-stop filter.
func NewBandStop(lowHz, highHz float64) (*BandStop, error) {
	if err := checkRange(lowHz, highHz); err != nil {
		return nil, err
	}
	return &BandStop{low: lowHz, high: highHz}, nil
}

// Shape implements spectral.Shaper.
func (f *BandStop) Shape(bins []complex128, sampleRate float64) error {
	return spectral.Zero(func(hz float64) bool { return hz >= f.low && hz <= f.high }).Shape(bins, sampleRate)
}

// Apply implements Filter.
func (f *BandStop) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return apply(f, samples, sampleRate)
}

// Spec implements Filter.
func (f *BandStop) Spec() Spec { return Spec{Kind: KindBandStop, Low: f.low, High: f.high} }

// Peaking scales bins within bandwidth/2 of the center frequency by
// 10^(gainDB/20).
type Peaking struct {
	center, gainDB, bandwidth float64
	gain                      float64
}

// NewPeaking creates a peaking filter.
func NewPeaking(centerHz, gainDB, bandwidthHz float64) (*Peaking, error) {
	if err := checkFrequency("center", centerHz); err != nil {
		return nil, err
	}
	if err := checkFinite("gain", gainDB); err != nil {
		return nil, err
	}
	if err := checkFrequency("bandwidth", bandwidthHz); err != nil {
		return nil, err
	}
	return &Peaking{
		center:    centerHz,
		gainDB:    gainDB,
		bandwidth: bandwidthHz,
		gain:      core.DBToLinear(gainDB),
	}, nil
}

// Shape implements spectral.Shaper.
func (f *Peaking) Shape(bins []complex128, sampleRate float64) error {
	half := f.bandwidth / 2
	return spectral.Gain(func(hz float64) float64 {
		if math.Abs(hz-f.center) <= half {
			return f.gain
		}
		return 1
	}).Shape(bins, sampleRate)
}

// Apply implements Filter.
func (f *Peaking) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return apply(f, samples, sampleRate)
}

// Spec implements Filter.
func (f *Peaking) Spec() Spec {
	return Spec{Kind: KindPeaking, Center: f.center, GainDB: f.gainDB, Bandwidth: f.bandwidth}
}

// Shelving scales every bin on one side of the cutoff by 10^(gainDB/20).
// The cutoff bin itself belongs to the shelf on both sides.
type Shelving struct {
	cutoff, gainDB float64
	side           Side
	gain           float64
}

// NewShelving creates a shelving filter.
func NewShelving(cutoffHz, gainDB float64, side Side) (*Shelving, error) {
	if err := checkFrequency("cutoff", cutoffHz); err != nil {
		return nil, err
	}
	if err := checkFinite("gain", gainDB); err != nil {
		return nil, err
	}
	if side != SideLow && side != SideHigh {
		return nil, fmt.Errorf("%w: unknown shelf side %v", ErrInvalidParameter, side)
	}
	return &Shelving{cutoff: cutoffHz, gainDB: gainDB, side: side, gain: core.DBToLinear(gainDB)}, nil
}

// Shape implements spectral.Shaper.
func (f *Shelving) Shape(bins []complex128, sampleRate float64) error {
	return spectral.Gain(func(hz float64) float64 {
		if (f.side == SideLow && hz <= f.cutoff) || (f.side == SideHigh && hz >= f.cutoff) {
			return f.gain
		}
		return 1
	}).Shape(bins, sampleRate)
}

// Apply implements Filter.
func (f *Shelving) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return apply(f, samples, sampleRate)
}

// Spec implements Filter.
func (f *Shelving) Spec() Spec {
	return Spec{Kind: KindShelving, Cutoff: f.cutoff, GainDB: f.gainDB, Side: f.side}
}

// AllPass shifts the phase of every component by a constant and keeps
// magnitudes. Bins above Nyquist turn by the negated phase so a real input
// stays real. DC and Nyquist bins turn like the lower half, so their real
// part is scaled by cos(phase).
type AllPass struct {
	phase float64
}

// NewAllPass creates an all-pass filter with the given phase shift in radians.
func NewAllPass(phaseShift float64) (*AllPass, error) {
	if err := checkFinite("phase shift", phaseShift); err != nil {
		return nil, err
	}
	return &AllPass{phase: phaseShift}, nil
}

// Shape implements spectral.Shaper.
func (f *AllPass) Shape(bins []complex128, sampleRate float64) error {
	half := len(bins) / 2
	for k, c := range bins {
		shift := f.phase
		if k > half {
			shift = -shift
		}
		bins[k] = spectrum.Polar(cmplx.Abs(c), cmplx.Phase(c)+shift)
	}
	return nil
}

// Apply implements Filter.
func (f *AllPass) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return apply(f, samples, sampleRate)
}

// Spec implements Filter.
func (f *AllPass) Spec() Spec { return Spec{Kind: KindAllPass, Phase: f.phase} }
