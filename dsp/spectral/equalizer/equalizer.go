package equalizer

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
)

// ErrInvalidBand indicates a band with a negative or non-finite threshold or
// a non-finite gain.
var ErrInvalidBand = errors.New("equalizer: invalid band")

// Band applies Gain to every bin at or below ThresholdHz that no lower band
// already claimed.
type Band struct {
	ThresholdHz float64 `yaml:"threshold_hz" mapstructure:"threshold_hz"`
	Gain        float64 `yaml:"gain" mapstructure:"gain"`
}

// Equalizer is an immutable, sorted band table.
type Equalizer struct {
	bands []Band
}

// New validates bands and sorts a copy of them by threshold.
func New(bands []Band) (*Equalizer, error) {
	sorted := make([]Band, len(bands))
	copy(sorted, bands)

	for i, b := range sorted {
		if !core.IsFinite(b.ThresholdHz) || b.ThresholdHz < 0 {
			return nil, fmt.Errorf("%w: band %d threshold %v", ErrInvalidBand, i, b.ThresholdHz)
		}
		if !core.IsFinite(b.Gain) {
			return nil, fmt.Errorf("%w: band %d gain %v", ErrInvalidBand, i, b.Gain)
		}
	}

	slices.SortStableFunc(sorted, func(a, b Band) int {
		switch {
		case a.ThresholdHz < b.ThresholdHz:
			return -1
		case a.ThresholdHz > b.ThresholdHz:
			return 1
		default:
			return 0
		}
	})

	return &Equalizer{bands: sorted}, nil
}

// FromTable builds an equalizer from a threshold -> gain map.
func FromTable(table map[float64]float64) (*Equalizer, error) {
	bands := make([]Band, 0, len(table))
	for hz, gain := range table {
		bands = append(bands, Band{ThresholdHz: hz, Gain: gain})
	}
	return New(bands)
}

// Bands returns the sorted band table.
func (e *Equalizer) Bands() []Band {
	return append([]Band(nil), e.bands...)
}

// GainAt returns the linear gain applied to a bin at freqHz.
func (e *Equalizer) GainAt(freqHz float64) float64 {
	i := sort.Search(len(e.bands), func(i int) bool {
		return e.bands[i].ThresholdHz >= freqHz
	})
	if i == len(e.bands) {
		return 1
	}
	return e.bands[i].Gain
}

// Shape implements spectral.Shaper.
func (e *Equalizer) Shape(bins []complex128, sampleRate float64) error {
	return spectral.Gain(e.GainAt).Shape(bins, sampleRate)
}

// Apply equalizes a single channel.
func (e *Equalizer) Apply(samples []float64, sampleRate float64) ([]float64, error) {
	return spectral.Apply(samples, sampleRate, e)
}

// Process equalizes every channel of c independently.
func (e *Equalizer) Process(c channel.Container, sampleRate float64) (channel.Container, error) {
	return channel.Map(c, func(samples []float64) ([]float64, error) {
		return e.Apply(samples, sampleRate)
	})
}
