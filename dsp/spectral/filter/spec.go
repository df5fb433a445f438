package filter

import "fmt"

// Spec is a plain descriptor for any filter kind. Only the fields used by
// Kind are read:
//
//	highpass, lowpass  Cutoff
//	bandpass, bandstop Low, High
//	peaking            Center, GainDB, Bandwidth
//	shelving           Cutoff, GainDB, Side
//	allpass            Phase
type Spec struct {
	Kind      Kind
	Cutoff    float64
	Low       float64
	High      float64
	Center    float64
	GainDB    float64
	Bandwidth float64
	Side      Side
	Phase     float64
}

// New builds the filter described by spec.
func New(spec Spec) (Filter, error) {
	var (
		f   Filter
		err error
	)

	switch spec.Kind {
	case KindHighPass:
		f, err = NewHighPass(spec.Cutoff)
	case KindLowPass:
		f, err = NewLowPass(spec.Cutoff)
	case KindBandPass:
		f, err = NewBandPass(spec.Low, spec.High)
	case KindBandStop:
		f, err = NewBandStop(spec.Low, spec.High)
	case KindPeaking:
		f, err = NewPeaking(spec.Center, spec.GainDB, spec.Bandwidth)
	case KindShelving:
		f, err = NewShelving(spec.Cutoff, spec.GainDB, spec.Side)
	case KindAllPass:
		f, err = NewAllPass(spec.Phase)
	default:
		return nil, fmt.Errorf("%w: unknown filter kind %v", ErrInvalidParameter, spec.Kind)
	}

	if err != nil {
		return nil, err
	}
	return f, nil
}
