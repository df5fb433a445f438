package denoise

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// ErrUnsupportedMethod indicates an unknown metric tag.
var ErrUnsupportedMethod = errors.New("denoise: unsupported method")

// Method selects the metric a stage compares against its threshold.
type Method int

const (
	// Amplitude measures |X|.
	Amplitude Method = iota
	// Power measures |X|^2.
	Power
	// Decibel measures 20*log10(|X|); a zero bin measures -Inf.
	Decibel
	// AbsoluteValue rejects a bin when both |re| and |im| are below the
	// threshold.
	AbsoluteValue
)

var methodNames = [...]string{
	Amplitude:     "amplitude",
	Power:         "power",
	Decibel:       "decibel",
	AbsoluteValue: "absolute",
}

func (m Method) String() string {
	if m.valid() {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func (m Method) valid() bool {
	return m >= Amplitude && m <= AbsoluteValue
}

// ParseMethod maps a metric name to a Method. "db" and "abs" are accepted as
// short forms.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "amplitude", "amp":
		return Amplitude, nil
	case "power":
		return Power, nil
	case "decibel", "db":
		return Decibel, nil
	case "absolute", "absolutevalue", "absolute-value", "abs":
		return AbsoluteValue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
	}
}

// below reports whether bin measures under threshold with metric m.
func (m Method) below(bin complex128, threshold float64) bool {
	switch m {
	case Amplitude:
		return cmplx.Abs(bin) < threshold
	case Power:
		re, im := real(bin), imag(bin)
		return re*re+im*im < threshold
	case Decibel:
		return 20*math.Log10(cmplx.Abs(bin)) < threshold
	case AbsoluteValue:
		return math.Abs(real(bin)) < threshold && math.Abs(imag(bin)) < threshold
	default:
		return false
	}
}
