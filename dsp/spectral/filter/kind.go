package filter

import (
	"fmt"
	"strings"
)

// Kind identifies a filter variant.
type Kind int

const (
	KindHighPass Kind = iota
	KindLowPass
	KindBandPass
	KindBandStop
	KindPeaking
	KindShelving
	KindAllPass
)

var kindNames = map[Kind]string{
	KindHighPass: "highpass",
	KindLowPass:  "lowpass",
	KindBandPass: "bandpass",
	KindBandStop: "bandstop",
	KindPeaking:  "peaking",
	KindShelving: "shelving",
	KindAllPass:  "allpass",
}

// String returns the canonical lower-case name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a name such as "lowpass", "low-pass" or "LowPass" to a Kind.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for k, n := range kindNames {
		if n == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown filter kind %q", ErrInvalidParameter, name)
}

// Side selects which side of the cutoff a shelving filter scales.
type Side int

const (
	// SideLow scales bins at or below the cutoff.
	SideLow Side = iota
	// SideHigh scales bins at or above the cutoff.
	SideHigh
)

// String returns "low" or "high".
func (s Side) String() string {
	switch s {
	case SideLow:
		return "low"
	case SideHigh:
		return "high"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide maps "low" or "high" to a Side.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return SideLow, nil
	case "high":
		return SideHigh, nil
	default:
		return 0, fmt.Errorf("%w: unknown shelf side %q", ErrInvalidParameter, name)
	}
}
