package filter

import (
	"errors"
	"testing"
)

func TestNewFromSpecRoundTrip(t *testing.T) {
	specs := []Spec{
		{Kind: KindHighPass, Cutoff: 80},
		{Kind: KindLowPass, Cutoff: 8000},
		{Kind: KindBandPass, Low: 300, High: 3400},
		{Kind: KindBandStop, Low: 45, High: 55},
		{Kind: KindPeaking, Center: 1000, GainDB: 3, Bandwidth: 200},
		{Kind: KindShelving, Cutoff: 200, GainDB: -6, Side: SideHigh},
		{Kind: KindAllPass, Phase: 0.5},
	}

	for _, spec := range specs {
		t.Run(spec.Kind.String(), func(t *testing.T) {
			f, err := New(spec)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := f.Spec(); got != spec {
				t.Fatalf("Spec() = %+v, want %+v", got, spec)
			}
		})
	}
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	if _, err := New(Spec{Kind: Kind(42)}); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("New(unknown kind) error = %v, want ErrInvalidParameter", err)
	}

	f, err := New(Spec{Kind: KindBandPass, Low: 10, High: 5})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("New(inverted band) error = %v, want ErrInvalidParameter", err)
	}
	if f != nil {
		t.Fatalf("New() returned non-nil filter %v on error", f)
	}
}

func TestParseKindAndSide(t *testing.T) {
	tests := map[string]Kind{
		"lowpass":   KindLowPass,
		"Low-Pass":  KindLowPass,
		"high_pass": KindHighPass,
		"BANDSTOP":  KindBandStop,
		"all pass":  KindAllPass,
		"peaking":   KindPeaking,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Fatalf("ParseKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("comb"); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("ParseKind(comb) error = %v", err)
	}

	if s, err := ParseSide("HIGH"); err != nil || s != SideHigh {
		t.Fatalf("ParseSide(HIGH) = %v, %v", s, err)
	}
	if _, err := ParseSide("middle"); err == nil {
		t.Fatal("expected error for unknown side")
	}
}
