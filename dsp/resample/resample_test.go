package resample

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestNewForRatesValidation(t *testing.T) {
	if _, err := NewForRates(0, 48000); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate for inRate=0, got %v", err)
	}
	if _, err := NewForRates(44100, math.Inf(1)); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("expected ErrInvalidRate for outRate=+Inf, got %v", err)
	}
	if _, err := NewForRates(44100, 48000, WithMethod(Method(9))); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestStandardRatios_Length(t *testing.T) {
	tests := []struct {
		inRate  float64
		outRate float64
		inLen   int
	}{
		{44100, 48000, 4096},
		{48000, 44100, 4096},
		{48000, 96000, 1000},
		{96000, 48000, 1001},
		{44100, 48000, 5},
		{8000, 8000, 17},
	}
	for _, tc := range tests {
		for _, m := range []Method{MethodLinear, MethodNearest, MethodCubic} {
			out, err := Convert(make([]float64, tc.inLen), tc.inRate, tc.outRate, m)
			if err != nil {
				t.Fatalf("Convert(%v,%v,%v) error = %v", tc.inRate, tc.outRate, m, err)
			}
			want := int(math.Round(float64(tc.inLen) * tc.outRate / tc.inRate))
			if len(out) != want {
				t.Fatalf("%v -> %v (%v): len = %d, want %d", tc.inRate, tc.outRate, m, len(out), want)
			}
		}
	}
}

func TestSameRateIsIdentity(t *testing.T) {
	in := testutil.Noise(40, 1, 64)
	for _, m := range []Method{MethodLinear, MethodNearest, MethodCubic} {
		out, err := Convert(in, 22050, 22050, m)
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		testutil.RequireSliceNearlyEqual(t, out, in, 1e-12)
	}
}

func TestUpsample2x(t *testing.T) {
	in := []float64{0, 2, 4, 2}

	tests := []struct {
		method Method
		want   []float64
	}{
		{MethodLinear, []float64{0, 1, 2, 3, 4, 3, 2, 2}},
		{MethodNearest, []float64{0, 2, 2, 4, 4, 2, 2, 2}},
		{MethodCubic, []float64{0, 0.875, 2, 3.25, 4, 3.125, 2, 1.875}},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			out, err := Convert(in, 1, 2, tt.method)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, out, tt.want, 1e-12)
		})
	}
}

func TestDownsampleKeepsEveryOtherSample(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := Convert(in, 48000, 24000, MethodCubic)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, 3, 5, 7}, 1e-12)
}

func TestCubicTracksSine(t *testing.T) {
	const inRate, outRate = 44100.0, 48000.0
	in := testutil.Sine(440, inRate, 1, 2048)

	out, err := Convert(in, inRate, outRate, MethodCubic)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := testutil.Sine(440, outRate, 1, len(out))
	// Skip the samples next to either edge, where clamping bends the curve.
	testutil.RequireSliceNearlyEqual(t, out[2:len(out)-4], want[2:len(want)-4], 1e-4)
}

func TestEmptyInput(t *testing.T) {
	out, err := Convert(nil, 44100, 48000, MethodLinear)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len(out) = %d, want 0", len(out))
	}
}

func TestConvertContainerStereo(t *testing.T) {
	left := []float64{32767, 16383, 0, -16383, -32767}
	right := []float64{-32767, -16383, 0, 16383, 32767}

	out, err := ConvertContainer(channel.Stereo(left, right), 44100, 48000, MethodCubic)
	if err != nil {
		t.Fatalf("ConvertContainer() error = %v", err)
	}
	if len(out.Left) != 5 || len(out.Right) != 5 {
		t.Fatalf("lengths = %d/%d, want 5/5", len(out.Left), len(out.Right))
	}
	for i := range out.Left {
		if math.Abs(out.Left[i]+out.Right[i]) > 1e-9 {
			t.Fatalf("channels not mirrored at %d: %v vs %v", i, out.Left[i], out.Right[i])
		}
	}

	mono, err := ConvertContainer(channel.Mono(left), 44100, 48000, MethodCubic)
	if err != nil {
		t.Fatalf("ConvertContainer(mono) error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, mono.Samples, out.Left, 0)
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodLinear, MethodNearest, MethodCubic} {
		got, err := ParseMethod(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if m, err := ParseMethod(""); err != nil || m != MethodLinear {
		t.Fatalf("ParseMethod(\"\") = %v, %v", m, err)
	}
	if _, err := ParseMethod("sinc"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("ParseMethod(sinc) error = %v", err)
	}
}
