package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestHandlerStereoMatchesMonoRuns(t *testing.T) {
	left := testutil.Noise(10, 1, 128)
	right := testutil.Tones(8000, 128, 250, 3000)

	h := NewHandler(mustFilter(NewLowPass(1000)))

	out, err := h.Apply(channel.Stereo(left, right), 8000)
	if err != nil {
		t.Fatalf("Apply(stereo) error = %v", err)
	}

	monoLeft, err := h.Apply(channel.Mono(left), 8000)
	if err != nil {
		t.Fatalf("Apply(left) error = %v", err)
	}
	monoRight, err := h.Apply(channel.Mono(right), 8000)
	if err != nil {
		t.Fatalf("Apply(right) error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out.Left, monoLeft.Samples, 0)
	testutil.RequireSliceNearlyEqual(t, out.Right, monoRight.Samples, 0)
}

func TestHandlerSwapFilter(t *testing.T) {
	in := testutil.Tones(1024, 64, 16, 256)

	h := NewHandler(mustFilter(NewLowPass(100)))
	low, err := h.Apply(channel.Mono(in), 1024)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	hp := mustFilter(NewHighPass(100))
	h.SetFilter(hp)
	if h.Filter() != hp {
		t.Fatal("SetFilter did not replace the active filter")
	}
	high, err := h.Apply(channel.Mono(in), 1024)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Each tone's mirror bin folds back onto the tone, so each filter keeps
	// or removes a whole tone.
	testutil.RequireSliceNearlyEqual(t, low.Samples, testutil.Sine(16, 1024, 1, 64), 1e-9)
	testutil.RequireSliceNearlyEqual(t, high.Samples, testutil.Sine(256, 1024, 1, 64), 1e-9)
}

func TestHandlerWithoutFilter(t *testing.T) {
	h := NewHandler(nil)
	if _, err := h.Apply(channel.Mono(make([]float64, 8)), 8); !errors.Is(err, ErrNoFilter) {
		t.Fatalf("Apply() error = %v, want ErrNoFilter", err)
	}
}
