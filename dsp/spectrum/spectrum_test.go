package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}
	if mag[2] != 0 {
		t.Fatalf("Magnitude[2]=%f want=0", mag[2])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-2) > 1e-12 {
		t.Fatalf("Power=%v want=[25 2 0]", pow)
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatal("expected nil for empty spectrum")
	}
	if peak, idx := Peak(nil); peak != 0 || idx != -1 {
		t.Fatalf("Peak(nil) = (%v, %d), want (0, -1)", peak, idx)
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(3, 8, 8); got != 3 {
		t.Fatalf("BinFrequency(3, 8, 8) = %v, want 3", got)
	}
	freqs := Frequencies(4, 48000)
	want := []float64{0, 12000, 24000, 36000}
	for i := range want {
		if freqs[i] != want[i] {
			t.Fatalf("Frequencies[%d] = %v, want %v", i, freqs[i], want[i])
		}
	}
}

func TestPeakAndEnergy(t *testing.T) {
	bins := []complex128{1, -6i, 3 + 4i}

	peak, idx := Peak(bins)
	if math.Abs(peak-6) > 1e-12 || idx != 1 {
		t.Fatalf("Peak() = (%v, %d), want (6, 1)", peak, idx)
	}
	if e := Energy(bins); math.Abs(e-62) > 1e-12 {
		t.Fatalf("Energy() = %v, want 62", e)
	}
}

func TestScaleAndPolar(t *testing.T) {
	bins := []complex128{1 + 1i, -2}
	Scale(bins, 0.5)
	if bins[0] != 0.5+0.5i || bins[1] != -1 {
		t.Fatalf("Scale() = %v", bins)
	}

	c := Polar(2, math.Pi/2)
	if math.Abs(real(c)) > 1e-12 || math.Abs(imag(c)-2) > 1e-12 {
		t.Fatalf("Polar(2, pi/2) = %v", c)
	}
}

func TestFoldedFrequency(t *testing.T) {
	// 8 bins at 8 Hz: 1 Hz spacing, Nyquist at bin 4.
	want := []float64{0, 1, 2, 3, 4, 3, 2, 1}
	for k, w := range want {
		if got := FoldedFrequency(k, 8, 8); got != w {
			t.Fatalf("FoldedFrequency(%d)=%v want=%v", k, got, w)
		}
		if mirror := (8 - k) % 8; FoldedFrequency(mirror, 8, 8) != w {
			t.Fatalf("bin %d and mirror %d fold differently", k, mirror)
		}
	}
}
