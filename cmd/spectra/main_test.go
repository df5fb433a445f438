package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/internal/wavio"
)

func writeTestWAV(t *testing.T, path string, channels, frames int) {
	t.Helper()
	data := make([]int, channels*frames)
	tone := testutil.Tones(8000, frames, 250, 2500)
	for i := range frames {
		for ch := range channels {
			data[i*channels+ch] = int(tone[i] * 8000 * float64(ch+1) / float64(channels))
		}
	}
	a := &wavio.Audio{SampleRate: 8000, BitDepth: 16, Channels: channels, Data: data}
	if err := wavio.WriteFile(path, a); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEffectCommands(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantRate   int
		wantBits   int
		wantFrames int
	}{
		{"filter", []string{"filter", "lowpass", "--cutoff", "1000"}, 8000, 16, 256},
		{"filter peaking", []string{"filter", "peaking", "--center", "250", "--gain-db=-6", "--bandwidth", "40"}, 8000, 16, 256},
		{"eq", []string{"eq", "--band", "300=0.5", "--band", "3000=1.2"}, 8000, 16, 256},
		{"dehum", []string{"dehum", "--hum", "60", "--width", "2"}, 8000, 16, 256},
		{"denoise", []string{"denoise", "--stage", "amplitude=10", "--stage", "db=0"}, 8000, 16, 256},
		{"softgate", []string{"softgate", "--threshold-db", "20"}, 8000, 16, 256},
		{"normalize", []string{"normalize", "--target-db", "80"}, 8000, 16, 256},
		{"resample", []string{"resample", "--rate", "16000", "--method", "cubic"}, 16000, 16, 512},
		{"bitdepth", []string{"bitdepth", "--bits", "8"}, 8000, 8, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "in.wav")
			out := filepath.Join(dir, "out.wav")
			writeTestWAV(t, in, 2, 256)

			args := append(tt.args, "-i", in, "-o", out)
			if _, err := execute(t, args...); err != nil {
				t.Fatalf("execute(%v) error = %v", args, err)
			}

			got, err := wavio.ReadFile(out)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if got.SampleRate != tt.wantRate || got.BitDepth != tt.wantBits || got.Channels != 2 || got.Frames() != tt.wantFrames {
				t.Fatalf("output = %d Hz/%d bit/%d ch/%d frames", got.SampleRate, got.BitDepth, got.Channels, got.Frames())
			}
		})
	}
}

func TestEffectCommandErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, 1, 256)

	odd := filepath.Join(dir, "odd.wav")
	writeTestWAV(t, odd, 1, 300)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown kind", []string{"filter", "comb", "-i", in, "-o", out}, "unknown filter kind"},
		{"bad band", []string{"eq", "--band", "300", "-i", in, "-o", out}, "expected key=value"},
		{"bad gate", []string{"denoise", "--stage", "flux=3", "-i", in, "-o", out}, "unsupported method"},
		{"missing output", []string{"dehum", "-i", in}, "--output"},
		{"odd length", []string{"dehum", "-i", odd, "-o", out}, "power of two"},
		{"bad log level", []string{"--log-level", "loud", "normalize", "-i", in, "-o", out}, "log-level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, 1, 512)

	doc := "input: " + in + "\noutput: " + out + `
backend: algofft
stages:
  - type: filter
    kind: highpass
    cutoff: 100
  - type: normalize
    target_db: 60
  - type: resample
    rate: 4000
    method: nearest
`
	cfgPath := filepath.Join(dir, "pipeline.yaml")
	if err := os.WriteFile(cfgPath, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := execute(t, "run", "--config", cfgPath); err != nil {
		t.Fatalf("run error = %v", err)
	}
	got, err := wavio.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got.SampleRate != 4000 || got.Frames() != 256 {
		t.Fatalf("output = %d Hz, %d frames", got.SampleRate, got.Frames())
	}

	if _, err := execute(t, "run"); err == nil || !strings.Contains(err.Error(), "--config") {
		t.Fatalf("run without --config error = %v", err)
	}
}

func TestConfigCommandAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pipeline.yaml")
	doc := "input: a.wav\noutput: b.wav\nstages:\n  - type: dehum\n    hum_hz: 60\n"
	if err := os.WriteFile(cfgPath, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv("SPECTRA_BACKEND", "algofft")

	out, err := execute(t, "config", "--config", cfgPath, "-o", "c.wav")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"input: a.wav", "output: c.wav", "backend: algofft", "type: dehum", "hum_hz: 60"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	stereo := filepath.Join(dir, "stereo.wav")
	writeTestWAV(t, stereo, 2, 256)

	out, err := execute(t, "info", stereo)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}
	for _, want := range []string{"8000 Hz, 16-bit, 2 channel(s), 256 frames", "left", "right", "Peak bin [Hz]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output missing %q:\n%s", want, out)
		}
	}

	odd := filepath.Join(dir, "odd.wav")
	writeTestWAV(t, odd, 1, 100)
	out, err = execute(t, "info", odd)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}
	if !strings.Contains(out, "mono") || !strings.Contains(out, "n/a") {
		t.Fatalf("info output for odd file:\n%s", out)
	}
}

func TestParsePairs(t *testing.T) {
	pairs, err := parsePairs([]string{"100=0.5", " 2000 = 1.25 "})
	if err != nil {
		t.Fatalf("parsePairs() error = %v", err)
	}
	if pairs[0] != [2]float64{100, 0.5} || pairs[1] != [2]float64{2000, 1.25} {
		t.Fatalf("parsePairs() = %v", pairs)
	}
	for _, bad := range []string{"100", "x=1", "1=y"} {
		if _, err := parsePairs([]string{bad}); err == nil {
			t.Errorf("parsePairs(%q) expected error", bad)
		}
	}
}
