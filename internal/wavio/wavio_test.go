package wavio

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/channel"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Audio
	}{
		{
			name: "mono 16-bit",
			in:   Audio{SampleRate: 44100, BitDepth: 16, Channels: 1, Data: []int{32767, 16383, 0, -16383, -32768}},
		},
		{
			name: "stereo 8-bit",
			in:   Audio{SampleRate: 8000, BitDepth: 8, Channels: 2, Data: []int{127, -128, 64, -64, 0, 1}},
		},
		{
			name: "stereo 32-bit",
			in:   Audio{SampleRate: 96000, BitDepth: 32, Channels: 2, Data: []int{2147483647, -2147483648, 5, -5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.wav")
			in := tt.in
			if err := WriteFile(path, &in); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if got.SampleRate != in.SampleRate || got.BitDepth != in.BitDepth || got.Channels != in.Channels {
				t.Fatalf("header = %d Hz/%d bit/%d ch, want %d/%d/%d",
					got.SampleRate, got.BitDepth, got.Channels, in.SampleRate, in.BitDepth, in.Channels)
			}
			if !slices.Equal(got.Data, in.Data) {
				t.Fatalf("Data = %v, want %v", got.Data, in.Data)
			}
			if got.Frames() != len(in.Data)/in.Channels {
				t.Fatalf("Frames() = %d", got.Frames())
			}
		})
	}
}

func TestWriteLeavesCallerDataIntact(t *testing.T) {
	a := &Audio{SampleRate: 8000, BitDepth: 8, Channels: 1, Data: []int{-128, 0, 127}}
	if err := WriteFile(filepath.Join(t.TempDir(), "x.wav"), a); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !slices.Equal(a.Data, []int{-128, 0, 127}) {
		t.Fatalf("Data modified: %v", a.Data)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	tests := []Audio{
		{SampleRate: 44100, BitDepth: 16, Channels: 3},
		{SampleRate: 44100, BitDepth: 24, Channels: 2},
		{SampleRate: 44100, BitDepth: 12, Channels: 1},
		{SampleRate: 0, BitDepth: 16, Channels: 1},
	}
	for _, a := range tests {
		if err := WriteFile(filepath.Join(t.TempDir(), "bad.wav"), &a); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("WriteFile(%d ch, %d bit) error = %v, want ErrUnsupportedFormat", a.Channels, a.BitDepth, err)
		}
		if _, err := a.Container(); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Container(%d ch, %d bit) error = %v, want ErrUnsupportedFormat", a.Channels, a.BitDepth, err)
		}
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	r := bytes.NewReader([]byte("definitely not a RIFF header"))
	if _, err := Read(r); !errors.Is(err, ErrInvalidFile) {
		t.Fatalf("Read() error = %v, want ErrInvalidFile", err)
	}
}

func TestContainerRoundTrip(t *testing.T) {
	a := &Audio{SampleRate: 48000, BitDepth: 16, Channels: 2, Data: []int{1, -1, 2, -2, 3, -3}}

	c, err := a.Container()
	if err != nil {
		t.Fatalf("Container() error = %v", err)
	}
	if !c.IsStereo() || !slices.Equal(c.Left, []float64{1, 2, 3}) || !slices.Equal(c.Right, []float64{-1, -2, -3}) {
		t.Fatalf("Container() = %+v", c)
	}

	back, err := FromContainer(c, 48000, 16)
	if err != nil {
		t.Fatalf("FromContainer() error = %v", err)
	}
	if !slices.Equal(back.Data, a.Data) {
		t.Fatalf("FromContainer() = %v, want %v", back.Data, a.Data)
	}
}

func TestFromContainerRoundsAndClamps(t *testing.T) {
	c := channel.Mono([]float64{40000.2, 12.5, -12.4, -40000})
	a, err := FromContainer(c, 44100, 16)
	if err != nil {
		t.Fatalf("FromContainer() error = %v", err)
	}
	if want := []int{32767, 13, -12, -32768}; !slices.Equal(a.Data, want) {
		t.Fatalf("Data = %v, want %v", a.Data, want)
	}

	if _, err := FromContainer(c, 44100, 24); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("FromContainer(24 bit) error = %v, want ErrUnsupportedFormat", err)
	}
}
