package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-spectral/dsp/channel"
	"github.com/cwbudde/algo-spectral/dsp/pcm"
)

const (
	formatPCM  = 1
	offset8bit = 128
)

var (
	// ErrUnsupportedFormat indicates a channel count, bit depth or encoding
	// the tools cannot process.
	ErrUnsupportedFormat = errors.New("wavio: unsupported format")
	// ErrInvalidFile indicates input that is not a WAV file.
	ErrInvalidFile = errors.New("wavio: invalid WAV file")
)

// Audio is a decoded PCM stream with interleaved signed samples.
type Audio struct {
	SampleRate int
	BitDepth   int
	Channels   int
	Data       []int
}

// Validate checks the channel count and bit depth.
func (a *Audio) Validate() error {
	if a.Channels != 1 && a.Channels != 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, a.Channels)
	}
	switch a.BitDepth {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, a.BitDepth)
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, a.SampleRate)
	}
	return nil
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if a.Channels <= 0 {
		return 0
	}
	return len(a.Data) / a.Channels
}

// Container splits the samples into a mono or stereo container at their
// native integer scale.
func (a *Audio) Container() (channel.Container, error) {
	if err := a.Validate(); err != nil {
		return channel.Container{}, err
	}

	data := make([]float64, len(a.Data))
	for i, s := range a.Data {
		data[i] = float64(s)
	}
	return channel.Deinterleave(data, a.Channels)
}

// FromContainer rounds and clamps c to bitDepth integers.
func FromContainer(c channel.Container, sampleRate, bitDepth int) (*Audio, error) {
	a := &Audio{SampleRate: sampleRate, BitDepth: bitDepth, Channels: c.Channels()}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	data, err := pcm.Quantize(channel.Interleave(c), bitDepth)
	if err != nil {
		return nil, err
	}
	a.Data = data
	return a, nil
}

// Read decodes a WAV stream.
func Read(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: audio format tag %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode PCM: %w", err)
	}

	a := &Audio{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   int(dec.BitDepth),
		Channels:   buf.Format.NumChannels,
		Data:       buf.Data,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if a.BitDepth == 8 {
		for i := range a.Data {
			a.Data[i] -= offset8bit
		}
	}
	return a, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Write encodes a as a PCM WAV stream.
func Write(w io.WriteSeeker, a *Audio) error {
	if err := a.Validate(); err != nil {
		return err
	}

	data := a.Data
	if a.BitDepth == 8 {
		data = make([]int, len(a.Data))
		for i, s := range a.Data {
			data[i] = s + offset8bit
		}
	}

	enc := wav.NewEncoder(w, a.SampleRate, a.BitDepth, a.Channels, formatPCM)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: a.Channels, SampleRate: a.SampleRate},
		SourceBitDepth: a.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode PCM: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}
	return nil
}

// WriteFile encodes a into a new file at path.
func WriteFile(path string, a *Audio) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	if err := Write(f, a); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
