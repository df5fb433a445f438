package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/pcm"
	"github.com/cwbudde/algo-spectral/dsp/spectral"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/internal/wavio"
)

type namedChannel struct {
	name    string
	samples []float64
}

// channelInfo summarizes one channel of a file. The spectral fields are set
// only for power-of-two frame counts.
type channelInfo struct {
	name     string
	peakDBFS float64
	spectral bool
	peakHz   float64
	peakMag  float64
	energy   float64
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.wav>",
		Short: "Print format and spectral summary of a WAV file",
		Long: `Print the header of a WAV file and, per channel, the sample peak in dBFS
and the strongest spectral bin. The spectral columns need a power-of-two
frame count; other files report n/a and cannot be processed by the effects.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio, err := wavio.ReadFile(args[0])
			if err != nil {
				return err
			}
			infos, err := analyzeAudio(audio)
			if err != nil {
				return err
			}
			return printInfo(cmd.OutOrStdout(), args[0], audio, infos)
		},
	}
}

func analyzeAudio(a *wavio.Audio) ([]channelInfo, error) {
	c, err := a.Container()
	if err != nil {
		return nil, err
	}
	fs, err := pcm.FullScale(a.BitDepth)
	if err != nil {
		return nil, err
	}

	channels := []namedChannel{{"mono", c.Samples}}
	if c.IsStereo() {
		channels = []namedChannel{{"left", c.Left}, {"right", c.Right}}
	}

	analyzer, err := spectral.NewChain(nil)
	if err != nil {
		return nil, err
	}

	infos := make([]channelInfo, 0, len(channels))
	for _, ch := range channels {
		info := channelInfo{name: ch.name}

		peak := 0.0
		for _, v := range ch.samples {
			peak = math.Max(peak, math.Abs(v))
		}
		info.peakDBFS = core.LinearToDB(peak / fs)

		if core.IsPowerOfTwo(len(ch.samples)) {
			bins, err := analyzer.Analyze(ch.samples, float64(a.SampleRate))
			if err != nil {
				return nil, fmt.Errorf("%s channel: %w", ch.name, err)
			}
			mag, k := spectrum.Peak(bins)
			info.spectral = true
			info.peakMag = mag
			info.peakHz = spectrum.BinFrequency(k, len(bins), float64(a.SampleRate))
			info.energy = spectrum.Energy(bins)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func printInfo(w io.Writer, path string, a *wavio.Audio, infos []channelInfo) error {
	if _, err := fmt.Fprintf(w, "%s: %d Hz, %d-bit, %d channel(s), %d frames (%.3f s)\n\n",
		path, a.SampleRate, a.BitDepth, a.Channels, a.Frames(),
		float64(a.Frames())/float64(a.SampleRate)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tPeak [dBFS]\tPeak bin [Hz]\tPeak |X|\tEnergy\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----------\t-------------\t--------\t------\n"); err != nil {
		return err
	}

	for _, info := range infos {
		if !info.spectral {
			if _, err := fmt.Fprintf(tw, "%s\t%.2f\tn/a\tn/a\tn/a\n", info.name, info.peakDBFS); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.4g\t%.4g\n",
			info.name, info.peakDBFS, info.peakHz, info.peakMag, info.energy); err != nil {
			return err
		}
	}
	return tw.Flush()
}
