package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/dsp/spectral/equalizer"
	"github.com/cwbudde/algo-spectral/dsp/spectral/hum"
	"github.com/cwbudde/algo-spectral/internal/pipeline"
)

func newFilterCmd(a *app) *cobra.Command {
	var sc pipeline.StageConfig

	cmd := &cobra.Command{
		Use:   "filter <kind>",
		Short: "Apply one band filter",
		Long: `Apply a filter of the given kind:

  highpass   --cutoff          zero bins below the cutoff
  lowpass    --cutoff          zero bins above the cutoff
  bandpass   --low --high      keep bins inside [low, high]
  bandstop   --low --high      zero bins inside [low, high]
  peaking    --center --gain-db --bandwidth
  shelving   --cutoff --gain-db --side low|high
  allpass    --phase           rotate every bin by a constant phase`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc.Type = pipeline.StageFilter
			sc.Kind = args[0]
			return a.runStages(sc)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&sc.Cutoff, "cutoff", 0, "cutoff frequency in Hz")
	f.Float64Var(&sc.Low, "low", 0, "lower band edge in Hz")
	f.Float64Var(&sc.High, "high", 0, "upper band edge in Hz")
	f.Float64Var(&sc.Center, "center", 0, "peaking center frequency in Hz")
	f.Float64Var(&sc.GainDB, "gain-db", 0, "peaking/shelving gain in dB")
	f.Float64Var(&sc.Bandwidth, "bandwidth", 0, "peaking bandwidth in Hz")
	f.StringVar(&sc.Side, "side", "low", "shelf side (low, high)")
	f.Float64Var(&sc.Phase, "phase", 0, "all-pass phase shift in radians")
	return cmd
}

// parsePairs splits "a=b" flag values into float pairs.
func parsePairs(values []string) ([][2]float64, error) {
	pairs := make([][2]float64, 0, len(values))
	for _, v := range values {
		key, val, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", v)
		}
		k, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", v, err)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", v, err)
		}
		pairs = append(pairs, [2]float64{k, x})
	}
	return pairs, nil
}

func parseBands(values []string) ([]equalizer.Band, error) {
	pairs, err := parsePairs(values)
	if err != nil {
		return nil, err
	}
	bands := make([]equalizer.Band, len(pairs))
	for i, p := range pairs {
		bands[i] = equalizer.Band{ThresholdHz: p[0], Gain: p[1]}
	}
	return bands, nil
}

func parseGates(values []string) ([]pipeline.GateConfig, error) {
	gates := make([]pipeline.GateConfig, 0, len(values))
	for _, v := range values {
		method, val, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("expected method=threshold, got %q", v)
		}
		threshold, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", v, err)
		}
		gates = append(gates, pipeline.GateConfig{Method: strings.TrimSpace(method), Threshold: threshold})
	}
	return gates, nil
}

func newEqCmd(a *app) *cobra.Command {
	var bands []string

	cmd := &cobra.Command{
		Use:   "eq",
		Short: "Apply a threshold-frequency gain table",
		Long: `Each --band freq=gain applies the linear gain to bins at or below freq
that no lower band claims. Bins above every band pass unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseBands(bands)
			if err != nil {
				return err
			}
			return a.runStages(pipeline.StageConfig{Type: pipeline.StageEqualizer, Bands: parsed})
		},
	}
	cmd.Flags().StringArrayVar(&bands, "band", nil, "band as threshold_hz=gain (repeatable)")
	return cmd
}

func newDehumCmd(a *app) *cobra.Command {
	var humHz, width float64

	cmd := &cobra.Command{
		Use:   "dehum",
		Short: "Notch out mains hum and its harmonics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStages(pipeline.StageConfig{Type: pipeline.StageDehum, HumHz: humHz, NotchWidth: width})
		},
	}
	cmd.Flags().Float64Var(&humHz, "hum", hum.Hum50Hz, "hum fundamental in Hz (50, 60, 100, ...)")
	cmd.Flags().Float64Var(&width, "width", hum.NotchNarrow, "notch half-width in Hz (1 narrow, 2 medium, 5 wide)")
	return cmd
}

func newDenoiseCmd(a *app) *cobra.Command {
	var stages []string

	cmd := &cobra.Command{
		Use:   "denoise",
		Short: "Zero spectral bins below metric thresholds",
		Long: `Each --stage method=threshold adds a gate. Methods: amplitude, power,
decibel (db), absolute. A bin is zeroed by the first gate it falls below.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gates, err := parseGates(stages)
			if err != nil {
				return err
			}
			return a.runStages(pipeline.StageConfig{Type: pipeline.StageDenoise, Gates: gates})
		},
	}
	cmd.Flags().StringArrayVar(&stages, "stage", nil, "gate as method=threshold (repeatable)")
	return cmd
}

func newSoftGateCmd(a *app) *cobra.Command {
	var thresholdDB float64

	cmd := &cobra.Command{
		Use:   "softgate",
		Short: "Attenuate quiet spectral bins in proportion to their level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStages(pipeline.StageConfig{Type: pipeline.StageSoftGate, ThresholdDB: thresholdDB})
		},
	}
	cmd.Flags().Float64Var(&thresholdDB, "threshold-db", 40, "gate threshold in dB")
	return cmd
}

func newNormalizeCmd(a *app) *cobra.Command {
	var targetDB float64

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Scale the spectral peak to a target level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStages(pipeline.StageConfig{Type: pipeline.StageNormalize, TargetDB: targetDB})
		},
	}
	cmd.Flags().Float64Var(&targetDB, "target-db", 0, "target peak level in dB")
	return cmd
}

func newResampleCmd(a *app) *cobra.Command {
	var (
		rate   int
		method string
	)

	cmd := &cobra.Command{
		Use:   "resample",
		Short: "Convert the sample rate by interpolation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStages(pipeline.StageConfig{Type: pipeline.StageResample, Rate: rate, Method: method})
		},
	}
	cmd.Flags().IntVar(&rate, "rate", 48000, "target sample rate in Hz")
	cmd.Flags().StringVar(&method, "method", "linear", "interpolation (linear, nearest, cubic)")
	return cmd
}

func newBitDepthCmd(a *app) *cobra.Command {
	var bits int

	cmd := &cobra.Command{
		Use:   "bitdepth",
		Short: "Rescale samples to another bit depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStages(pipeline.StageConfig{Type: pipeline.StageBitDepth, Bits: bits})
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 16, "target bit depth (8, 16, 32)")
	return cmd
}
