package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a YAML pipeline document",
		Long: `Run every stage of the document given with --config.

--input and --output override the document's input and output keys, as do
SPECTRA_INPUT and SPECTRA_OUTPUT.

Consecutive spectral stages (filter, eq, dehum, denoise, softgate,
normalize) share one transform round. The result matches running each
effect command in turn, apart from the integer rounding between files and
the DC and Nyquist bins after an all-pass filter.

Example document:

  input: in.wav
  output: out.wav
  stages:
    - type: filter
      kind: highpass
      cutoff: 80
    - type: dehum
      hum_hz: 50
      notch_width: 1
    - type: normalize
      target_db: -1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.configFile == "" {
				return fmt.Errorf("run requires --config")
			}
			cfg, err := a.resolve()
			if err != nil {
				return err
			}
			if len(cfg.Stages) == 0 {
				a.logger.Warn("Pipeline has no stages, copying input")
			}
			return a.execute(cfg)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved pipeline document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolve()
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			return writeString(cmd.OutOrStdout(), string(data))
		},
	}
}
