package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-spectral/internal/pipeline"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	logger *logrus.Logger

	configFile string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:      pipeline.NewViper(),
		logger: logrus.New(),
	}

	rootCmd := &cobra.Command{
		Use:   "spectra",
		Short: "Frequency-domain audio effects for WAV files",
		Long: `spectra applies spectral effects to mono or stereo PCM WAV files.

Each effect transforms the whole file with a power-of-two FFT, rewrites the
spectrum and transforms back. Inputs whose frame count is not a power of two
are rejected rather than padded.

Effects:
- band filters (high/low-pass, band-pass/stop, peaking, shelving, all-pass)
- equalizer, hum remover, noise reduction, normalizer
- sample-rate and bit-depth conversion`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "pipeline document (YAML)")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")
	flags.StringP("input", "i", "", "input WAV file")
	flags.StringP("output", "o", "", "output WAV file")
	flags.String("backend", "", "FFT backend (radix2, algofft)")

	rootCmd.AddCommand(
		newRunCmd(a),
		newConfigCmd(a),
		newFilterCmd(a),
		newEqCmd(a),
		newDehumCmd(a),
		newDenoiseCmd(a),
		newSoftGateCmd(a),
		newNormalizeCmd(a),
		newResampleCmd(a),
		newBitDepthCmd(a),
		newInfoCmd(a),
	)

	return rootCmd
}

// initialize configures logging, binds flags and reads the config file.
func (a *app) initialize(cmd *cobra.Command) error {
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if a.verbose {
		level = logrus.DebugLevel
	}
	a.logger.SetLevel(level)

	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		a.logger.WithField("config", a.v.ConfigFileUsed()).Debug("Using config file")
	}
	return nil
}

// bindFlags binds every flag of cmd to its viper key, turning dashes into
// underscores.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
	})
	return lastErr
}

// resolve decodes the pipeline document from config file, environment and
// flags.
func (a *app) resolve() (*pipeline.Config, error) {
	return pipeline.FromViper(a.v)
}

// runStages runs a one-off pipeline built from stages.
func (a *app) runStages(stages ...pipeline.StageConfig) error {
	cfg, err := a.resolve()
	if err != nil {
		return err
	}
	cfg.Stages = stages
	return a.execute(cfg)
}

func (a *app) execute(cfg *pipeline.Config) error {
	if cfg.Input == "" || cfg.Output == "" {
		return fmt.Errorf("both --input and --output are required")
	}

	p, err := pipeline.New(cfg, pipeline.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.WithFields(logrus.Fields{
		"steps":   strings.Join(p.Steps(), " -> "),
		"backend": cfg.Backend,
	}).Debug("Pipeline built")

	return p.RunFile(cfg.Input, cfg.Output)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
