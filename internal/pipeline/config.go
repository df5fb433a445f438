package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spectral/dsp/spectral/equalizer"
)

// EnvPrefix is the environment prefix for configuration overrides.
const EnvPrefix = "SPECTRA"

// Stage type names.
const (
	StageFilter    = "filter"
	StageEqualizer = "eq"
	StageDehum     = "dehum"
	StageDenoise   = "denoise"
	StageSoftGate  = "softgate"
	StageNormalize = "normalize"
	StageResample  = "resample"
	StageBitDepth  = "bitdepth"
)

var (
	// ErrUnknownStage indicates a stage type outside the known set.
	ErrUnknownStage = errors.New("pipeline: unknown stage type")
	// ErrInvalidConfig indicates a document that cannot be built.
	ErrInvalidConfig = errors.New("pipeline: invalid configuration")
)

// Config is a processing document.
type Config struct {
	Input   string        `yaml:"input,omitempty" mapstructure:"input"`
	Output  string        `yaml:"output,omitempty" mapstructure:"output"`
	Backend string        `yaml:"backend,omitempty" mapstructure:"backend"`
	Stages  []StageConfig `yaml:"stages" mapstructure:"stages"`
}

// StageConfig describes one stage. Only the fields of its Type are read.
type StageConfig struct {
	Type string `yaml:"type" mapstructure:"type"`

	// filter
	Kind      string  `yaml:"kind,omitempty" mapstructure:"kind"`
	Cutoff    float64 `yaml:"cutoff,omitempty" mapstructure:"cutoff"`
	Low       float64 `yaml:"low,omitempty" mapstructure:"low"`
	High      float64 `yaml:"high,omitempty" mapstructure:"high"`
	Center    float64 `yaml:"center,omitempty" mapstructure:"center"`
	GainDB    float64 `yaml:"gain_db,omitempty" mapstructure:"gain_db"`
	Bandwidth float64 `yaml:"bandwidth,omitempty" mapstructure:"bandwidth"`
	Side      string  `yaml:"side,omitempty" mapstructure:"side"`
	Phase     float64 `yaml:"phase,omitempty" mapstructure:"phase"`

	// eq
	Bands []equalizer.Band `yaml:"bands,omitempty" mapstructure:"bands"`

	// dehum
	HumHz      float64 `yaml:"hum_hz,omitempty" mapstructure:"hum_hz"`
	NotchWidth float64 `yaml:"notch_width,omitempty" mapstructure:"notch_width"`

	// denoise
	Gates []GateConfig `yaml:"gates,omitempty" mapstructure:"gates"`

	// softgate
	ThresholdDB float64 `yaml:"threshold_db,omitempty" mapstructure:"threshold_db"`

	// normalize
	TargetDB float64 `yaml:"target_db,omitempty" mapstructure:"target_db"`

	// resample
	Rate   int    `yaml:"rate,omitempty" mapstructure:"rate"`
	Method string `yaml:"method,omitempty" mapstructure:"method"`

	// bitdepth
	Bits int `yaml:"bits,omitempty" mapstructure:"bits"`
}

// GateConfig is one noise-reduction stage.
type GateConfig struct {
	Method    string  `yaml:"method" mapstructure:"method"`
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
}

// setDefaults sets default values for keys the document may omit.
func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", "radix2")
	v.SetDefault("input", "")
	v.SetDefault("output", "")
}

// NewViper returns a viper instance wired for SPECTRA_ environment
// overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the document at path. Environment overrides apply on top.
func Load(path string) (*Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", path, err)
	}
	return FromViper(v)
}

// FromViper decodes a document from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("pipeline: unable to decode configuration: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document without environment overrides.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("pipeline: parse YAML: %w", err)
	}
	return cfg, nil
}

// YAML renders the document.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("pipeline: marshal YAML: %w", err)
	}
	return data, nil
}
