package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dd0wney/cluso-routefinder/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Colour modes for rendered output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists every accepted Color value
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Environment variables read by ApplyEnv
const (
	EnvLogLevel    = "ROUTEFINDER_LOG_LEVEL"
	EnvLogFormat   = "ROUTEFINDER_LOG_FORMAT"
	EnvColor       = "ROUTEFINDER_COLOR"
	EnvMetricsFile = "ROUTEFINDER_METRICS_FILE"
	EnvMaxHops     = "ROUTEFINDER_MAX_HOPS"
)

// Default configuration values
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "json"

	// MaxHopLimitCeiling is the largest stop limit a config may allow
	MaxHopLimitCeiling = 1 << 20
)

// Config holds routefinder runtime configuration
type Config struct {
	// LogLevel is the minimum level written to stderr
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn warning error"`

	// LogFormat selects json or text log entries
	LogFormat string `yaml:"log_format" validate:"required,oneof=json text"`

	// Color controls styling of numbered output lines
	Color string `yaml:"color" validate:"required"`

	// MetricsFile receives a Prometheus textfile dump at exit (disabled if empty)
	MetricsFile string `yaml:"metrics_file"`

	// MaxHopLimit bounds maxStops/exactStops arguments (0 = unbounded)
	MaxHopLimit int64 `yaml:"max_hop_limit" validate:"gte=0"`

	// MaxPathLength bounds the labels in a route command (0 = unbounded)
	MaxPathLength int `yaml:"max_path_length" validate:"gte=0"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Color:     ColorAuto,
	}
}

// Load reads a YAML config file on top of the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from ROUTEFINDER_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.MetricsFile = v
	}
	if v := os.Getenv(EnvMaxHops); v != "" {
		hops, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxHops, v, err)
		}
		c.MaxHopLimit = hops
	}
	return nil
}

// Validate checks struct tags first, then cross-field rules
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return validation.NewConfigValidator("Config").
		OneOf("Color", c.Color, ColorModes).
		RangeInt64("MaxHopLimit", c.MaxHopLimit, 0, MaxHopLimitCeiling).
		NonNegative("MaxPathLength", c.MaxPathLength).
		When(c.MetricsFile != "", func(v *validation.ConfigValidator) {
			v.Custom("MetricsFile", func() error {
				return checkWritableDir(c.MetricsFile)
			})
		}).
		Validate()
}

// checkWritableDir verifies the directory that will hold path exists
func checkWritableDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
