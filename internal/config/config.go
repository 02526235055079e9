// Package config loads treecl settings from defaults, an optional YAML file
// and TREECL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/flopezo/treeCl/internal/observability"
	"github.com/flopezo/treeCl/pkg/analysis"
	"github.com/flopezo/treeCl/pkg/jobmem"
)

// Sentinel validation errors.
var (
	ErrInvalidThreshold   = errors.New("dna threshold must be in (0, 1]")
	ErrInvalidMultiplier  = errors.New("memory multiplier must be at least 1")
	ErrInvalidEpsilon     = errors.New("epsilon must be positive")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidMethod      = errors.New("invalid default analysis method")
	ErrInvalidSampleRatio = errors.New("trace sample ratio must be in [0, 1]")
)

// Config is the top-level configuration struct for treecl.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Epsilon   float64         `mapstructure:"epsilon"`
	DNA       DNAConfig       `mapstructure:"dna"`
	Memory    MemoryConfig    `mapstructure:"memory"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// DNAConfig holds sequence type detection settings.
type DNAConfig struct {
	Threshold float64 `mapstructure:"threshold"`
}

// MemoryConfig holds LSF memory request settings.
type MemoryConfig struct {
	Multiplier float64 `mapstructure:"multiplier"`
	SpareMB    uint64  `mapstructure:"spare_mb"`
}

// AnalysisConfig holds analysis defaults.
type AnalysisConfig struct {
	DefaultMethod string `mapstructure:"default_method"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig holds OpenTelemetry export settings.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	// OTLPHeaders is a "key=value,key=value" list sent as gRPC metadata.
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	Environment  string  `mapstructure:"environment"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Epsilon <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, c.Epsilon)
	}

	if c.DNA.Threshold <= 0 || c.DNA.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, c.DNA.Threshold)
	}

	if c.Memory.Multiplier < 1 {
		return fmt.Errorf("%w: %v", ErrInvalidMultiplier, c.Memory.Multiplier)
	}

	if _, err := analysis.Parse(c.Analysis.DefaultMethod); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMethod, err)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, c.Telemetry.SampleRatio)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Logging.Level into an slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	level, err := observability.ParseLogLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %w", ErrInvalidLogLevel, err)
	}

	return level, nil
}

// Sizing returns the memory request margin described by the config.
func (c *Config) Sizing() jobmem.Sizing {
	return jobmem.Sizing{
		Multiplier: c.Memory.Multiplier,
		SpareMB:    c.Memory.SpareMB,
		Epsilon:    c.Epsilon,
	}
}
