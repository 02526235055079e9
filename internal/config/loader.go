package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/flopezo/treeCl/pkg/analysis"
	"github.com/flopezo/treeCl/pkg/constants"
	"github.com/flopezo/treeCl/pkg/jobmem"
	"github.com/flopezo/treeCl/pkg/seqtype"
)

// configName is the config file name without extension.
const configName = ".treecl"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for treecl settings.
const envPrefix = "TREECL"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Epsilon:  constants.Epsilon,
		DNA:      DNAConfig{Threshold: seqtype.DefaultDNAThreshold},
		Memory:   MemoryConfig{Multiplier: jobmem.DefaultMultiplier, SpareMB: jobmem.DefaultSpareMB},
		Analysis: AnalysisConfig{DefaultMethod: analysis.ML.String()},
		Logging:  LoggingConfig{Level: "info"},
	}
}

func applyDefaults(viperCfg *viper.Viper) {
	def := Default()

	viperCfg.SetDefault("epsilon", def.Epsilon)

	viperCfg.SetDefault("dna.threshold", def.DNA.Threshold)

	viperCfg.SetDefault("memory.multiplier", def.Memory.Multiplier)
	viperCfg.SetDefault("memory.spare_mb", def.Memory.SpareMB)

	viperCfg.SetDefault("analysis.default_method", def.Analysis.DefaultMethod)

	viperCfg.SetDefault("logging.level", def.Logging.Level)
	viperCfg.SetDefault("logging.json", def.Logging.JSON)

	viperCfg.SetDefault("telemetry.otlp_endpoint", def.Telemetry.OTLPEndpoint)
	viperCfg.SetDefault("telemetry.otlp_insecure", def.Telemetry.OTLPInsecure)
	viperCfg.SetDefault("telemetry.otlp_headers", def.Telemetry.OTLPHeaders)
	viperCfg.SetDefault("telemetry.environment", def.Telemetry.Environment)
	viperCfg.SetDefault("telemetry.sample_ratio", def.Telemetry.SampleRatio)
}
