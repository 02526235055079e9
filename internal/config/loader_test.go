package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flopezo/treeCl/internal/config"
	"github.com/flopezo/treeCl/pkg/jobmem"
	"github.com/flopezo/treeCl/pkg/seqtype"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "treecl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.InDelta(t, 1e-8, cfg.Epsilon, 0)
	assert.InDelta(t, seqtype.DefaultDNAThreshold, cfg.DNA.Threshold, 0)
	assert.InDelta(t, jobmem.DefaultMultiplier, cfg.Memory.Multiplier, 0)
	assert.Equal(t, uint64(jobmem.DefaultSpareMB), cfg.Memory.SpareMB)
	assert.Equal(t, "ml", cfg.Analysis.DefaultMethod)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
	assert.Empty(t, cfg.Telemetry.OTLPHeaders)
	assert.Zero(t, cfg.Telemetry.SampleRatio)
	assert.Equal(t, jobmem.DefaultSizing(), cfg.Sizing())
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
epsilon: 0.25
dna:
  threshold: 0.9
memory:
  multiplier: 1.5
  spare_mb: 512
analysis:
  default_method: bionj
logging:
  level: debug
  json: true
telemetry:
  otlp_endpoint: localhost:4317
  otlp_insecure: true
  otlp_headers: "x-team=phylo, x-env=hpc"
  sample_ratio: 0.1
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, cfg.Epsilon, 0)
	assert.InDelta(t, 0.9, cfg.DNA.Threshold, 0)
	assert.InDelta(t, 1.5, cfg.Memory.Multiplier, 0)
	assert.Equal(t, uint64(512), cfg.Memory.SpareMB)
	assert.Equal(t, "bionj", cfg.Analysis.DefaultMethod)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.OTLPInsecure)
	assert.Equal(t, "x-team=phylo, x-env=hpc", cfg.Telemetry.OTLPHeaders)
	assert.InDelta(t, 0.1, cfg.Telemetry.SampleRatio, 0)

	assert.Equal(t, jobmem.Sizing{Multiplier: 1.5, SpareMB: 512, Epsilon: 0.25}, cfg.Sizing())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("TREECL_MEMORY_SPARE_MB", "1024")
	t.Setenv("TREECL_LOGGING_LEVEL", "warn")

	cfg, err := config.LoadConfig(writeConfig(t, "memory:\n  spare_mb: 64\n"))
	require.NoError(t, err)

	assert.Equal(t, uint64(1024), cfg.Memory.SpareMB)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(writeConfig(t, "dna:\n  threshold: 2\n"))
	require.ErrorIs(t, err, config.ErrInvalidThreshold)

	_, err = config.LoadConfig(writeConfig(t, "telemetry:\n  sample_ratio: 1.5\n"))
	require.ErrorIs(t, err, config.ErrInvalidSampleRatio)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(writeConfig(t, "dna: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
