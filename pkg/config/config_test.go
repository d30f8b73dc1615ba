package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "framebench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadDefaults(t *testing.T) {
	cfg, err := Read("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestReadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
bench:
  rows: 5000
  seed: 42
scenarios:
  text: false
logging:
  level: debug
`)

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Bench.Rows)
	assert.Equal(t, uint64(42), cfg.Bench.Seed)
	assert.False(t, cfg.Scenarios.Text)
	assert.True(t, cfg.Scenarios.Numeric, "unset keys keep their defaults")
	assert.Equal(t, 40, cfg.Bench.MaxStringLen)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestReadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "bench:\n  rows: 5000\n")
	t.Setenv("FRAME_BENCH_ROWS", "77")
	t.Setenv("FRAME_METRICS_ENABLED", "true")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Bench.Rows)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	path := writeFile(t, "bench:\n  rows: -1\n")
	_, err = Read(path)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"rows", func(c *Config) { c.Bench.Rows = 0 }},
		{"int range", func(c *Config) { c.Bench.IntRange = -1 }},
		{"float range", func(c *Config) { c.Bench.FloatRange = -1 }},
		{"min string", func(c *Config) { c.Bench.MinStringLen = -1 }},
		{"max string", func(c *Config) { c.Bench.MaxStringLen = 2 }},
		{"no workload", func(c *Config) { c.Scenarios.Numeric, c.Scenarios.Text = false, false }},
		{"table phases without source", func(c *Config) { c.Scenarios.CopyInsert = false }},
		{"metrics addr", func(c *Config) { c.Metrics.Enabled, c.Metrics.Addr = true, "" }},
		{"tracing output", func(c *Config) { c.Tracing.Enabled, c.Tracing.Output = true, "" }},
	}

	require.NoError(t, Default().Validate())
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Bench.Rows = 123
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(path, cfg))

	var loaded Config
	require.NoError(t, Load(path, &loaded))
	assert.Equal(t, cfg, &loaded)
}

func TestLoadSubstitutesEnv(t *testing.T) {
	t.Setenv("FRAME_TEST_ROWS", "900")
	path := writeFile(t, "bench:\n  rows: ${FRAME_TEST_ROWS}\n  seed: ${FRAME_TEST_UNSET}7\n")

	var cfg Config
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, 900, cfg.Bench.Rows)
	assert.Equal(t, uint64(7), cfg.Bench.Seed)

	err := Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFile))
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("A", "1")
	t.Setenv("B", "2")
	assert.Equal(t, "x=1 y=2 z=", substituteEnvVars("x=${A} y=${B} z=${C_UNSET_VAR}"))
	assert.Equal(t, "open ${brace", substituteEnvVars("open ${brace"))
}
