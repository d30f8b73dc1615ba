// Package config provides the configuration of the framebench driver.
// The column engine itself takes no configuration; everything here controls
// the benchmark workload and the driver's logging, metrics and tracing.
//
// The configuration is organized into sections:
//   - Bench: workload size, random seed and value ranges
//   - Scenarios: which benchmark phases run
//   - Logging: zap logger settings
//   - Metrics: Prometheus endpoint
//   - Tracing: OpenTelemetry stdout exporter
//
// Example usage:
//
//	cfg, err := config.Read("framebench.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg.Bench.Rows = 1_000_000
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import (
	"github.com/ajitpratap0/colframe/pkg/errors"
	"github.com/ajitpratap0/colframe/pkg/logger"
)

// Config is the complete framebench configuration.
type Config struct {
	Bench     BenchConfig    `yaml:"bench" mapstructure:"bench"`
	Scenarios ScenarioConfig `yaml:"scenarios" mapstructure:"scenarios"`
	Logging   logger.Config  `yaml:"logging" mapstructure:"logging"`
	Metrics   MetricsConfig  `yaml:"metrics" mapstructure:"metrics"`
	Tracing   TracingConfig  `yaml:"tracing" mapstructure:"tracing"`
}

// BenchConfig describes the generated workload.
type BenchConfig struct {
	// Rows is the number of rows generated per table
	Rows int `yaml:"rows" mapstructure:"rows"`
	// Seed seeds the generator; 0 picks a random seed at start
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
	// IntRange bounds generated int32 values to [-IntRange, IntRange]
	IntRange int32 `yaml:"int_range" mapstructure:"int_range"`
	// FloatRange bounds generated float32 values to [-FloatRange, FloatRange)
	FloatRange float32 `yaml:"float_range" mapstructure:"float_range"`
	// MinStringLen and MaxStringLen bound generated string lengths, inclusive
	MinStringLen int `yaml:"min_string_len" mapstructure:"min_string_len"`
	MaxStringLen int `yaml:"max_string_len" mapstructure:"max_string_len"`
}

// ScenarioConfig selects the workloads and phases to run. The table phases
// merge the table filled by the copy insert phase.
type ScenarioConfig struct {
	Numeric       bool `yaml:"numeric" mapstructure:"numeric"`
	Text          bool `yaml:"text" mapstructure:"text"`
	CopyInsert    bool `yaml:"copy_insert" mapstructure:"copy_insert"`
	ConsumeInsert bool `yaml:"consume_insert" mapstructure:"consume_insert"`
	TableCopy     bool `yaml:"table_copy" mapstructure:"table_copy"`
	TableConsume  bool `yaml:"table_consume" mapstructure:"table_consume"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Addr    string `yaml:"addr" mapstructure:"addr"`
}

// TracingConfig controls span export.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled" mapstructure:"enabled"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// Output is "stdout", "stderr" or a file path
	Output string `yaml:"output" mapstructure:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			Rows:         10_000_000,
			IntRange:     1_000_000,
			FloatRange:   1_000_000,
			MinStringLen: 3,
			MaxStringLen: 40,
		},
		Scenarios: ScenarioConfig{
			Numeric:       true,
			Text:          true,
			CopyInsert:    true,
			ConsumeInsert: true,
			TableCopy:     true,
			TableConsume:  true,
		},
		Logging: logger.DefaultConfig(),
		Metrics: MetricsConfig{
			Addr: ":9090",
		},
		Tracing: TracingConfig{
			ServiceName: "framebench",
			Output:      "stderr",
		},
	}
}

// Validate checks the configuration for values the driver cannot run with.
func (c *Config) Validate() error {
	b := c.Bench
	if b.Rows <= 0 {
		return configError("bench.rows must be positive", b.Rows)
	}
	if b.IntRange < 0 {
		return configError("bench.int_range cannot be negative", b.IntRange)
	}
	if b.FloatRange < 0 {
		return configError("bench.float_range cannot be negative", b.FloatRange)
	}
	if b.MinStringLen < 0 {
		return configError("bench.min_string_len cannot be negative", b.MinStringLen)
	}
	if b.MaxStringLen < b.MinStringLen {
		return configError("bench.max_string_len must be >= bench.min_string_len", b.MaxStringLen)
	}
	if !c.Scenarios.Numeric && !c.Scenarios.Text {
		return errors.New(errors.ErrorTypeConfig, "at least one of scenarios.numeric and scenarios.text must be enabled")
	}
	if (c.Scenarios.TableCopy || c.Scenarios.TableConsume) && !c.Scenarios.CopyInsert {
		return errors.New(errors.ErrorTypeConfig, "scenarios.table_copy and scenarios.table_consume need scenarios.copy_insert to fill the source table")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return errors.New(errors.ErrorTypeConfig, "metrics.addr is required when metrics are enabled")
	}
	if c.Tracing.Enabled && c.Tracing.Output == "" {
		return errors.New(errors.ErrorTypeConfig, "tracing.output is required when tracing is enabled")
	}
	return nil
}

func configError(msg string, value any) error {
	return errors.New(errors.ErrorTypeConfig, msg).WithDetail("value", value)
}
