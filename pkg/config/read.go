package config

import (
	"bytes"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. FRAME_BENCH_ROWS
const EnvPrefix = "FRAME"

// Read builds a Config from Default, the YAML file at path (skipped when path
// is empty) and FRAME_* environment variables, in increasing precedence. The
// result is validated.
func Read(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "marshal default config")
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "load default config")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "read config").
				WithDetail("path", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
