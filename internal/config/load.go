package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mrz1836/warroom/internal/errors"
)

// configDirName is the directory holding config.yaml, both globally
// (under the home directory) and per project.
const configDirName = ".warroom"

// newViperInstance creates a Viper instance with the standard prefix,
// key replacer, and defaults installed.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("WARROOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from all available sources with proper
// precedence. Missing config files are not an error; malformed ones
// are.
func Load() (*Config, error) {
	v := newViperInstance()

	if home, err := os.UserHomeDir(); err == nil {
		if err := mergeConfigFile(v, filepath.Join(home, configDirName, "config.yaml")); err != nil {
			return nil, err
		}
	}
	if err := mergeConfigFile(v, filepath.Join(configDirName, "config.yaml")); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads configuration from one explicit file plus the
// environment, skipping the usual search paths. The file must exist.
func LoadFile(path string) (*Config, error) {
	v := newViperInstance()
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigFile merges one YAML config file into v when it exists.
func mergeConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		if isConfigNotFoundError(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config %s", path)
	}
	return nil
}

func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}
