package config

import (
	"github.com/rs/zerolog"

	"github.com/mrz1836/warroom/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.Wrap(errors.ErrConfigInvalid, "configuration is nil")
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "server.host must not be empty")
	}

	if cfg.Paths.DataDir == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "paths.data_dir must not be empty")
	}
	if cfg.Paths.WorkspaceDir == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "paths.workspace_dir must not be empty")
	}
	if cfg.Paths.OpenClawDir == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "paths.openclaw_dir must not be empty")
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"log.level %q is not a valid level", cfg.Log.Level)
	}
	if cfg.Log.MaxSizeMB < 1 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"log.max_size_mb must be positive, got %d", cfg.Log.MaxSizeMB)
	}

	return nil
}
