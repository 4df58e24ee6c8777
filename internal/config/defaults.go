package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default server settings.
const (
	// DefaultHost binds to loopback only: the dashboard talks to the
	// server from the same machine.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the War Room listen port.
	DefaultPort = 8790
)

// setDefaults installs the built-in defaults as viper's base layer.
func setDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	openclaw := filepath.Join(home, ".openclaw")

	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("paths.data_dir", filepath.Join(home, ".warroom", "data"))
	v.SetDefault("paths.workspace_dir", filepath.Join(openclaw, "workspace"))
	v.SetDefault("paths.openclaw_dir", openclaw)
	v.SetDefault("paths.sessions_dir", filepath.Join(openclaw, "sessions"))
	v.SetDefault("paths.memory_dir", filepath.Join(openclaw, "workspace", "memory"))
	v.SetDefault("paths.bundled_skills_dir", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}
