// Package config provides configuration management for the War Room
// server with layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (WARROOM_* prefix)
//  2. Project config (.warroom/config.yaml)
//  3. Global config (~/.warroom/config.yaml)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and
// internal/errors, but MUST NOT import internal/domain or the store
// packages.
package config

// Config is the root configuration structure for the War Room server.
type Config struct {
	// Server contains the HTTP listener settings.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Paths contains the directories the document families and agent
	// artifacts live in.
	Paths PathsConfig `yaml:"paths" mapstructure:"paths"`

	// Log contains structured-logging settings.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// ServerConfig contains the HTTP listener settings.
type ServerConfig struct {
	// Host is the bind address. Default: "127.0.0.1"
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the listen port. Default: 8790
	Port int `yaml:"port" mapstructure:"port"`

	// CORSOrigins lists allowed dashboard origins. An entry of "*"
	// allows any origin. Default: ["*"]
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// PathsConfig contains the directories the server reads and writes.
type PathsConfig struct {
	// DataDir holds the task, project, heartbeat, and history
	// documents. Default: ~/.warroom/data
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// WorkspaceDir is the agent workspace holding the persona files
	// and workspace skills. Default: ~/.openclaw/workspace
	WorkspaceDir string `yaml:"workspace_dir" mapstructure:"workspace_dir"`

	// OpenClawDir is the agent gateway's home, holding openclaw.json
	// and the managed skills. Default: ~/.openclaw
	OpenClawDir string `yaml:"openclaw_dir" mapstructure:"openclaw_dir"`

	// SessionsDir holds the gateway's append-only session logs the
	// usage ledger scans. Default: ~/.openclaw/sessions
	SessionsDir string `yaml:"sessions_dir" mapstructure:"sessions_dir"`

	// MemoryDir holds the agent's daily memory notes surfaced on the
	// calendar. Default: ~/.openclaw/workspace/memory
	MemoryDir string `yaml:"memory_dir" mapstructure:"memory_dir"`

	// BundledSkillsDir optionally points at skills shipped with the
	// deployment. Empty disables the bundled tier. Default: ""
	BundledSkillsDir string `yaml:"bundled_skills_dir" mapstructure:"bundled_skills_dir"`
}

// LogConfig contains structured-logging settings.
type LogConfig struct {
	// Level is the zerolog level name. Default: "info"
	Level string `yaml:"level" mapstructure:"level"`

	// File is the rotating log file path. Empty logs to stderr only.
	// Default: ""
	File string `yaml:"file" mapstructure:"file"`

	// MaxSizeMB is the size a log file may grow to before rotation.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files retained. Default: 3
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is the retention window for rotated files. Default: 28
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
}
