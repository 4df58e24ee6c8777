package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/warroom/internal/config"
)

func TestFormatVersion(t *testing.T) {
	t.Run("full build info", func(t *testing.T) {
		got := formatVersion(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2025-06-01"})
		assert.Equal(t, "1.2.3 (commit: abc123, built: 2025-06-01)", got)
	})

	t.Run("empty build info uses placeholders", func(t *testing.T) {
		got := formatVersion(BuildInfo{})
		assert.Equal(t, "dev (commit: none, built: unknown)", got)
	})
}

func TestRootCommand_Help(t *testing.T) {
	flags := &globalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "serve")
	assert.Contains(t, out.String(), "--config")
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	flags := &globalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"bogus"})

	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestSelectLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LogConfig
		flags globalFlags
		want  zerolog.Level
	}{
		{name: "verbose wins", cfg: config.LogConfig{Level: "warn"}, flags: globalFlags{verbose: true}, want: zerolog.DebugLevel},
		{name: "quiet wins", cfg: config.LogConfig{Level: "debug"}, flags: globalFlags{quiet: true}, want: zerolog.WarnLevel},
		{name: "configured level", cfg: config.LogConfig{Level: "error"}, want: zerolog.ErrorLevel},
		{name: "bad level falls back to info", cfg: config.LogConfig{Level: "shout"}, want: zerolog.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selectLevel(tc.cfg, &tc.flags))
		})
	}
}
