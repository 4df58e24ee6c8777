// Package cli provides the command-line interface for warroom.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalFlags holds the persistent flags shared by all subcommands.
type globalFlags struct {
	configFile string
	verbose    bool
	quiet      bool
}

// newRootCmd creates and returns the root command for the warroom CLI.
// This function-based approach avoids package-level globals, making the
// code more testable.
func newRootCmd(flags *globalFlags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warroom",
		Short: "War Room - agent work orchestration service",
		Long: `War Room runs the HTTP service behind the agent dashboard: a
prioritized task queue with a pickup protocol for workers, projects,
versioned workspace files, skill management, and usage accounting
derived from session logs.`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "path to config file (default: ./.warroom/config.yaml, ~/.warroom/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only log warnings and errors")

	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &globalFlags{}
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
