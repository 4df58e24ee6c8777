// Package main provides the entry point for the warroom service.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/warroom/internal/cli"
)

// Build information set via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(context.Background(), info); err != nil {
		os.Exit(1)
	}
}
