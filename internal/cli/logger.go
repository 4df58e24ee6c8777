package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/warroom/internal/config"
)

// newLogger builds the service logger from the log configuration and
// verbosity flags. Flags win over the configured level.
//
// Output format is determined by the terminal:
//   - TTY with colors enabled: console writer with timestamps
//   - non-TTY or NO_COLOR set: JSON output to stderr
//
// When a log file is configured the logger also writes there, with
// rotation. A file that cannot be opened is not fatal; logging
// continues on the console alone.
func newLogger(cfg config.LogConfig, flags *globalFlags) zerolog.Logger {
	writer := selectOutput()
	if cfg.File != "" {
		writer = zerolog.MultiLevelWriter(writer, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}

	return zerolog.New(writer).Level(selectLevel(cfg, flags)).With().Timestamp().Logger()
}

// selectLevel determines the log level from flags and configuration.
func selectLevel(cfg config.LogConfig, flags *globalFlags) zerolog.Level {
	switch {
	case flags.verbose:
		return zerolog.DebugLevel
	case flags.quiet:
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// selectOutput determines the appropriate output writer based on
// terminal capabilities and environment settings.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}
