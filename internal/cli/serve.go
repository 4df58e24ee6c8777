package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/warroom/internal/config"
	"github.com/mrz1836/warroom/internal/server"
	"github.com/mrz1836/warroom/internal/signal"
)

// newServeCmd creates the serve command, which runs the HTTP service
// until interrupted.
func newServeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Serve starts the War Room HTTP API and blocks until SIGINT or
SIGTERM, then drains in-flight requests before exiting.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			logger := newLogger(cfg.Log, flags)
			logger.Info().
				Str("host", cfg.Server.Host).
				Int("port", cfg.Server.Port).
				Str("dataDir", cfg.Paths.DataDir).
				Msg("starting warroom")

			h := signal.NewHandler(cmd.Context())
			defer h.Stop()

			err = server.New(cfg, logger).Run(h.Context())

			select {
			case <-h.Interrupted():
				logger.Info().Msg("shutdown complete")
			default:
			}
			return err
		},
	}
}

// loadConfig resolves configuration, honoring an explicit --config path.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.configFile != "" {
		return config.LoadFile(flags.configFile)
	}
	return config.Load()
}
