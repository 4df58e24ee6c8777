// Package server exposes the War Room document families over HTTP for
// the dashboard. The API is a thin boundary: handlers decode and
// validate payloads, delegate to the stores, and map sentinel errors to
// status codes. All business rules live in the store packages.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/warroom/internal/clock"
	"github.com/mrz1836/warroom/internal/config"
	"github.com/mrz1836/warroom/internal/constants"
	warroomerrors "github.com/mrz1836/warroom/internal/errors"
	"github.com/mrz1836/warroom/internal/flock"
	"github.com/mrz1836/warroom/internal/heartbeat"
	"github.com/mrz1836/warroom/internal/modelcfg"
	"github.com/mrz1836/warroom/internal/project"
	"github.com/mrz1836/warroom/internal/skill"
	"github.com/mrz1836/warroom/internal/task"
	"github.com/mrz1836/warroom/internal/usage"
	"github.com/mrz1836/warroom/internal/workspace"
)

// shutdownTimeout bounds how long in-flight requests may run once a
// shutdown signal arrives.
const shutdownTimeout = 10 * time.Second

// Server wires the stores to the HTTP API.
type Server struct {
	cfg config.ServerConfig
	log zerolog.Logger

	tasks      *task.Store
	projects   *project.Store
	files      *workspace.Manager
	skills     *skill.Manager
	usage      *usage.Ledger
	heartbeats *heartbeat.Store
	models     *modelcfg.Config

	dataDir   string
	memoryDir string
}

// New builds a fully wired server from configuration. All document
// families share one real clock; the usage ledger and skill manager
// read through the OS filesystem.
func New(cfg *config.Config, logger zerolog.Logger) *Server {
	clk := clock.RealClock{}
	fs := afero.NewOsFs()

	tasks := task.NewStore(cfg.Paths.DataDir, clk)
	models := modelcfg.New(cfg.Paths.OpenClawDir)

	return &Server{
		cfg:      cfg.Server,
		log:      logger,
		tasks:    tasks,
		projects: project.NewStore(cfg.Paths.DataDir, tasks),
		files:    workspace.NewManager(cfg.Paths.WorkspaceDir, cfg.Paths.DataDir, clk),
		skills: skill.NewManager(
			fs,
			cfg.Paths.BundledSkillsDir,
			filepath.Join(cfg.Paths.OpenClawDir, "skills"),
			filepath.Join(cfg.Paths.WorkspaceDir, "skills"),
			models,
		),
		usage:      usage.NewLedger(fs, cfg.Paths.SessionsDir, models, clk),
		heartbeats: heartbeat.NewStore(cfg.Paths.DataDir, clk),
		models:     models,
		dataDir:    cfg.Paths.DataDir,
		memoryDir:  cfg.Paths.MemoryDir,
	}
}

// Run serves the API until ctx is canceled, then drains in-flight
// requests. The data directory is locked for the whole run so a second
// server instance fails fast with ErrLockHeld instead of corrupting
// the document families.
func (s *Server) Run(ctx context.Context) error {
	if err := os.MkdirAll(s.dataDir, constants.DirPerm); err != nil {
		return warroomerrors.Wrap(err, "failed to create data directory")
	}

	guard, err := flock.Acquire(flock.Path(s.dataDir))
	if err != nil {
		return err
	}
	defer func() {
		if err := guard.Release(); err != nil {
			s.log.Warn().Err(err).Msg("failed to release data directory lock")
		}
	}()

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("addr", addr).Msg("war room listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return warroomerrors.Wrap(err, "server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Handler returns the routed and middleware-wrapped HTTP handler.
// Exposed separately from Run for tests.
func (s *Server) Handler() http.Handler {
	return s.requestLogger(s.corsMiddleware(s.routes()))
}
