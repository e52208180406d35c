// Command gridiron builds season tendency artifacts and serves the
// read-only query API.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldgate/gridiron/internal/adapters/http/api"
	"github.com/fieldgate/gridiron/internal/adapters/repository"
	"github.com/fieldgate/gridiron/internal/adapters/source"
	service "github.com/fieldgate/gridiron/internal/app"
	"github.com/fieldgate/gridiron/internal/config"
	"github.com/fieldgate/gridiron/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second

	summaryRows = 5 // teams shown at each end of the aggression table
)

var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridiron",
		Short:         "Team tendency analytics from season play-by-play data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			var err error
			cfg, err = config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := logger.SetLevelString(cfg.LogLevel); err != nil {
				logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
					logger.String("log_level", cfg.LogLevel))
				_ = logger.SetLevelString("info")
			}
			return nil
		},
	}
	root.AddCommand(newBuildCmd(), newServeCmd())
	return root
}

// signalContext returns a root context canceled on SIGINT/SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func newService(ctx context.Context) (*service.Service, *repository.SQLiteStore, error) {
	store, err := repository.NewSQLiteStore(ctx, repository.WithPath(cfg.ArtifactDBPath))
	if err != nil {
		return nil, nil, err
	}
	svc := service.New(
		service.WithStore(store),
		service.WithLoader(source.NewCSVReader(source.WithPath(cfg.SnapshotPath))),
		service.WithSeason(cfg.Season),
		service.WithStreamBuffer(cfg.StreamBuffer),
		service.WithLogger(logger.Get()),
	)
	return svc, store, nil
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Run the tendency pipeline over the season snapshot and persist the artifact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()

			svc, store, err := newService(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck // best-effort close on exit

			artifact, err := svc.Build(ctx)
			if err != nil {
				return err
			}
			printBuildSummary(cmd, artifact)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the query API from the latest published artifact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			log := logger.Get()

			svc, store, err := newService(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck // best-effort close on exit

			if err := svc.LoadLatest(ctx); err != nil {
				if !cfg.BuildOnStart {
					return fmt.Errorf("no artifact to serve: %w", err)
				}
				log.Warn(ctx, "no persisted artifact; building from snapshot",
					logger.String("snapshot", cfg.SnapshotPath))
				if _, err := svc.Build(ctx); err != nil {
					return err
				}
			}

			mux := http.NewServeMux()
			api.NewServer(svc, svc).Register(ctx, mux)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("HTTP server failed: %w", err)
			case <-ctx.Done():
			}
			log.Info(ctx, "shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error(ctx, "server shutdown failed", logger.Error(err))
			}
			log.Info(ctx, "server stopped")
			return nil
		},
	}
}
