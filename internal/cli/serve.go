package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "adverse/internal/adapter/http"
	"adverse/internal/adapter/postgres"
	"adverse/internal/adapter/usecase"
	"adverse/internal/config"
	"adverse/internal/db"
)

// serveCmd loads configuration, optionally runs database migrations,
// initializes the connection pool and repositories, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts the
// server down.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AdVerse HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		var logger *slog.Logger
		{
			var handler slog.Handler
			level := cfg.Log.SlogLevel()
			switch cfg.Log.SlogFormat() {
			case "json":
				handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
			default:
				handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
			}
			logger = slog.New(handler)
		}

		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()

		repo := postgres.NewGridRepository(pool)
		svc := usecase.NewGridUseCase(repo, cfg.Grid.Size, cfg.Grid.GenesisSize)

		handler := httpadapter.NewHandler(svc, logger)
		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler: handler.Router(),
		}

		go func() {
			logger.Info("server listening",
				slog.Int("port", int(cfg.HTTP.Port)),
				slog.Int("grid_size", cfg.Grid.Size))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", slog.Any("error", err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		} else {
			logger.Info("server gracefully stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
