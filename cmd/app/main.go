package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (defaults to $CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var rootCmd = &cobra.Command{
	Use:           "dispatch",
	Short:         "Dispatch plans orders, tasks and routes for the sanitation crews",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(c *cobra.Command, _ []string) error {
		return withApp(c.Context(), func(ctx context.Context, app *cmd.CompositionRoot, cfg cmd.Config, logger *zap.Logger) error {
			e, err := httpin.NewEcho(httpin.NewServer(app.HTTPHandlers(), logger), logger)
			if err != nil {
				return err
			}
			if cfg.GCSBucket == "" {
				e.Static("/photos", cfg.LocalPhotoDir)
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("http server listening", zap.String("port", cfg.HTTPPort))
				errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			logger.Info("shutting down")
			return e.Shutdown(shutdownCtx)
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer syncLogger(logger)

		db, err := cmd.OpenDatabase(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		logger.Info("schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the service packets, roles and the Arad test driver",
	RunE: func(c *cobra.Command, _ []string) error {
		return withApp(c.Context(), func(ctx context.Context, app *cmd.CompositionRoot, _ cmd.Config, _ *zap.Logger) error {
			return app.Seed(ctx)
		})
	},
}

func setup() (cmd.Config, *zap.Logger, error) {
	cfg, err := cmd.LoadConfig(configFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	return cfg, logger, nil
}

// withApp builds the composition root around run and releases the
// adapters afterwards.
func withApp(
	ctx context.Context,
	run func(ctx context.Context, app *cmd.CompositionRoot, cfg cmd.Config, logger *zap.Logger) error,
) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	adapters, release, err := cmd.BuildAdapters(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer release()

	app := cmd.NewCompositionRoot(cfg, db, adapters, logger)
	return run(ctx, &app, cfg, logger)
}

func syncLogger(logger *zap.Logger) {
	// stdout/stderr cannot be synced on some platforms; ignore
	_ = logger.Sync()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "dispatch:", err)
		os.Exit(1)
	}
}
