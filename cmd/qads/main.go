package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/qads-development/QADS-Backend/internal/handler"
	"github.com/qads-development/QADS-Backend/internal/server"
	"github.com/qads-development/QADS-Backend/internal/session"
	"github.com/qads-development/QADS-Backend/internal/store"
	"github.com/qads-development/QADS-Backend/pkg/config"
	"github.com/qads-development/QADS-Backend/pkg/database"
	"github.com/qads-development/QADS-Backend/pkg/logger"
	"github.com/qads-development/QADS-Backend/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "qads"

func main() {
	rootCmd := &cobra.Command{
		Use:   "qads",
		Short: "QADS business backend",
		Long:  "QADS serves the multi-tenant business API: onboarding, login, employees, tasks, events and the dashboard.",
		// Running without a subcommand starts the server
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a consistent copy of the SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			return withStore(cmd.Context(), func(ctx context.Context, st *store.Store) error {
				return st.Backup(ctx, out)
			})
		},
	}
	backupCmd.Flags().String("out", "", "Backup file to create (must not exist)")

	vacuumCmd := &cobra.Command{
		Use:   "vacuum",
		Short: "Reclaim free space in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, st *store.Store) error {
				return st.Vacuum(ctx)
			})
		},
	}

	rootCmd.AddCommand(serveCmd, backupCmd, vacuumCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load(serviceName)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()
	defer log.Sync()
	log.Info("Starting QADS backend...", cfg.LogConfig()...)

	prometheus.InitMetrics(cfg.Metrics.Prefix)

	st, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer st.Close()

	sessions := session.NewRegistry(cfg.Session.SigningKey)
	h := handler.New(st, sessions)
	e := server.New(h, sessions, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, e, cfg.Server, log); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		return err
	}
	log.Info("Server stopped")
	return nil
}

// withStore runs a maintenance operation against the configured database
func withStore(ctx context.Context, fn func(context.Context, *store.Store) error) error {
	cfg, err := config.Load(serviceName)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()
	defer log.Sync()

	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(ctx, st)
}

func openStore(cfg *config.Config, log *zap.Logger) (*store.Store, error) {
	db, err := database.Open(&cfg.DB, log)
	if err != nil {
		return nil, err
	}

	st, err := store.New(db, log)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	return st, nil
}
