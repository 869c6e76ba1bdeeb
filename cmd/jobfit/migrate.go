package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"jobfit/internal/config"
	"jobfit/internal/database/migration"
	dbpostgres "jobfit/internal/database/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations to Postgres",
	Long:  "Apply pending schema migrations. Connection settings come from the DB_* environment variables; --dir overrides the embedded migration set.",
	RunE:  runMigrate,
}

var migrateDir string

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Directory of V<n>__<name>.sql files (defaults to the embedded set)")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.App.LogLevel}))

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	r := migration.Runner{Dir: migrateDir, Logger: logger}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("migrations up to date")
	return nil
}
