package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blog-service/internal/infrastructure/config"
	"blog-service/internal/infrastructure/outbound/repository/postgres"
)

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the postgres schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(func(m *postgres.Migrator) error { return m.Up() })
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(func(m *postgres.Migrator) error { return m.Down() })
	},
}

func runMigration(step func(m *postgres.Migrator) error) error {
	cfg, log := setup()
	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("migrations need the postgres storage driver, got %q", cfg.Storage.Driver)
	}

	migrator, err := postgres.NewMigrator(cfg.Database.DSN(), log)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	return step(migrator)
}
