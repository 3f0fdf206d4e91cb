package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"budgetcore/internal/config"
	"budgetcore/internal/database"
	"budgetcore/internal/logger"
	"budgetcore/internal/models"
	"budgetcore/internal/services"
)

// newRootCmd builds the operator CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "budgetctl",
		Short:         "Operator commands for the budget core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newMigrateCmd(), newSweepCmd())
	return rootCmd
}

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage PostgreSQL schema migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return fmt.Errorf("migration up failed: %w", err)
				}
				logger.Get().Info("Migrations applied successfully")
				return nil
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down [N]",
		Short: "Roll back the last N migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}
			return withMigrator(func(m *migrate.Migrate) error {
				if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return fmt.Errorf("migration down failed: %w", err)
				}
				logger.Get().Infof("Rolled back %d migration(s)", steps)
				return nil
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if err != nil {
					return fmt.Errorf("failed to get version: %w", err)
				}
				logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)
				return nil
			})
		},
	})

	return migrateCmd
}

// newSweepCmd expires stale pending recommendations and purges expired ones
// past the retention window. Meant to run from cron.
func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire stale recommendations and purge old expired ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appConfig, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			dbConfig, err := database.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load database configuration: %w", err)
			}
			dbManager, err := database.NewManager(dbConfig)
			if err != nil {
				return fmt.Errorf("failed to create database manager: %w", err)
			}
			defer dbManager.Close()

			db := dbManager.DB()
			periods := services.NewPeriodService(db)
			budgets := services.NewBudgetService(db, services.NewAssociationService(db), periods, models.EnforcementLevel(appConfig.DefaultEnforcementLevel))
			recommendations := services.NewRecommendationService(db, budgets, appConfig.RecommendationTTL, appConfig.RecommendationRetention)
			expired, err := recommendations.ExpireStale()
			if err != nil {
				return err
			}
			purged, err := recommendations.PurgeExpired()
			if err != nil {
				return err
			}
			logger.Get().Infow("recommendation sweep finished", "expired", expired, "purged", purged)
			return nil
		},
	}
}

// withMigrator opens a migrator against the configured PostgreSQL database
// and closes it once fn returns.
func withMigrator(fn func(m *migrate.Migrate) error) error {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	if dbConfig.Driver != database.DriverPostgres {
		return fmt.Errorf("migrations require DB_DRIVER=postgres, got %q", dbConfig.Driver)
	}

	m, err := database.NewMigrator(dbConfig.MigrateURL())
	if err != nil {
		return err
	}
	defer database.CloseMigrator(m)
	return fn(m)
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps < 1 {
		return 0, fmt.Errorf("invalid step count %q", args[0])
	}
	return steps, nil
}
