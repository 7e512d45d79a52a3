package main

import (
	"context"
	"database/sql"
	root "portal"
	"portal/internal/config"
	"portal/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded portal migrations with goose.
func migrateSchema(ctx context.Context, db *sql.DB, status bool) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err //nolint: wrapcheck
	}
	if status {
		return goose.StatusContext(ctx, db, "migrations") //nolint: wrapcheck
	}

	return goose.UpContext(ctx, db, "migrations") //nolint: wrapcheck
}

// migrateRiver brings the river tables to the latest version and returns
// the versions before and after.
func migrateRiver(ctx context.Context, db *sql.DB, status bool) (int, int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, err //nolint: wrapcheck
	}

	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, err //nolint: wrapcheck
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if status || latestVersion <= currentVersion {
		return currentVersion, currentVersion, nil
	}

	if _, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	}); err != nil {
		return currentVersion, currentVersion, err //nolint: wrapcheck
	}

	return currentVersion, latestVersion, nil
}

// migrateCommand constructs the 'migrate' subcommand that applies portal and
// river migrations to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			status, _ := cmd.Flags().GetBool("status")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db, _ := strg.DB.(*sql.DB)

			if err := migrateSchema(ctx, db, status); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			from, to, err := migrateRiver(ctx, db, status)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
			}
			logger.Info(ctx, "river queue tables migrated", zap.Int("from", from), zap.Int("to", to))
		},
	}

	cmd.Flags().Bool("status", false, "Print migration status without applying anything")

	return cmd
}
