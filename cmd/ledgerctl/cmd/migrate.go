package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/migrations"
	"github.com/SscSPs/erp_ledger/pkg/database"
)

// migrateCmd applies or rolls back the embedded schema migrations.
var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Long:      "Apply every pending migration (up) or roll back the latest one (down) against PGSQL_URL.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StorageBackend != config.StoragePostgres {
			return errors.New("migrations only apply to the postgres storage backend")
		}
		return database.RunMigrations(cfg.DatabaseURL, migrations.FS, database.MigrationDirection(args[0]), slog.Default())
	},
}
