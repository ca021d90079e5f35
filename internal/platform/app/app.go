// Package app wires storage, posting rules and services from configuration.
// Both the HTTP server and the ledgerctl CLI start from here.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/erp_ledger/migrations"
	"github.com/SscSPs/erp_ledger/pkg/database"
)

// App holds the running ledger.
type App struct {
	Services *portssvc.ServiceContainer
	Rules    *config.PostingRules

	pool *pgxpool.Pool
}

// New opens the configured storage, applies migrations when enabled, loads the
// posting rules and seeds the chart of accounts they declare.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	rules, err := config.LoadPostingRules(cfg.PostingRulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load posting rules: %w", err)
	}

	a := &App{Rules: rules}

	var repos portsrepo.RepositoryProvider
	switch cfg.StorageBackend {
	case config.StorageMemory:
		repos = memory.New().Provider()
	default:
		if cfg.RunMigrations {
			if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, database.MigrateUp, logger); err != nil {
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}
		a.pool, err = database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		repos = pgsql.NewRepositoryProvider(a.pool)
	}
	logger.Info("Storage ready", slog.String("backend", cfg.StorageBackend))

	a.Services = services.NewContainer(repos, services.ContainerOptions{
		Rules:                    rules,
		CashAccountCodes:         cfg.CashAccountCodes,
		BlockNonZeroDeactivation: cfg.BlockNonZeroDeactivation,
		SweepConcurrency:         cfg.SweepConcurrency,
	})

	created, err := a.Services.Account.EnsureAccounts(ctx, rules.Accounts, cfg.SystemUserID)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to seed chart of accounts: %w", err)
	}
	if created > 0 {
		logger.Info("Seeded chart of accounts", slog.Int("created", created))
	}
	return a, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	database.ClosePgxPool(a.pool)
}
