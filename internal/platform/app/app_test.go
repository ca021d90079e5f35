package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
)

func TestNew_MemorySeedsChart(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{StorageBackend: config.StorageMemory, SystemUserID: "system", SweepConcurrency: 1}

	a, err := New(ctx, cfg, logger)
	require.NoError(t, err)
	defer a.Close()

	accounts, err := a.Services.Account.ListAccounts(ctx, domain.AccountFilter{})
	require.NoError(t, err)
	assert.Len(t, accounts, len(a.Rules.Accounts))

	cash, err := a.Services.Account.GetAccountByCode(ctx, "1000")
	require.NoError(t, err)
	assert.Equal(t, "system", cash.CreatedBy)
}

func TestNew_BadRulesFile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{StorageBackend: config.StorageMemory, PostingRulesFile: "does-not-exist.yaml"}

	_, err := New(context.Background(), cfg, logger)
	assert.Error(t, err)
}
