package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/erp_ledger/internal/utils"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LEDGER_STORAGE", "memory")
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "erp-ledger")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVerify_EmptyLedgerBalances(t *testing.T) {
	out, err := run(t, "verify", "--as-of", "2024-12-31")

	require.NoError(t, err)
	assert.Contains(t, out, "trial balance  debit=0.00 credit=0.00 balanced=true")
	assert.Contains(t, out, "balanced=true")
}

func TestReconcile_NoEvents(t *testing.T) {
	out, err := run(t, "reconcile", "--from", "2024-01-01", "--to", "2024-01-31")

	require.NoError(t, err)
	assert.Contains(t, out, "synced=0 already_synced=0 failed=0")
}

func TestReconcile_InvalidRange(t *testing.T) {
	_, err := run(t, "reconcile", "--from", "2024-02-01", "--to", "2024-01-01")

	assert.Error(t, err)
}

func TestMigrate_RejectsMemoryStorage(t *testing.T) {
	_, err := run(t, "migrate", "up")

	assert.ErrorContains(t, err, "postgres")
}

func TestToken_IssuesVerifiableToken(t *testing.T) {
	out, err := run(t, "token", "--user", "integration-bot")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(out), "cli-secret", "erp-ledger")
	require.NoError(t, err)
	assert.Equal(t, "integration-bot", claims.Subject)
}
