package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

func TestDefaultPostingRules(t *testing.T) {
	rules := DefaultPostingRules()

	require.Len(t, rules.Accounts, 9)
	for _, kind := range []string{
		domain.EventPurchaseReceived, domain.EventInvoiceIssued, domain.EventPaymentReceived,
		domain.EventExpenseApproved, domain.EventBillPaid, domain.EventCapitalContributed,
	} {
		rule, ok := rules.Rule(kind)
		require.True(t, ok, kind)
		_, ok = rules.RoleCode(rule.Debit)
		assert.True(t, ok, "debit role of %s", kind)
		_, ok = rules.RoleCode(rule.Credit)
		assert.True(t, ok, "credit role of %s", kind)
	}

	invoice, _ := rules.Rule(domain.EventInvoiceIssued)
	require.NotNil(t, invoice.Tax)
	assert.Equal(t, domain.Credit, invoice.Tax.Side)

	code, ok := rules.RoleCode(RoleAccountsReceivable)
	assert.True(t, ok)
	assert.Equal(t, "1100", code)
}

func TestParsePostingRules_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "rules: [oops"},
		{"bad account type", "accounts:\n  - {code: \"1\", name: A, type: STOCK}\n"},
		{"missing credit role", "rules:\n  sale:\n    debit: cash\n"},
		{"bad tax side", "rules:\n  sale:\n    debit: cash\n    credit: revenue\n    tax: {role: vat, side: BOTH}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePostingRules([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadPostingRules_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
accounts:
  - {code: "1000", name: Bank, type: ASSET}
  - {code: "1010", name: Till, type: ASSET, parent: "1000"}
roles:
  cash: "1010"
rules:
  cash_sale:
    debit: cash
    credit: revenue
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rules, err := LoadPostingRules(path)
	require.NoError(t, err)
	assert.Equal(t, "1000", rules.Accounts[1].ParentCode)
	_, ok := rules.RoleCode("revenue")
	assert.False(t, ok)

	_, err = LoadPostingRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	defaults, err := LoadPostingRules("")
	require.NoError(t, err)
	assert.Len(t, defaults.Rules, 6)
}

func TestLoadConfig_LedgerSettings(t *testing.T) {
	t.Setenv("LEDGER_STORAGE", "MEMORY")
	t.Setenv("LEDGER_CASH_ACCOUNT_CODES", "1000, 1010,")
	t.Setenv("LEDGER_SWEEP_CONCURRENCY", "0")
	t.Setenv("LEDGER_BLOCK_NONZERO_DEACTIVATION", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, []string{"1000", "1010"}, cfg.CashAccountCodes)
	assert.Equal(t, 1, cfg.SweepConcurrency)
	assert.False(t, cfg.BlockNonZeroDeactivation)
	assert.Equal(t, "100-M", cfg.RateLimit)
}
