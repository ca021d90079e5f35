package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountType_NormalSide(t *testing.T) {
	tests := []struct {
		accountType domain.AccountType
		want        domain.Side
	}{
		{domain.Asset, domain.Debit},
		{domain.Expense, domain.Debit},
		{domain.Liability, domain.Credit},
		{domain.Equity, domain.Credit},
		{domain.Revenue, domain.Credit},
	}
	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.accountType.NormalSide())
			assert.True(t, tt.accountType.IsValid())
		})
	}
	assert.False(t, domain.AccountType("INCOME").IsValid())
}

func TestJournalLine_Sides(t *testing.T) {
	amount := decimal.RequireFromString("125.50")

	debit := domain.DebitLine("acc-1", amount, "stock")
	assert.True(t, debit.Debit().Equal(amount))
	assert.True(t, debit.Credit().IsZero())

	credit := debit.Reversed()
	assert.Equal(t, domain.Credit, credit.Side)
	assert.True(t, credit.Credit().Equal(amount))
	assert.True(t, credit.Debit().IsZero())
	assert.Equal(t, "acc-1", credit.AccountID)
}

func TestJournalLine_SignedFor(t *testing.T) {
	line := domain.CreditLine("acc-1", decimal.NewFromInt(40), "")

	assert.True(t, line.SignedFor(domain.Revenue).Equal(decimal.NewFromInt(40)))
	assert.True(t, line.SignedFor(domain.Asset).Equal(decimal.NewFromInt(-40)))
}

func TestJournalEntry_LineTotals(t *testing.T) {
	entry := domain.JournalEntry{
		Lines: []domain.JournalLine{
			domain.DebitLine("ar", decimal.RequireFromString("570"), ""),
			domain.CreditLine("rev", decimal.RequireFromString("500"), ""),
			domain.CreditLine("tax", decimal.RequireFromString("70"), ""),
		},
	}
	debit, credit := entry.LineTotals()
	assert.True(t, debit.Equal(decimal.NewFromInt(570)))
	assert.True(t, credit.Equal(decimal.NewFromInt(570)))
}

func TestFormatEntryNumber(t *testing.T) {
	assert.Equal(t, "JE-2024-0007", domain.FormatEntryNumber(2024, 7))
	assert.Equal(t, "JE-2025-12345", domain.FormatEntryNumber(2025, 12345))
}

func TestDateRange_Contains(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }

	r := domain.DateRange{From: day(10), To: day(20)}
	assert.True(t, r.Contains(day(10)))
	assert.True(t, r.Contains(day(20).Add(23*time.Hour)))
	assert.False(t, r.Contains(day(9)))
	assert.False(t, r.Contains(day(21)))

	sinceInception := domain.DateRange{To: day(20)}
	assert.True(t, sinceInception.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBusinessEvent_Tax(t *testing.T) {
	rate := decimal.RequireFromString("0.14")
	explicit := decimal.RequireFromString("12.345")

	tests := []struct {
		name   string
		event  domain.BusinessEvent
		want   string
		wantOK bool
	}{
		{"no tax", domain.BusinessEvent{Amount: decimal.NewFromInt(100)}, "0", false},
		{"rate", domain.BusinessEvent{Amount: decimal.NewFromInt(500), TaxRate: &rate}, "70", true},
		{"explicit rounds to cents", domain.BusinessEvent{Amount: decimal.NewFromInt(100), TaxAmount: &explicit}, "12.35", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.Tax()
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestBucketFor(t *testing.T) {
	assert.Equal(t, domain.Bucket0To30, domain.BucketFor(-5))
	assert.Equal(t, domain.Bucket0To30, domain.BucketFor(30))
	assert.Equal(t, domain.Bucket31To60, domain.BucketFor(31))
	assert.Equal(t, domain.Bucket61To90, domain.BucketFor(90))
	assert.Equal(t, domain.BucketOver90, domain.BucketFor(91))
}
