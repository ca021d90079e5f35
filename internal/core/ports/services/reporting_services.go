package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance lists per-account debit and credit totals over a range.
	TrialBalance(ctx context.Context, dateRange domain.DateRange, opts domain.TrialBalanceOptions) (*domain.TrialBalanceReport, error)

	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, dateRange domain.DateRange) (*domain.ProfitAndLossReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// CashFlow generates a direct-method cash flow statement for a period.
	CashFlow(ctx context.Context, dateRange domain.DateRange) (*domain.CashFlowReport, error)

	// GeneralLedger lists an account's postings with a running balance.
	GeneralLedger(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.GeneralLedgerReport, error)

	// AgingAnalysis buckets the open receivables or payables as of a date.
	AgingAnalysis(ctx context.Context, kind domain.AgingKind, asOf time.Time) (*domain.AgingReport, error)
}
