package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// ReportingRepository reads aggregates over POSTED entries only.
type ReportingRepository interface {
	// GetAccountActivity sums debits and credits per account over the range.
	// An empty accountIDs slice covers every account with activity.
	GetAccountActivity(ctx context.Context, dateRange domain.DateRange, accountIDs []string) ([]domain.AccountActivity, error)

	// GetAccountPostings lists the posted lines of the given accounts over the range,
	// ordered by entry date, creation time and line position.
	GetAccountPostings(ctx context.Context, dateRange domain.DateRange, accountIDs []string) ([]domain.LedgerPosting, error)
}
