package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// PostingSvc turns business events into journal entries.
type PostingSvc interface {
	// Post translates an event through the posting rules and posts it. A source
	// pair that is already posted yields an already_synced result, not an error.
	Post(ctx context.Context, event domain.BusinessEvent, userID string) (*domain.PostingResult, error)

	// Reconcile re-submits every recorded event matching the filter.
	Reconcile(ctx context.Context, filter domain.ReconcileFilter, userID string) (*domain.ReconcileReport, error)
}
