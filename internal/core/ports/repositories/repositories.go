package repositories

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// EventSource lists business events recorded by the business modules, for the
// reconciliation sweep.
type EventSource interface {
	ListEvents(ctx context.Context, filter domain.ReconcileFilter) ([]domain.BusinessEvent, error)
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	ReportingRepo ReportingRepository
	EventSource   EventSource
}
