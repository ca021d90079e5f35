package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entries
type JournalReader interface {
	// FindEntryByID retrieves an entry together with its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntryBySource retrieves the non-void entry posted for a source pair.
	FindEntryBySource(ctx context.Context, sourceType, sourceID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entry headers matching the filter, newest first, using token-based pagination.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries. Every method is atomic.
type JournalWriter interface {
	// SavePostedEntry re-checks that every referenced account is active, assigns the
	// entry number and inserts the entry with its lines. A non-void entry with the
	// same source pair yields apperrors.ErrDuplicateSource.
	SavePostedEntry(ctx context.Context, entry *domain.JournalEntry) error

	// SaveDraftEntry inserts an entry in DRAFT status without a number.
	SaveDraftEntry(ctx context.Context, entry domain.JournalEntry) error

	// PostDraftEntry moves a DRAFT entry to POSTED, assigning its number.
	PostDraftEntry(ctx context.Context, entry *domain.JournalEntry) error

	// VoidEntry moves a DRAFT or POSTED entry without an active reversal to VOID.
	VoidEntry(ctx context.Context, entryID, reason, userID string, now time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
