package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntry retrieves an entry with its lines.
	GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// GetEntryBySource retrieves the non-void entry posted for a source pair.
	GetEntryBySource(ctx context.Context, sourceType, sourceID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries.
	ListEntries(ctx context.Context, filter domain.EntryFilter) (*dto.ListEntriesResponse, error)
}

// JournalWriterSvc defines the journal entry lifecycle
type JournalWriterSvc interface {
	// PostEntry validates and atomically posts a balanced entry.
	PostEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error)

	// SaveDraft stores an entry in DRAFT status; balance is checked only when posting.
	SaveDraft(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostDraft validates a draft and moves it to POSTED.
	PostDraft(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// VoidEntry moves an entry to VOID. Rows are retained.
	VoidEntry(ctx context.Context, entryID string, reason string, userID string) (*domain.JournalEntry, error)

	// ReverseEntry posts a new entry with every line's side swapped.
	ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
