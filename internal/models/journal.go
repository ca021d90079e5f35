package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	Void   JournalStatus = "VOID"
)

// Side is the DEBIT or CREDIT column of a line.
type Side string

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID     string          `db:"entry_id"`
	EntryNumber *string         `db:"entry_number"` // Null until posted
	EntryDate   time.Time       `db:"entry_date"`
	DueDate     *time.Time      `db:"due_date"`
	Reference   string          `db:"reference"`
	Memo        string          `db:"memo"`
	Status      JournalStatus   `db:"status"`
	SourceType  string          `db:"source_type"`
	SourceID    string          `db:"source_id"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	VoidReason  *string         `db:"void_reason"`
	PostedAt    *time.Time      `db:"posted_at"`
	AuditFields
}

// JournalLine is a row of the journal_lines table.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Description string          `db:"description"`
	Side        Side            `db:"side"`
	Amount      decimal.Decimal `db:"amount"` // Strictly positive
	Position    int             `db:"position"`
	DocumentRef *string         `db:"document_ref"`
}
