package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
// Transitions: DRAFT -> POSTED -> VOID, or DRAFT -> VOID. Nothing re-enters DRAFT.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	Void   JournalStatus = "VOID"
)

// Well-known source types.
const (
	SourceTypeManual   = "manual"
	SourceTypeReversal = "reversal"
)

// JournalEntry is a dated, balanced set of journal lines.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	EntryNumber string          `json:"entryNumber"` // Assigned when posted, e.g. JE-2024-0007
	EntryDate   time.Time       `json:"entryDate"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Reference   string          `json:"reference"`
	Memo        string          `json:"memo"`
	Status      JournalStatus   `json:"status"`
	SourceType  string          `json:"sourceType"`
	SourceID    string          `json:"sourceID"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	VoidReason  string          `json:"voidReason,omitempty"`
	PostedAt    *time.Time      `json:"postedAt,omitempty"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"`
}

// LineTotals sums the debit and credit sides of the entry's lines.
func (e JournalEntry) LineTotals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit())
		credit = credit.Add(l.Credit())
	}
	return debit, credit
}

// IsReversal reports whether the entry reverses another entry.
func (e JournalEntry) IsReversal() bool {
	return e.SourceType == SourceTypeReversal
}

// FormatEntryNumber renders the per-year sequence value as an entry number.
func FormatEntryNumber(year int, seq int64) string {
	return fmt.Sprintf("JE-%d-%04d", year, seq)
}

// EntryFilter narrows ListEntries.
type EntryFilter struct {
	DateRange  DateRange
	SourceType string
	Status     JournalStatus
	Limit      int
	NextToken  *string
}

// Matches reports whether e passes the non-paging part of the filter.
func (f EntryFilter) Matches(e JournalEntry) bool {
	if !f.DateRange.Contains(e.EntryDate) {
		return false
	}
	if f.SourceType != "" && e.SourceType != f.SourceType {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}
