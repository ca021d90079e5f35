package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

func TestAccountMapping_ParentNullability(t *testing.T) {
	top := domain.Account{AccountID: "a1", Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	m := ToModelAccount(top)
	assert.Nil(t, m.ParentAccountID)
	assert.Equal(t, top, ToDomainAccount(m))

	child := top
	child.ParentAccountID = "root"
	m = ToModelAccount(child)
	if assert.NotNil(t, m.ParentAccountID) {
		assert.Equal(t, "root", *m.ParentAccountID)
	}
}

func TestJournalMapping_DraftHasNoNumber(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	entry := domain.JournalEntry{
		EntryID:     "e1",
		EntryDate:   now,
		Status:      domain.Draft,
		SourceType:  domain.SourceTypeManual,
		SourceID:    "e1",
		TotalDebit:  decimal.NewFromInt(10),
		TotalCredit: decimal.NewFromInt(10),
		AuditFields: domain.NewAuditFields("u1", now),
	}

	m := ToModelJournalEntry(entry)
	assert.Nil(t, m.EntryNumber)
	assert.Nil(t, m.VoidReason)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), m.EntryDate)

	back := ToDomainJournalEntry(m)
	assert.Empty(t, back.EntryNumber)
	assert.Equal(t, domain.Draft, back.Status)
}

func TestJournalLineMapping_DocumentRef(t *testing.T) {
	line := domain.JournalLine{LineID: "l1", EntryID: "e1", AccountID: "a1", Side: domain.Debit, Amount: decimal.NewFromInt(5), Position: 1, DocumentRef: "INV-1"}
	m := ToModelJournalLine(line)
	if assert.NotNil(t, m.DocumentRef) {
		assert.Equal(t, "INV-1", *m.DocumentRef)
	}
	assert.Equal(t, line, ToDomainJournalLine(m))
}
