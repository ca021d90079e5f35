package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryNumber: nullable(d.EntryNumber),
		EntryDate:   domain.TruncateDate(d.EntryDate),
		DueDate:     d.DueDate,
		Reference:   d.Reference,
		Memo:        d.Memo,
		Status:      models.JournalStatus(d.Status),
		SourceType:  d.SourceType,
		SourceID:    d.SourceID,
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		VoidReason:  nullable(d.VoidReason),
		PostedAt:    d.PostedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry without lines
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryNumber: deref(m.EntryNumber),
		EntryDate:   domain.TruncateDate(m.EntryDate),
		DueDate:     m.DueDate,
		Reference:   m.Reference,
		Memo:        m.Memo,
		Status:      domain.JournalStatus(m.Status),
		SourceType:  m.SourceType,
		SourceID:    m.SourceID,
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		VoidReason:  deref(m.VoidReason),
		PostedAt:    m.PostedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Description: d.Description,
		Side:        models.Side(d.Side),
		Amount:      d.Amount,
		Position:    d.Position,
		DocumentRef: nullable(d.DocumentRef),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Description: m.Description,
		Side:        domain.Side(m.Side),
		Amount:      m.Amount,
		Position:    m.Position,
		DocumentRef: deref(m.DocumentRef),
	}
}
