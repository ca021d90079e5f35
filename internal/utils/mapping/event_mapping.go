package mapping

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/models"
)

// ToDomainBusinessEvent converts an outbox row to a domain BusinessEvent
func ToDomainBusinessEvent(m models.BusinessEvent) domain.BusinessEvent {
	return domain.BusinessEvent{
		Kind:        m.Kind,
		Amount:      m.Amount,
		TaxAmount:   m.TaxAmount,
		TaxRate:     m.TaxRate,
		Date:        domain.TruncateDate(m.EventDate),
		DueDate:     m.DueDate,
		SourceType:  m.SourceType,
		SourceID:    m.SourceID,
		DocumentRef: deref(m.DocumentRef),
		Reference:   deref(m.Reference),
		Memo:        deref(m.Memo),
		Metadata:    m.Metadata,
	}
}
