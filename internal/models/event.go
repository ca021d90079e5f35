package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessEvent is a row of the business_events outbox written by the business modules.
type BusinessEvent struct {
	EventID     int64             `db:"event_id"`
	Kind        string            `db:"kind"`
	Amount      decimal.Decimal   `db:"amount"`
	TaxAmount   *decimal.Decimal  `db:"tax_amount"`
	TaxRate     *decimal.Decimal  `db:"tax_rate"`
	EventDate   time.Time         `db:"event_date"`
	DueDate     *time.Time        `db:"due_date"`
	SourceType  string            `db:"source_type"`
	SourceID    string            `db:"source_id"`
	DocumentRef *string           `db:"document_ref"`
	Reference   *string           `db:"reference"`
	Memo        *string           `db:"memo"`
	Metadata    map[string]string `db:"metadata"` // JSONB
	CreatedAt   time.Time         `db:"created_at"`
}
