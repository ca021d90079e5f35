package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event kinds emitted by the business modules.
const (
	EventPurchaseReceived   = "purchase_received"
	EventInvoiceIssued      = "invoice_issued"
	EventPaymentReceived    = "payment_received"
	EventExpenseApproved    = "expense_approved"
	EventBillPaid           = "bill_paid"
	EventCapitalContributed = "capital_contributed"
)

// BusinessEvent is a typed record of something that has a financial effect.
// Amount is the net amount; tax is either given directly or derived from TaxRate.
type BusinessEvent struct {
	Kind        string            `json:"kind"`
	Amount      decimal.Decimal   `json:"amount"`
	TaxAmount   *decimal.Decimal  `json:"taxAmount,omitempty"`
	TaxRate     *decimal.Decimal  `json:"taxRate,omitempty"` // Fraction, 0.14 for 14%
	Date        time.Time         `json:"date"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	SourceType  string            `json:"sourceType"`
	SourceID    string            `json:"sourceID"`
	DocumentRef string            `json:"documentRef,omitempty"`
	Reference   string            `json:"reference,omitempty"`
	Memo        string            `json:"memo,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Tax resolves the tax amount of the event, rounded to cents. ok is false when
// the event carries no tax.
func (e BusinessEvent) Tax() (amount decimal.Decimal, ok bool) {
	switch {
	case e.TaxAmount != nil:
		amount = e.TaxAmount.Round(2)
	case e.TaxRate != nil:
		amount = e.Amount.Mul(*e.TaxRate).Round(2)
	default:
		return decimal.Zero, false
	}
	return amount, amount.IsPositive()
}

// PostingStatus is the outcome of posting one business event.
type PostingStatus string

const (
	StatusSynced        PostingStatus = "synced"
	StatusAlreadySynced PostingStatus = "already_synced"
	StatusFailed        PostingStatus = "failed"
)

// PostingResult reports what happened to one event.
type PostingResult struct {
	SourceType string        `json:"sourceType"`
	SourceID   string        `json:"sourceID"`
	Status     PostingStatus `json:"status"`
	Entry      *JournalEntry `json:"entry,omitempty"`
	Error      string        `json:"error,omitempty"`
	ErrorKind  string        `json:"errorKind,omitempty"`
}

// ReconcileFilter selects the events covered by a sweep.
type ReconcileFilter struct {
	DateRange  DateRange
	SourceType string
}

// ReconcileReport summarises a sweep; one failing event never aborts the batch.
type ReconcileReport struct {
	Results       []PostingResult `json:"results"`
	Synced        int             `json:"synced"`
	AlreadySynced int             `json:"alreadySynced"`
	Failed        int             `json:"failed"`
}
