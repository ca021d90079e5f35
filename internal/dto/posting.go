package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostEventRequest is a business event submitted for auto-posting.
type PostEventRequest struct {
	Kind        string            `json:"kind" binding:"required"`
	Amount      decimal.Decimal   `json:"amount" binding:"required,dpositive"`
	TaxAmount   *decimal.Decimal  `json:"taxAmount"`
	TaxRate     *decimal.Decimal  `json:"taxRate"`
	Date        time.Time         `json:"date" binding:"required"`
	DueDate     *time.Time        `json:"dueDate"`
	SourceType  string            `json:"sourceType" binding:"required"`
	SourceID    string            `json:"sourceID" binding:"required"`
	DocumentRef string            `json:"documentRef"`
	Reference   string            `json:"reference"`
	Memo        string            `json:"memo"`
	Metadata    map[string]string `json:"metadata"`
}

// ToBusinessEvent converts the request to a domain event.
func (r PostEventRequest) ToBusinessEvent() domain.BusinessEvent {
	return domain.BusinessEvent{
		Kind:        r.Kind,
		Amount:      r.Amount,
		TaxAmount:   r.TaxAmount,
		TaxRate:     r.TaxRate,
		Date:        r.Date,
		DueDate:     r.DueDate,
		SourceType:  r.SourceType,
		SourceID:    r.SourceID,
		DocumentRef: r.DocumentRef,
		Reference:   r.Reference,
		Memo:        r.Memo,
		Metadata:    r.Metadata,
	}
}

// ReconcileRequest selects the events re-submitted by a sweep.
type ReconcileRequest struct {
	From       string `json:"from"` // YYYY-MM-DD, empty means since inception
	To         string `json:"to"`   // YYYY-MM-DD, empty means today
	SourceType string `json:"sourceType"`
}

// PostingResultResponse reports the outcome of posting one event.
type PostingResultResponse struct {
	SourceType string               `json:"sourceType"`
	SourceID   string               `json:"sourceID"`
	Status     domain.PostingStatus `json:"status"`
	Entry      *EntryResponse       `json:"entry,omitempty"`
	Error      string               `json:"error,omitempty"`
	ErrorKind  string               `json:"errorKind,omitempty"`
}

// ReconcileResponse summarises a sweep.
type ReconcileResponse struct {
	Results       []PostingResultResponse `json:"results"`
	Synced        int                     `json:"synced"`
	AlreadySynced int                     `json:"alreadySynced"`
	Failed        int                     `json:"failed"`
}

// ToPostingResultResponse converts a domain posting result.
func ToPostingResultResponse(r *domain.PostingResult) PostingResultResponse {
	resp := PostingResultResponse{
		SourceType: r.SourceType,
		SourceID:   r.SourceID,
		Status:     r.Status,
		Error:      r.Error,
		ErrorKind:  r.ErrorKind,
	}
	if r.Entry != nil {
		entry := ToEntryResponse(r.Entry)
		resp.Entry = &entry
	}
	return resp
}

// ToReconcileResponse converts a sweep report.
func ToReconcileResponse(r *domain.ReconcileReport) ReconcileResponse {
	resp := ReconcileResponse{
		Results:       make([]PostingResultResponse, len(r.Results)),
		Synced:        r.Synced,
		AlreadySynced: r.AlreadySynced,
		Failed:        r.Failed,
	}
	for i := range r.Results {
		resp.Results[i] = ToPostingResultResponse(&r.Results[i])
	}
	return resp
}
