package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineRequest is one line of a journal entry request.
type CreateLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Side        domain.Side     `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dpositive"`
	Description string          `json:"description"`
	DocumentRef string          `json:"documentRef"`
}

// CreateEntryRequest defines the data needed to post or draft a journal entry.
// SourceType defaults to "manual" and SourceID to the new entry's ID.
type CreateEntryRequest struct {
	Date       time.Time           `json:"date" binding:"required"`
	DueDate    *time.Time          `json:"dueDate"`
	Reference  string              `json:"reference"`
	Memo       string              `json:"memo"`
	SourceType string              `json:"sourceType"`
	SourceID   string              `json:"sourceID"`
	Lines      []CreateLineRequest `json:"lines" binding:"required,dive"`
}

// VoidEntryRequest carries the reason for voiding an entry.
type VoidEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListEntriesParams defines the query parameters for listing entries.
type ListEntriesParams struct {
	From       string  `form:"from"` // YYYY-MM-DD
	To         string  `form:"to"`   // YYYY-MM-DD
	SourceType string  `form:"sourceType"`
	Status     string  `form:"status" binding:"omitempty,oneof=DRAFT POSTED VOID"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken  *string `form:"nextToken"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Side        domain.Side     `json:"side"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	DocumentRef string          `json:"documentRef,omitempty"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string               `json:"entryID"`
	EntryNumber string               `json:"entryNumber"`
	Date        string               `json:"date"`
	DueDate     *string              `json:"dueDate,omitempty"`
	Reference   string               `json:"reference"`
	Memo        string               `json:"memo"`
	Status      domain.JournalStatus `json:"status"`
	SourceType  string               `json:"sourceType"`
	SourceID    string               `json:"sourceID"`
	TotalDebit  decimal.Decimal      `json:"totalDebit"`
	TotalCredit decimal.Decimal      `json:"totalCredit"`
	VoidReason  string               `json:"voidReason,omitempty"`
	PostedAt    *time.Time           `json:"postedAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   string               `json:"createdBy"`
	Lines       []LineResponse       `json:"lines,omitempty"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		EntryNumber: e.EntryNumber,
		Date:        e.EntryDate.Format(DateLayout),
		Reference:   e.Reference,
		Memo:        e.Memo,
		Status:      e.Status,
		SourceType:  e.SourceType,
		SourceID:    e.SourceID,
		TotalDebit:  e.TotalDebit,
		TotalCredit: e.TotalCredit,
		VoidReason:  e.VoidReason,
		PostedAt:    e.PostedAt,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
	if e.DueDate != nil {
		due := e.DueDate.Format(DateLayout)
		resp.DueDate = &due
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = LineResponse{
				LineID:      l.LineID,
				AccountID:   l.AccountID,
				Side:        l.Side,
				Debit:       l.Debit(),
				Credit:      l.Credit(),
				Description: l.Description,
				DocumentRef: l.DocumentRef,
			}
		}
	}
	return resp
}

// ToListEntriesResponse converts a page of entries.
func ToListEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListEntriesResponse {
	resp := ListEntriesResponse{Entries: make([]EntryResponse, len(entries)), NextToken: nextToken}
	for i := range entries {
		resp.Entries[i] = ToEntryResponse(&entries[i])
	}
	return resp
}
