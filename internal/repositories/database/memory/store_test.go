package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

func seedAccounts(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.SaveAccount(ctx, domain.Account{AccountID: "cash", Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}))
	require.NoError(t, s.SaveAccount(ctx, domain.Account{AccountID: "equity", Code: "3000", Name: "Equity", AccountType: domain.Equity, IsActive: true}))
}

func entry(id string, day int, sourceID string, amount string) *domain.JournalEntry {
	amt := decimal.RequireFromString(amount)
	date := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return &domain.JournalEntry{
		EntryID:     id,
		EntryDate:   date,
		Status:      domain.Posted,
		SourceType:  "test",
		SourceID:    sourceID,
		TotalDebit:  amt,
		TotalCredit: amt,
		AuditFields: domain.NewAuditFields("tester", date.Add(time.Hour)),
		Lines: []domain.JournalLine{
			{LineID: id + "-1", EntryID: id, AccountID: "cash", Side: domain.Debit, Amount: amt, Position: 1},
			{LineID: id + "-2", EntryID: id, AccountID: "equity", Side: domain.Credit, Amount: amt, Position: 2},
		},
	}
}

func TestStore_SaveAccountDuplicateCode(t *testing.T) {
	s := New()
	seedAccounts(t, s)

	err := s.SaveAccount(context.Background(), domain.Account{AccountID: "other", Code: "1000", Name: "Dup", AccountType: domain.Asset})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCode)
}

func TestStore_SavePostedEntryNumbersAndSources(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedAccounts(t, s)

	first := entry("e1", 2, "src-1", "100")
	require.NoError(t, s.SavePostedEntry(ctx, first))
	assert.Equal(t, "JE-2024-0001", first.EntryNumber)

	second := entry("e2", 3, "src-2", "50")
	require.NoError(t, s.SavePostedEntry(ctx, second))
	assert.Equal(t, "JE-2024-0002", second.EntryNumber)

	dup := entry("e3", 4, "src-1", "10")
	assert.ErrorIs(t, s.SavePostedEntry(ctx, dup), apperrors.ErrDuplicateSource)

	// A voided entry frees its source pair.
	require.NoError(t, s.VoidEntry(ctx, "e1", "typo", "tester", time.Now()))
	require.NoError(t, s.SavePostedEntry(ctx, dup))
	assert.Equal(t, "JE-2024-0003", dup.EntryNumber)
}

func TestStore_SavePostedEntryRejectsInactiveAccount(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedAccounts(t, s)
	require.NoError(t, s.DeactivateAccount(ctx, "equity", "tester", time.Now()))

	err := s.SavePostedEntry(ctx, entry("e1", 2, "src-1", "100"))
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)

	_, err = s.FindEntryByID(ctx, "e1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ListEntriesPaginates(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedAccounts(t, s)
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.SavePostedEntry(ctx, entry(id, i+1, "src-"+id, "10")))
	}

	var seen []string
	filter := domain.EntryFilter{Limit: 2}
	for {
		page, next, err := s.ListEntries(ctx, filter)
		require.NoError(t, err)
		for _, e := range page {
			assert.Empty(t, e.Lines)
			seen = append(seen, e.EntryID)
		}
		if next == nil {
			break
		}
		filter.NextToken = next
	}
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, seen)
}

func TestStore_ReportingOnlyCountsPosted(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedAccounts(t, s)

	require.NoError(t, s.SavePostedEntry(ctx, entry("p1", 5, "src-1", "100")))
	draft := entry("d1", 6, "src-2", "40")
	draft.Status = domain.Draft
	require.NoError(t, s.SaveDraftEntry(ctx, *draft))
	require.NoError(t, s.SavePostedEntry(ctx, entry("v1", 7, "src-3", "25")))
	require.NoError(t, s.VoidEntry(ctx, "v1", "wrong", "tester", time.Now()))

	activity, err := s.GetAccountActivity(ctx, domain.DateRange{}, []string{"cash"})
	require.NoError(t, err)
	require.Len(t, activity, 1)
	assert.True(t, activity[0].TotalDebit.Equal(decimal.NewFromInt(100)))
	assert.True(t, activity[0].TotalCredit.IsZero())

	postings, err := s.GetAccountPostings(ctx, domain.DateRange{}, nil)
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.Equal(t, 1, postings[0].Position)
	assert.Equal(t, "JE-2024-0001", postings[0].EntryNumber)
}

func TestStore_ListEventsFilters(t *testing.T) {
	s := New()
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	s.AppendEvent(domain.BusinessEvent{Kind: domain.EventInvoiceIssued, SourceType: "invoice", SourceID: "1", Date: jan})
	s.AppendEvent(domain.BusinessEvent{Kind: domain.EventBillPaid, SourceType: "bill", SourceID: "2", Date: jan.AddDate(0, 1, 0)})

	events, err := s.ListEvents(context.Background(), domain.ReconcileFilter{SourceType: "invoice"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "1", events[0].SourceID)

	events, err = s.ListEvents(context.Background(), domain.ReconcileFilter{DateRange: domain.DateRange{From: jan.AddDate(0, 0, 1)}})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2", events[0].SourceID)
}
