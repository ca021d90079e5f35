// Package memory is an in-process ledger backend. It honours the same
// uniqueness and atomicity rules as the PostgreSQL backend and is used by
// tests and by LEDGER_STORAGE=memory.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/erp_ledger/internal/utils/pagination"
)

type sourceKey struct {
	sourceType string
	sourceID   string
}

type Store struct {
	mu sync.RWMutex

	accounts     map[string]domain.Account
	accountCodes map[string]string

	entries   map[string]*domain.JournalEntry
	sources   map[sourceKey]string // Non-void entries only
	sequences map[int]int64

	events []domain.BusinessEvent
}

func New() *Store {
	return &Store{
		accounts:     make(map[string]domain.Account),
		accountCodes: make(map[string]string),
		entries:      make(map[string]*domain.JournalEntry),
		sources:      make(map[sourceKey]string),
		sequences:    make(map[int]int64),
	}
}

var (
	_ portsrepo.AccountRepositoryFacade = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade = (*Store)(nil)
	_ portsrepo.ReportingRepository     = (*Store)(nil)
	_ portsrepo.EventSource             = (*Store)(nil)
)

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   s,
		JournalRepo:   s,
		ReportingRepo: s,
		EventSource:   s,
	}
}

// Account store implementation

func (s *Store) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrNotFound, "account %s", accountID)
	}
	return &acc, nil
}

func (s *Store) FindAccountByCode(_ context.Context, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.accountCodes[code]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrNotFound, "account code %s", code)
	}
	acc := s.accounts[id]
	return &acc, nil
}

func (s *Store) FindAccountsByIDs(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := s.accounts[id]; ok {
			result[id] = acc
		}
	}
	return result, nil
}

func (s *Store) ListAccounts(_ context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		if filter.Matches(acc) {
			result = append(result, acc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (s *Store) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accountCodes[account.Code]; exists {
		return apperrors.Newf(apperrors.ErrDuplicateCode, "%s", account.Code)
	}
	s.accounts[account.AccountID] = account
	s.accountCodes[account.Code] = account.AccountID
	return nil
}

func (s *Store) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.AccountID]
	if !ok {
		return apperrors.Newf(apperrors.ErrNotFound, "account %s", account.AccountID)
	}
	existing.Name = account.Name
	existing.Description = account.Description
	existing.ParentAccountID = account.ParentAccountID
	existing.LastUpdatedAt = account.LastUpdatedAt
	existing.LastUpdatedBy = account.LastUpdatedBy
	s.accounts[account.AccountID] = existing
	return nil
}

func (s *Store) DeactivateAccount(_ context.Context, accountID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return apperrors.Newf(apperrors.ErrNotFound, "account %s", accountID)
	}
	acc.IsActive = false
	acc.LastUpdatedAt = now
	acc.LastUpdatedBy = userID
	s.accounts[accountID] = acc
	return nil
}

// Journal store implementation

func cloneEntry(e *domain.JournalEntry, withLines bool) *domain.JournalEntry {
	c := *e
	if e.DueDate != nil {
		due := *e.DueDate
		c.DueDate = &due
	}
	if e.PostedAt != nil {
		posted := *e.PostedAt
		c.PostedAt = &posted
	}
	c.Lines = nil
	if withLines {
		c.Lines = append([]domain.JournalLine(nil), e.Lines...)
	}
	return &c
}

// checkAccountsLocked re-checks that every line targets an active account.
func (s *Store) checkAccountsLocked(lines []domain.JournalLine) error {
	for _, l := range lines {
		acc, ok := s.accounts[l.AccountID]
		if !ok {
			return apperrors.Newf(apperrors.ErrUnknownAccount, "account %s does not exist", l.AccountID)
		}
		if !acc.IsActive {
			return apperrors.Newf(apperrors.ErrUnknownAccount, "account %s is inactive", acc.Code)
		}
	}
	return nil
}

func (s *Store) checkSourceLocked(entry *domain.JournalEntry) error {
	if owner, ok := s.sources[sourceKey{entry.SourceType, entry.SourceID}]; ok && owner != entry.EntryID {
		return apperrors.Newf(apperrors.ErrDuplicateSource, "%s/%s", entry.SourceType, entry.SourceID)
	}
	return nil
}

func (s *Store) nextNumberLocked(entryDate time.Time) string {
	year := entryDate.Year()
	s.sequences[year]++
	return domain.FormatEntryNumber(year, s.sequences[year])
}

func (s *Store) SavePostedEntry(_ context.Context, entry *domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAccountsLocked(entry.Lines); err != nil {
		return err
	}
	if err := s.checkSourceLocked(entry); err != nil {
		return err
	}
	entry.EntryNumber = s.nextNumberLocked(entry.EntryDate)
	s.entries[entry.EntryID] = cloneEntry(entry, true)
	s.sources[sourceKey{entry.SourceType, entry.SourceID}] = entry.EntryID
	return nil
}

func (s *Store) SaveDraftEntry(_ context.Context, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSourceLocked(&entry); err != nil {
		return err
	}
	s.entries[entry.EntryID] = cloneEntry(&entry, true)
	s.sources[sourceKey{entry.SourceType, entry.SourceID}] = entry.EntryID
	return nil
}

func (s *Store) PostDraftEntry(_ context.Context, entry *domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.entries[entry.EntryID]
	if !ok {
		return apperrors.Newf(apperrors.ErrNotFound, "journal entry %s", entry.EntryID)
	}
	if stored.Status != domain.Draft {
		return apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is %s, not DRAFT", entry.EntryID, stored.Status)
	}
	if err := s.checkAccountsLocked(stored.Lines); err != nil {
		return err
	}
	if err := s.checkSourceLocked(stored); err != nil {
		return err
	}

	entry.EntryNumber = s.nextNumberLocked(stored.EntryDate)
	stored.EntryNumber = entry.EntryNumber
	stored.Status = domain.Posted
	stored.PostedAt = entry.PostedAt
	stored.TotalDebit = entry.TotalDebit
	stored.TotalCredit = entry.TotalCredit
	stored.LastUpdatedAt = entry.LastUpdatedAt
	stored.LastUpdatedBy = entry.LastUpdatedBy
	return nil
}

func (s *Store) VoidEntry(_ context.Context, entryID, reason, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.entries[entryID]
	if !ok {
		return apperrors.Newf(apperrors.ErrNotFound, "journal entry %s", entryID)
	}
	if stored.Status == domain.Void {
		return apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is already void", entryID)
	}
	if _, reversed := s.sources[sourceKey{domain.SourceTypeReversal, entryID}]; reversed {
		return apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s has an active reversal", entryID)
	}

	stored.Status = domain.Void
	stored.VoidReason = reason
	stored.LastUpdatedAt = now
	stored.LastUpdatedBy = userID
	delete(s.sources, sourceKey{stored.SourceType, stored.SourceID})
	return nil
}

func (s *Store) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.entries[entryID]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrNotFound, "journal entry %s", entryID)
	}
	return cloneEntry(stored, true), nil
}

func (s *Store) FindEntryBySource(_ context.Context, sourceType, sourceID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sources[sourceKey{sourceType, sourceID}]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrNotFound, "no entry for source %s/%s", sourceType, sourceID)
	}
	return cloneEntry(s.entries[id], true), nil
}

func (s *Store) ListEntries(_ context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, *string, error) {
	var cursor *pagination.Cursor
	if filter.NextToken != nil && *filter.NextToken != "" {
		c, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.Wrap(apperrors.ErrValidation, err, "nextToken")
		}
		cursor = &c
	}

	s.mu.RLock()
	matched := make([]domain.JournalEntry, 0)
	for _, e := range s.entries {
		if !filter.Matches(*e) {
			continue
		}
		if cursor != nil && !cursor.After(e.EntryDate, e.CreatedAt, e.EntryID) {
			continue
		}
		matched = append(matched, *cloneEntry(e, false))
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.After(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.EntryID > b.EntryID
	})

	var nextToken *string
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
		last := matched[len(matched)-1]
		token := pagination.EncodeToken(pagination.Cursor{EntryDate: last.EntryDate, CreatedAt: last.CreatedAt, EntryID: last.EntryID})
		nextToken = &token
	}
	return matched, nextToken, nil
}

// Reporting implementation

func idSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (s *Store) GetAccountActivity(_ context.Context, dateRange domain.DateRange, accountIDs []string) ([]domain.AccountActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	only := idSet(accountIDs)
	totals := make(map[string]*domain.AccountActivity)
	for _, e := range s.entries {
		if e.Status != domain.Posted || !dateRange.Contains(e.EntryDate) {
			continue
		}
		for _, l := range e.Lines {
			if only != nil && !only[l.AccountID] {
				continue
			}
			a, ok := totals[l.AccountID]
			if !ok {
				a = &domain.AccountActivity{AccountID: l.AccountID, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
				totals[l.AccountID] = a
			}
			a.TotalDebit = a.TotalDebit.Add(l.Debit())
			a.TotalCredit = a.TotalCredit.Add(l.Credit())
		}
	}

	result := make([]domain.AccountActivity, 0, len(totals))
	for _, a := range totals {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AccountID < result[j].AccountID })
	return result, nil
}

func (s *Store) GetAccountPostings(_ context.Context, dateRange domain.DateRange, accountIDs []string) ([]domain.LedgerPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	only := idSet(accountIDs)
	var result []domain.LedgerPosting
	for _, e := range s.entries {
		if e.Status != domain.Posted || !dateRange.Contains(e.EntryDate) {
			continue
		}
		for _, l := range e.Lines {
			if only != nil && !only[l.AccountID] {
				continue
			}
			p := domain.LedgerPosting{
				JournalLine: l,
				EntryNumber: e.EntryNumber,
				EntryDate:   e.EntryDate,
				Memo:        e.Memo,
				SourceType:  e.SourceType,
				SourceID:    e.SourceID,
				CreatedAt:   e.CreatedAt,
			}
			if e.DueDate != nil {
				due := *e.DueDate
				p.DueDate = &due
			}
			result = append(result, p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		if a.EntryID != b.EntryID {
			return a.EntryID < b.EntryID
		}
		return a.Position < b.Position
	})
	return result, nil
}

// Event source implementation

// AppendEvent records a business event for the reconciliation sweep.
func (s *Store) AppendEvent(event domain.BusinessEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *Store) ListEvents(_ context.Context, filter domain.ReconcileFilter) ([]domain.BusinessEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.BusinessEvent, 0, len(s.events))
	for _, ev := range s.events {
		if !filter.DateRange.Contains(ev.Date) {
			continue
		}
		if filter.SourceType != "" && ev.SourceType != filter.SourceType {
			continue
		}
		result = append(result, ev)
	}
	return result, nil
}
