package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

const (
	defaultEntryPageSize = 20
	amountScale          = 4
)

type journalService struct {
	BaseService
	accountSvc  portssvc.AccountReaderSvc
	journalRepo portsrepo.JournalRepositoryFacade
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithJournalClock overrides the time source used for audit fields.
func WithJournalClock(clock func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.clock = clock
	}
}

// NewJournalService creates a new journal service with the provided options
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountSvc portssvc.AccountReaderSvc,
	options ...JournalServiceOption,
) portssvc.JournalSvcFacade {
	svc := &journalService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildEntry turns a request into an entry with normalized lines. Source
// defaults are applied: manual entries point at themselves.
func (s *journalService) buildEntry(req dto.CreateEntryRequest, userID string, status domain.JournalStatus) *domain.JournalEntry {
	now := s.now()
	entryID := uuid.NewString()

	sourceType := strings.TrimSpace(req.SourceType)
	if sourceType == "" {
		sourceType = domain.SourceTypeManual
	}
	sourceID := strings.TrimSpace(req.SourceID)
	if sourceID == "" {
		sourceID = entryID
	}

	entry := &domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   domain.TruncateDate(req.Date),
		Reference:   req.Reference,
		Memo:        req.Memo,
		Status:      status,
		SourceType:  sourceType,
		SourceID:    sourceID,
		AuditFields: domain.NewAuditFields(userID, now),
		Lines:       make([]domain.JournalLine, len(req.Lines)),
	}
	if req.DueDate != nil {
		due := domain.TruncateDate(*req.DueDate)
		entry.DueDate = &due
	}

	for i, l := range req.Lines {
		entry.Lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   l.AccountID,
			Description: l.Description,
			Side:        l.Side,
			Amount:      l.Amount.Round(amountScale),
			Position:    i + 1,
			DocumentRef: l.DocumentRef,
		}
	}
	entry.TotalDebit, entry.TotalCredit = entry.LineTotals()
	return entry
}

// validateLines checks that every line targets an existing active account and
// carries a valid side with a positive amount.
func (s *journalService) validateLines(ctx context.Context, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return apperrors.Newf(apperrors.ErrValidation, "journal entry has no lines")
	}

	accountIDs := make([]string, 0, len(lines))
	for _, l := range lines {
		accountIDs = append(accountIDs, l.AccountID)
	}
	accounts, err := s.accountSvc.GetAccountByIDs(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to load accounts for entry: %w", err)
	}

	for _, l := range lines {
		account, ok := accounts[l.AccountID]
		if !ok {
			return apperrors.Newf(apperrors.ErrUnknownAccount, "account %s does not exist", l.AccountID)
		}
		if !account.IsActive {
			return apperrors.Newf(apperrors.ErrUnknownAccount, "account %s is inactive", account.Code)
		}
	}

	for _, l := range lines {
		if !l.Side.IsValid() {
			return apperrors.Newf(apperrors.ErrInvalidLine, "line %d has side %q", l.Position, l.Side)
		}
		if !l.Amount.IsPositive() {
			return apperrors.Newf(apperrors.ErrInvalidLine, "line %d amount must be positive", l.Position)
		}
	}
	return nil
}

// validateForPosting runs the full posting validation in order.
func (s *journalService) validateForPosting(ctx context.Context, entry *domain.JournalEntry) error {
	if entry.EntryDate.IsZero() {
		return apperrors.Newf(apperrors.ErrValidation, "entry date is required")
	}
	if err := s.validateLines(ctx, entry.Lines); err != nil {
		return err
	}
	if len(entry.Lines) < 2 {
		return apperrors.Newf(apperrors.ErrValidation, "journal entry needs at least two lines")
	}
	debit, credit := entry.LineTotals()
	if !debit.Equal(credit) {
		return apperrors.Newf(apperrors.ErrUnbalancedEntry, "debits %s, credits %s", debit.String(), credit.String())
	}
	entry.TotalDebit, entry.TotalCredit = debit, credit
	return nil
}

// PostEntry validates and atomically posts a balanced entry.
func (s *journalService) PostEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry := s.buildEntry(req, userID, domain.Posted)
	if err := s.validateForPosting(ctx, entry); err != nil {
		s.LogWarn(ctx, "Journal entry rejected", slog.String("error", err.Error()),
			slog.String("source_type", entry.SourceType), slog.String("source_id", entry.SourceID))
		return nil, err
	}
	return s.savePosted(ctx, entry)
}

func (s *journalService) savePosted(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	postedAt := s.now()
	entry.Status = domain.Posted
	entry.PostedAt = &postedAt

	if err := s.journalRepo.SavePostedEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateSource) || errors.Is(err, apperrors.ErrUnknownAccount) {
			s.LogWarn(ctx, "Journal entry rejected by store", slog.String("error", err.Error()),
				slog.String("source_type", entry.SourceType), slog.String("source_id", entry.SourceID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("source_type", entry.SourceType),
		slog.String("source_id", entry.SourceID),
		slog.String("total", entry.TotalDebit.String()))
	return entry, nil
}

// SaveDraft stores the entry without requiring it to balance.
func (s *journalService) SaveDraft(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry := s.buildEntry(req, userID, domain.Draft)
	if err := s.validateLines(ctx, entry.Lines); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveDraftEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to save draft entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save draft entry: %w", err)
	}
	s.LogInfo(ctx, "Draft entry saved", slog.String("entry_id", entry.EntryID))
	return entry, nil
}

// PostDraft validates a draft as if it were posted fresh and moves it to POSTED.
func (s *journalService) PostDraft(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is %s, not DRAFT", entryID, entry.Status)
	}
	if err := s.validateForPosting(ctx, entry); err != nil {
		return nil, err
	}

	now := s.now()
	entry.Status = domain.Posted
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if err := s.journalRepo.PostDraftEntry(ctx, entry); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateSource) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to post draft entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Draft entry posted", slog.String("entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// VoidEntry moves a DRAFT or POSTED entry to VOID, keeping its rows.
func (s *journalService) VoidEntry(ctx context.Context, entryID string, reason string, userID string) (*domain.JournalEntry, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.Newf(apperrors.ErrValidation, "void reason is required")
	}

	entry, err := s.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.Void {
		return nil, apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is already void", entryID)
	}

	reversal, err := s.journalRepo.FindEntryBySource(ctx, domain.SourceTypeReversal, entryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up reversal: %w", err)
	}
	if reversal != nil {
		return nil, apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is reversed by %s", entryID, reversal.EntryNumber)
	}

	now := s.now()
	if err := s.journalRepo.VoidEntry(ctx, entryID, reason, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to void entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	entry.Status = domain.Void
	entry.VoidReason = reason
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	s.LogInfo(ctx, "Journal entry voided", slog.String("entry_id", entryID), slog.String("reason", reason))
	return entry, nil
}

// ReverseEntry posts the mirror image of a posted entry, dated like the original.
// The reversal is a new posting and must pass the same checks, so an entry
// that touches a deactivated account can only be voided.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	original, err := s.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is %s, only POSTED entries can be reversed", entryID, original.Status)
	}
	if original.IsReversal() {
		return nil, apperrors.Newf(apperrors.ErrInvalidStatus, "entry %s is itself a reversal", entryID)
	}

	now := s.now()
	reversal := &domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   original.EntryDate,
		DueDate:     original.DueDate,
		Reference:   original.Reference,
		Memo:        "Reversal of " + original.EntryNumber,
		SourceType:  domain.SourceTypeReversal,
		SourceID:    original.EntryID,
		AuditFields: domain.NewAuditFields(userID, now),
		Lines:       make([]domain.JournalLine, len(original.Lines)),
	}
	for i, l := range original.Lines {
		line := l.Reversed()
		line.LineID = uuid.NewString()
		line.EntryID = reversal.EntryID
		reversal.Lines[i] = line
	}

	if err := s.validateForPosting(ctx, reversal); err != nil {
		return nil, err
	}
	return s.savePosted(ctx, reversal)
}

// GetEntry retrieves an entry with its lines.
func (s *journalService) GetEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) GetEntryBySource(ctx context.Context, sourceType, sourceID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryBySource(ctx, sourceType, sourceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry by source",
				slog.String("source_type", sourceType), slog.String("source_id", sourceID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a page of entry headers, newest first.
func (s *journalService) ListEntries(ctx context.Context, filter domain.EntryFilter) (*dto.ListEntriesResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultEntryPageSize
	}
	entries, nextToken, err := s.journalRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, err
	}
	resp := dto.ToListEntriesResponse(entries, nextToken)
	return &resp, nil
}

