package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
)

const defaultSweepConcurrency = 4

type postingService struct {
	BaseService
	rules       *config.PostingRules
	accountSvc  portssvc.AccountReaderSvc
	journalSvc  portssvc.JournalSvcFacade
	events      portsrepo.EventSource
	concurrency int
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithEventSource sets the outbox swept by Reconcile.
func WithEventSource(events portsrepo.EventSource) PostingServiceOption {
	return func(s *postingService) {
		s.events = events
	}
}

// WithSweepConcurrency bounds how many events Reconcile posts at once.
func WithSweepConcurrency(n int) PostingServiceOption {
	return func(s *postingService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewPostingService creates a posting service driven by the given mapping table.
func NewPostingService(
	rules *config.PostingRules,
	accountSvc portssvc.AccountReaderSvc,
	journalSvc portssvc.JournalSvcFacade,
	options ...PostingServiceOption,
) portssvc.PostingSvc {
	svc := &postingService{
		rules:       rules,
		accountSvc:  accountSvc,
		journalSvc:  journalSvc,
		concurrency: defaultSweepConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingSvc = (*postingService)(nil)

func validateEvent(event domain.BusinessEvent) error {
	switch {
	case strings.TrimSpace(event.Kind) == "":
		return apperrors.Newf(apperrors.ErrValidation, "event kind is required")
	case strings.TrimSpace(event.SourceType) == "" || strings.TrimSpace(event.SourceID) == "":
		return apperrors.Newf(apperrors.ErrValidation, "event source type and id are required")
	case !event.Amount.IsPositive():
		return apperrors.Newf(apperrors.ErrValidation, "event amount must be positive")
	case event.Date.IsZero():
		return apperrors.Newf(apperrors.ErrValidation, "event date is required")
	case event.TaxAmount != nil && event.TaxAmount.IsNegative():
		return apperrors.Newf(apperrors.ErrValidation, "tax amount cannot be negative")
	case event.TaxRate != nil && event.TaxRate.IsNegative():
		return apperrors.Newf(apperrors.ErrValidation, "tax rate cannot be negative")
	}
	return nil
}

// Post translates an event through the mapping table and posts it. The event
// is always mapped first, so an unmapped kind fails even for a source that is
// already posted. Idempotency rests on the storage-level unique source
// constraint: a duplicate insert is reported as already_synced.
func (s *postingService) Post(ctx context.Context, event domain.BusinessEvent, userID string) (*domain.PostingResult, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	logger := s.GetLogger(ctx).With(
		slog.String("event_kind", event.Kind),
		slog.String("source_type", event.SourceType),
		slog.String("source_id", event.SourceID))

	req, err := s.buildEntryRequest(ctx, event)
	if err != nil {
		logger.Warn("Event cannot be posted", slog.String("error", err.Error()))
		return nil, err
	}

	entry, err := s.journalSvc.PostEntry(ctx, *req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateSource) {
			existing, findErr := s.journalSvc.GetEntryBySource(ctx, event.SourceType, event.SourceID)
			if findErr != nil {
				return nil, fmt.Errorf("source already posted but entry not readable: %w", findErr)
			}
			logger.Debug("Event already posted", slog.String("entry_id", existing.EntryID))
			return alreadySynced(event, existing), nil
		}
		return nil, err
	}

	logger.Info("Event posted", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	return &domain.PostingResult{
		SourceType: event.SourceType,
		SourceID:   event.SourceID,
		Status:     domain.StatusSynced,
		Entry:      entry,
	}, nil
}

func alreadySynced(event domain.BusinessEvent, entry *domain.JournalEntry) *domain.PostingResult {
	return &domain.PostingResult{
		SourceType: event.SourceType,
		SourceID:   event.SourceID,
		Status:     domain.StatusAlreadySynced,
		Entry:      entry,
	}
}

// resolveRole maps a posting role onto an account of the chart.
func (s *postingService) resolveRole(ctx context.Context, role string) (*domain.Account, error) {
	code, ok := s.rules.RoleCode(role)
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrConfiguration, "role %s is not bound to an account", role)
	}
	account, err := s.accountSvc.GetAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.ErrConfiguration, "role %s points at missing account %s", role, code)
		}
		return nil, err
	}
	return account, nil
}

// buildEntryRequest produces two lines, or three when the event carries tax.
// With tax, the gross amount sits on the primary side opposite the tax line.
func (s *postingService) buildEntryRequest(ctx context.Context, event domain.BusinessEvent) (*dto.CreateEntryRequest, error) {
	rule, ok := s.rules.Rule(event.Kind)
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrUnmappedEventKind, "%s", event.Kind)
	}

	debitAcc, err := s.resolveRole(ctx, rule.Debit)
	if err != nil {
		return nil, err
	}
	creditAcc, err := s.resolveRole(ctx, rule.Credit)
	if err != nil {
		return nil, err
	}

	docRef := event.DocumentRef
	if docRef == "" {
		docRef = event.SourceType + "/" + event.SourceID
	}
	memo := event.Memo
	if memo == "" {
		memo = fmt.Sprintf("%s %s", event.Kind, event.SourceID)
	}

	net := event.Amount.Round(amountScale)
	line := func(acc *domain.Account, side domain.Side, amount decimal.Decimal) dto.CreateLineRequest {
		return dto.CreateLineRequest{
			AccountID:   acc.AccountID,
			Side:        side,
			Amount:      amount,
			Description: memo,
			DocumentRef: docRef,
		}
	}

	var lines []dto.CreateLineRequest
	tax, hasTax := event.Tax()
	switch {
	case !hasTax:
		lines = []dto.CreateLineRequest{
			line(debitAcc, domain.Debit, net),
			line(creditAcc, domain.Credit, net),
		}
	case rule.Tax == nil:
		return nil, apperrors.Newf(apperrors.ErrConfiguration, "event kind %s carries tax but its rule has no tax role", event.Kind)
	default:
		taxAcc, err := s.resolveRole(ctx, rule.Tax.Role)
		if err != nil {
			return nil, err
		}
		gross := net.Add(tax)
		if rule.Tax.Side == domain.Credit {
			lines = []dto.CreateLineRequest{
				line(debitAcc, domain.Debit, gross),
				line(creditAcc, domain.Credit, net),
				line(taxAcc, domain.Credit, tax),
			}
		} else {
			lines = []dto.CreateLineRequest{
				line(debitAcc, domain.Debit, net),
				line(taxAcc, domain.Debit, tax),
				line(creditAcc, domain.Credit, gross),
			}
		}
	}

	return &dto.CreateEntryRequest{
		Date:       event.Date,
		DueDate:    event.DueDate,
		Reference:  event.Reference,
		Memo:       memo,
		SourceType: event.SourceType,
		SourceID:   event.SourceID,
		Lines:      lines,
	}, nil
}

// Reconcile re-submits every recorded event matching the filter. Failures are
// reported per item and never stop the sweep.
func (s *postingService) Reconcile(ctx context.Context, filter domain.ReconcileFilter, userID string) (*domain.ReconcileReport, error) {
	if s.events == nil {
		return nil, apperrors.Newf(apperrors.ErrConfiguration, "no event source configured")
	}
	events, err := s.events.ListEvents(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list business events")
		return nil, fmt.Errorf("failed to list business events: %w", err)
	}

	results := make([]domain.PostingResult, len(events))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, event := range events {
		g.Go(func() error {
			res, err := s.Post(ctx, event, userID)
			if err != nil {
				results[i] = domain.PostingResult{
					SourceType: event.SourceType,
					SourceID:   event.SourceID,
					Status:     domain.StatusFailed,
					Error:      err.Error(),
					ErrorKind:  string(apperrors.KindOf(err)),
				}
				return nil
			}
			results[i] = *res
			return nil
		})
	}
	_ = g.Wait()

	report := &domain.ReconcileReport{Results: results}
	for _, r := range results {
		switch r.Status {
		case domain.StatusSynced:
			report.Synced++
		case domain.StatusAlreadySynced:
			report.AlreadySynced++
		case domain.StatusFailed:
			report.Failed++
		}
	}

	s.LogInfo(ctx, "Reconciliation sweep finished",
		slog.Int("events", len(events)),
		slog.Int("synced", report.Synced),
		slog.Int("already_synced", report.AlreadySynced),
		slog.Int("failed", report.Failed))
	return report, nil
}
