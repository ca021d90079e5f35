package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo      portsrepo.AccountReader
	reportingRepo    portsrepo.ReportingRepository
	cashAccountCodes []string
	receivablesCode  string
	payablesCode     string
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithCashAccountCodes designates the accounts treated as cash by the cash flow statement.
func WithCashAccountCodes(codes ...string) ReportingServiceOption {
	return func(s *reportingService) {
		s.cashAccountCodes = codes
	}
}

// WithControlAccounts sets the receivables and payables control accounts used for aging.
func WithControlAccounts(receivablesCode, payablesCode string) ReportingServiceOption {
	return func(s *reportingService) {
		s.receivablesCode = receivablesCode
		s.payablesCode = payablesCode
	}
}

// NewReportingService creates a new reporting service
func NewReportingService(
	accountRepo portsrepo.AccountReader,
	reportingRepo portsrepo.ReportingRepository,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// loadBalances returns every account with its activity over the range, ordered by code.
func (s *reportingService) loadBalances(ctx context.Context, dateRange domain.DateRange) ([]domain.Account, map[string]domain.AccountActivity, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, domain.AccountFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for report")
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })

	activity, err := s.reportingRepo.GetAccountActivity(ctx, dateRange, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account activity for report")
		return nil, nil, fmt.Errorf("failed to load account activity: %w", err)
	}
	byAccount := make(map[string]domain.AccountActivity, len(activity))
	for _, a := range activity {
		byAccount[a.AccountID] = a
	}
	return accounts, byAccount, nil
}

// TrialBalance generates a trial balance report over a date range.
func (s *reportingService) TrialBalance(ctx context.Context, dateRange domain.DateRange, opts domain.TrialBalanceOptions) (*domain.TrialBalanceReport, error) {
	accounts, activity, err := s.loadBalances(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	allowed := make(map[domain.AccountType]bool, len(opts.AccountTypes))
	for _, t := range opts.AccountTypes {
		allowed[t] = true
	}

	report := &domain.TrialBalanceReport{
		Range:       dateRange,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, acc := range accounts {
		if len(allowed) > 0 && !allowed[acc.AccountType] {
			continue
		}
		a := activity[acc.AccountID]
		row := domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			Code:        acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			TotalDebit:  a.TotalDebit,
			TotalCredit: a.TotalCredit,
			Balance:     accounting.SignedBalance(acc.AccountType, a.TotalDebit, a.TotalCredit),
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if row.Balance.IsZero() && !opts.IncludeZeroBalance {
			continue
		}
		row.Debit, row.Credit = accounting.PresentationColumns(a.TotalDebit, a.TotalCredit)
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}
	report.Balanced = report.TotalDebit.Equal(report.TotalCredit)

	if opts.GroupByType {
		for _, t := range domain.AccountTypes {
			group := domain.TrialBalanceGroup{AccountType: t, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
			for _, row := range report.Rows {
				if row.AccountType != t {
					continue
				}
				group.Rows = append(group.Rows, row)
				group.TotalDebit = group.TotalDebit.Add(row.Debit)
				group.TotalCredit = group.TotalCredit.Add(row.Credit)
			}
			if len(group.Rows) > 0 {
				report.Groups = append(report.Groups, group)
			}
		}
	}

	if !report.Balanced && len(allowed) == 0 {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	return report, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, dateRange domain.DateRange) (*domain.ProfitAndLossReport, error) {
	accounts, activity, err := s.loadBalances(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	report := &domain.ProfitAndLossReport{
		Range:         dateRange,
		Revenue:       []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, acc := range accounts {
		if acc.AccountType != domain.Revenue && acc.AccountType != domain.Expense {
			continue
		}
		a, ok := activity[acc.AccountID]
		if !ok {
			continue
		}
		amount := accounting.SignedBalance(acc.AccountType, a.TotalDebit, a.TotalCredit)
		if amount.IsZero() {
			continue
		}
		line := domain.AccountAmount{AccountID: acc.AccountID, Code: acc.Code, Name: acc.Name, Amount: amount}
		if acc.AccountType == domain.Revenue {
			report.Revenue = append(report.Revenue, line)
			report.TotalRevenue = report.TotalRevenue.Add(amount)
		} else {
			report.Expenses = append(report.Expenses, line)
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date.
// Cumulative earnings are shown inside equity so no closing entries are needed.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	asOf = domain.TruncateDate(asOf)
	accounts, activity, err := s.loadBalances(ctx, domain.DateRange{To: asOf})
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:             asOf,
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		CurrentEarnings:  decimal.Zero,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, acc := range accounts {
		a, ok := activity[acc.AccountID]
		if !ok {
			continue
		}
		amount := accounting.SignedBalance(acc.AccountType, a.TotalDebit, a.TotalCredit)
		if amount.IsZero() {
			continue
		}
		line := domain.AccountAmount{AccountID: acc.AccountID, Code: acc.Code, Name: acc.Name, Amount: amount}
		switch acc.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, line)
			report.TotalAssets = report.TotalAssets.Add(amount)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, line)
			report.TotalLiabilities = report.TotalLiabilities.Add(amount)
		case domain.Equity:
			report.Equity = append(report.Equity, line)
			report.TotalEquity = report.TotalEquity.Add(amount)
		case domain.Revenue:
			report.CurrentEarnings = report.CurrentEarnings.Add(amount)
		case domain.Expense:
			report.CurrentEarnings = report.CurrentEarnings.Sub(amount)
		}
	}
	report.TotalEquity = report.TotalEquity.Add(report.CurrentEarnings)
	report.Balanced = report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity))

	if !report.Balanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()))
	}
	return report, nil
}

// openingBalance sums the given accounts' signed activity before the range starts.
func (s *reportingService) openingBalance(ctx context.Context, accounts []domain.Account, from time.Time) (decimal.Decimal, error) {
	opening := decimal.Zero
	if from.IsZero() || len(accounts) == 0 {
		return opening, nil
	}
	ids := make([]string, len(accounts))
	types := make(map[string]domain.AccountType, len(accounts))
	for i, acc := range accounts {
		ids[i] = acc.AccountID
		types[acc.AccountID] = acc.AccountType
	}
	before := domain.DateRange{To: domain.TruncateDate(from).AddDate(0, 0, -1)}
	activity, err := s.reportingRepo.GetAccountActivity(ctx, before, ids)
	if err != nil {
		return opening, fmt.Errorf("failed to load opening activity: %w", err)
	}
	for _, a := range activity {
		t, ok := types[a.AccountID]
		if !ok {
			continue
		}
		opening = opening.Add(accounting.SignedBalance(t, a.TotalDebit, a.TotalCredit))
	}
	return opening, nil
}

// accountsByCode resolves configured account codes, reporting a missing one as a configuration error.
func (s *reportingService) accountsByCode(ctx context.Context, codes []string) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(codes))
	for _, code := range codes {
		acc, err := s.accountRepo.FindAccountByCode(ctx, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Newf(apperrors.ErrControlAccountMissing, "account %s does not exist", code)
			}
			return nil, fmt.Errorf("failed to look up account %s: %w", code, err)
		}
		accounts = append(accounts, *acc)
	}
	return accounts, nil
}

// CashFlow generates a direct-method cash flow statement over the designated cash accounts.
// Each entry contributes its net effect on cash; transfers between cash accounts net to nothing.
func (s *reportingService) CashFlow(ctx context.Context, dateRange domain.DateRange) (*domain.CashFlowReport, error) {
	if len(s.cashAccountCodes) == 0 {
		return nil, apperrors.Newf(apperrors.ErrControlAccountMissing, "no cash accounts designated")
	}
	cashAccounts, err := s.accountsByCode(ctx, s.cashAccountCodes)
	if err != nil {
		return nil, err
	}

	opening, err := s.openingBalance(ctx, cashAccounts, dateRange.From)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening cash balance")
		return nil, err
	}

	ids := make([]string, len(cashAccounts))
	for i, acc := range cashAccounts {
		ids[i] = acc.AccountID
	}
	postings, err := s.reportingRepo.GetAccountPostings(ctx, dateRange, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash postings")
		return nil, fmt.Errorf("failed to load cash postings: %w", err)
	}

	report := &domain.CashFlowReport{
		Range:          dateRange,
		CashAccounts:   append([]string(nil), s.cashAccountCodes...),
		OpeningBalance: opening,
		Movements:      []domain.CashMovement{},
		BySourceType:   []domain.SourceTypeFlow{},
		TotalInflow:    decimal.Zero,
		TotalOutflow:   decimal.Zero,
	}

	order := []string{}
	net := map[string]decimal.Decimal{}
	heads := map[string]domain.LedgerPosting{}
	for _, p := range postings {
		if _, seen := heads[p.EntryID]; !seen {
			order = append(order, p.EntryID)
			heads[p.EntryID] = p
			net[p.EntryID] = decimal.Zero
		}
		net[p.EntryID] = net[p.EntryID].Add(p.Debit()).Sub(p.Credit())
	}

	flows := map[string]*domain.SourceTypeFlow{}
	for _, entryID := range order {
		amount := net[entryID]
		if amount.IsZero() {
			continue
		}
		head := heads[entryID]
		mv := domain.CashMovement{
			EntryID:     entryID,
			EntryNumber: head.EntryNumber,
			Date:        head.EntryDate,
			SourceType:  head.SourceType,
			SourceID:    head.SourceID,
			Memo:        head.Memo,
			Inflow:      decimal.Zero,
			Outflow:     decimal.Zero,
		}
		flow, ok := flows[head.SourceType]
		if !ok {
			flow = &domain.SourceTypeFlow{SourceType: head.SourceType, Inflow: decimal.Zero, Outflow: decimal.Zero}
			flows[head.SourceType] = flow
		}
		if amount.IsPositive() {
			mv.Inflow = amount
			flow.Inflow = flow.Inflow.Add(amount)
			report.TotalInflow = report.TotalInflow.Add(amount)
		} else {
			mv.Outflow = amount.Neg()
			flow.Outflow = flow.Outflow.Add(mv.Outflow)
			report.TotalOutflow = report.TotalOutflow.Add(mv.Outflow)
		}
		report.Movements = append(report.Movements, mv)
	}

	for _, flow := range flows {
		flow.Net = flow.Inflow.Sub(flow.Outflow)
		report.BySourceType = append(report.BySourceType, *flow)
	}
	sort.Slice(report.BySourceType, func(i, j int) bool {
		return report.BySourceType[i].SourceType < report.BySourceType[j].SourceType
	})

	report.NetChange = report.TotalInflow.Sub(report.TotalOutflow)
	report.ClosingBalance = report.OpeningBalance.Add(report.NetChange)
	return report, nil
}

// GeneralLedger lists an account's postings with a running balance signed by its normal side.
func (s *reportingService) GeneralLedger(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.GeneralLedgerReport, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for general ledger", slog.String("account_id", accountID))
		}
		return nil, err
	}

	opening, err := s.openingBalance(ctx, []domain.Account{*account}, dateRange.From)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_id", accountID))
		return nil, err
	}

	postings, err := s.reportingRepo.GetAccountPostings(ctx, dateRange, []string{accountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load account postings", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load account postings: %w", err)
	}

	report := &domain.GeneralLedgerReport{
		Account:        *account,
		Range:          dateRange,
		OpeningBalance: opening,
		Lines:          make([]domain.LedgerLine, 0, len(postings)),
		PeriodDebit:    decimal.Zero,
		PeriodCredit:   decimal.Zero,
	}
	running := opening
	for _, p := range postings {
		running = running.Add(p.SignedFor(account.AccountType))
		report.PeriodDebit = report.PeriodDebit.Add(p.Debit())
		report.PeriodCredit = report.PeriodCredit.Add(p.Credit())
		report.Lines = append(report.Lines, domain.LedgerLine{
			EntryID:        p.EntryID,
			EntryNumber:    p.EntryNumber,
			Date:           p.EntryDate,
			Memo:           p.Memo,
			Description:    p.Description,
			SourceType:     p.SourceType,
			SourceID:       p.SourceID,
			Debit:          p.Debit(),
			Credit:         p.Credit(),
			RunningBalance: running,
		})
	}
	report.PeriodNet = accounting.SignedBalance(account.AccountType, report.PeriodDebit, report.PeriodCredit)
	report.ClosingBalance = opening.Add(report.PeriodNet)
	return report, nil
}

type openItem struct {
	ref         string
	entryDate   time.Time
	dueDate     *time.Time
	outstanding decimal.Decimal
}

// AgingAnalysis ages the open items of the receivables or payables control account.
// Items are the control account's lines grouped by document reference; the
// bucket totals therefore sum to the account balance.
func (s *reportingService) AgingAnalysis(ctx context.Context, kind domain.AgingKind, asOf time.Time) (*domain.AgingReport, error) {
	var code string
	switch kind {
	case domain.Receivables:
		code = s.receivablesCode
	case domain.Payables:
		code = s.payablesCode
	default:
		return nil, apperrors.Newf(apperrors.ErrValidation, "unknown aging kind %q", kind)
	}
	if code == "" {
		return nil, apperrors.Newf(apperrors.ErrControlAccountMissing, "no %s control account configured", kind)
	}
	accounts, err := s.accountsByCode(ctx, []string{code})
	if err != nil {
		return nil, err
	}
	control := accounts[0]

	asOf = domain.TruncateDate(asOf)
	postings, err := s.reportingRepo.GetAccountPostings(ctx, domain.DateRange{To: asOf}, []string{control.AccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load control account postings", slog.String("account_id", control.AccountID))
		return nil, fmt.Errorf("failed to load control account postings: %w", err)
	}

	var order []string
	items := map[string]*openItem{}
	balance := decimal.Zero
	for _, p := range postings {
		ref := p.DocumentRef
		if ref == "" {
			ref = p.EntryID
		}
		item, ok := items[ref]
		if !ok {
			item = &openItem{ref: ref, entryDate: p.EntryDate, outstanding: decimal.Zero}
			items[ref] = item
			order = append(order, ref)
		}
		signed := p.SignedFor(control.AccountType)
		item.outstanding = item.outstanding.Add(signed)
		balance = balance.Add(signed)
		if p.EntryDate.Before(item.entryDate) {
			item.entryDate = p.EntryDate
		}
		if p.DueDate != nil && (item.dueDate == nil || p.DueDate.Before(*item.dueDate)) {
			due := *p.DueDate
			item.dueDate = &due
		}
	}

	report := &domain.AgingReport{
		Kind: kind,
		AsOf: asOf,
		ControlAccount: domain.AccountAmount{
			AccountID: control.AccountID,
			Code:      control.Code,
			Name:      control.Name,
			Amount:    balance,
		},
		Items: []domain.AgingItem{},
		Total: decimal.Zero,
	}
	totals := make(map[string]*domain.AgingBucketTotal, len(domain.AgingBuckets))
	for _, b := range domain.AgingBuckets {
		totals[b] = &domain.AgingBucketTotal{Bucket: b, Amount: decimal.Zero}
	}

	for _, ref := range order {
		item := items[ref]
		if item.outstanding.IsZero() {
			continue
		}
		due := item.entryDate
		if item.dueDate != nil {
			due = *item.dueDate
		}
		due = domain.TruncateDate(due)
		days := int(asOf.Sub(due).Hours() / 24)
		bucket := domain.BucketFor(days)

		report.Items = append(report.Items, domain.AgingItem{
			DocumentRef: ref,
			EntryDate:   item.entryDate,
			DueDate:     due,
			DaysPastDue: days,
			Outstanding: item.outstanding,
			Bucket:      bucket,
		})
		totals[bucket].Amount = totals[bucket].Amount.Add(item.outstanding)
		totals[bucket].Count++
		report.Total = report.Total.Add(item.outstanding)
	}
	for _, b := range domain.AgingBuckets {
		report.Buckets = append(report.Buckets, *totals[b])
	}
	return report, nil
}
