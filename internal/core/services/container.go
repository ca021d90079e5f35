package services

import (
	"time"

	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/export"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
)

// ContainerOptions carries the ledger policy the services are built with.
type ContainerOptions struct {
	Rules                    *config.PostingRules
	CashAccountCodes         []string // Falls back to the account bound to the cash role
	BlockNonZeroDeactivation bool
	SweepConcurrency         int
	Renderers                *export.Registry
	Clock                    func() time.Time
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos portsrepo.RepositoryProvider, opts ContainerOptions) *portssvc.ServiceContainer {
	rules := opts.Rules
	if rules == nil {
		rules = config.DefaultPostingRules()
	}

	accountSvc := NewAccountService(
		repos.AccountRepo,
		WithAccountBalances(repos.ReportingRepo),
		WithNonZeroDeactivationBlocked(opts.BlockNonZeroDeactivation),
		WithAccountClock(opts.Clock),
	)

	journalSvc := NewJournalService(repos.JournalRepo, accountSvc, WithJournalClock(opts.Clock))

	postingSvc := NewPostingService(rules, accountSvc, journalSvc,
		WithEventSource(repos.EventSource),
		WithSweepConcurrency(opts.SweepConcurrency),
	)

	cashCodes := opts.CashAccountCodes
	if len(cashCodes) == 0 {
		if code, ok := rules.RoleCode(config.RoleCash); ok {
			cashCodes = []string{code}
		}
	}
	receivables, _ := rules.RoleCode(config.RoleAccountsReceivable)
	payables, _ := rules.RoleCode(config.RoleAccountsPayable)

	reportingSvc := NewReportingService(repos.AccountRepo, repos.ReportingRepo,
		WithCashAccountCodes(cashCodes...),
		WithControlAccounts(receivables, payables),
	)

	return &portssvc.ServiceContainer{
		Account:   accountSvc,
		Journal:   journalSvc,
		Posting:   postingSvc,
		Reporting: reportingSvc,
		Export:    NewExportService(reportingSvc, opts.Renderers),
	}
}
