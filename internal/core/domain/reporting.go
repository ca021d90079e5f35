package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is the raw per-account sum of posted lines over a range.
type AccountActivity struct {
	AccountID   string          `json:"accountID"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// LedgerPosting is a posted line joined with its entry header.
type LedgerPosting struct {
	JournalLine
	EntryNumber string     `json:"entryNumber"`
	EntryDate   time.Time  `json:"entryDate"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Memo        string     `json:"memo"`
	SourceType  string     `json:"sourceType"`
	SourceID    string     `json:"sourceID"`
	CreatedAt   time.Time  `json:"-"`
}

// TrialBalanceOptions controls the trial balance layout.
type TrialBalanceOptions struct {
	IncludeZeroBalance bool
	AccountTypes       []AccountType // Empty means every type
	GroupByType        bool
}

// TrialBalanceRow is one account's line in the trial balance. Balance is signed
// by the account's normal side; Debit/Credit hold the presentation columns.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceGroup holds the rows of one account type.
type TrialBalanceGroup struct {
	AccountType AccountType       `json:"accountType"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// TrialBalanceReport is the trial balance over a date range.
type TrialBalanceReport struct {
	Range       DateRange           `json:"range"`
	Rows        []TrialBalanceRow   `json:"rows"`
	Groups      []TrialBalanceGroup `json:"groups,omitempty"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	Balanced    bool                `json:"balanced"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitAndLossReport represents a profit and loss report.
type ProfitAndLossReport struct {
	Range         DateRange       `json:"range"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport represents a balance sheet as of a date. CurrentEarnings is
// cumulative revenue minus expense, shown inside equity.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	CurrentEarnings  decimal.Decimal `json:"currentEarnings"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	Balanced         bool            `json:"balanced"`
}

// CashMovement is the net effect of one entry on the cash accounts.
type CashMovement struct {
	EntryID     string          `json:"entryID"`
	EntryNumber string          `json:"entryNumber"`
	Date        time.Time       `json:"date"`
	SourceType  string          `json:"sourceType"`
	SourceID    string          `json:"sourceID"`
	Memo        string          `json:"memo"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
}

// SourceTypeFlow totals cash movements by the source type of their entries.
type SourceTypeFlow struct {
	SourceType string          `json:"sourceType"`
	Inflow     decimal.Decimal `json:"inflow"`
	Outflow    decimal.Decimal `json:"outflow"`
	Net        decimal.Decimal `json:"net"`
}

// CashFlowReport is a direct-method cash flow statement.
type CashFlowReport struct {
	Range          DateRange        `json:"range"`
	CashAccounts   []string         `json:"cashAccounts"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	Movements      []CashMovement   `json:"movements"`
	BySourceType   []SourceTypeFlow `json:"bySourceType"`
	TotalInflow    decimal.Decimal  `json:"totalInflow"`
	TotalOutflow   decimal.Decimal  `json:"totalOutflow"`
	NetChange      decimal.Decimal  `json:"netChange"`
	ClosingBalance decimal.Decimal  `json:"closingBalance"`
}

// LedgerLine is one row of a general ledger with its running balance.
type LedgerLine struct {
	EntryID        string          `json:"entryID"`
	EntryNumber    string          `json:"entryNumber"`
	Date           time.Time       `json:"date"`
	Memo           string          `json:"memo"`
	Description    string          `json:"description"`
	SourceType     string          `json:"sourceType"`
	SourceID       string          `json:"sourceID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerReport lists an account's postings in date order. PeriodNet
// equals the account's trial balance row over the same range.
type GeneralLedgerReport struct {
	Account        Account         `json:"account"`
	Range          DateRange       `json:"range"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []LedgerLine    `json:"lines"`
	PeriodDebit    decimal.Decimal `json:"periodDebit"`
	PeriodCredit   decimal.Decimal `json:"periodCredit"`
	PeriodNet      decimal.Decimal `json:"periodNet"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// AgingKind selects the control account being aged.
type AgingKind string

const (
	Receivables AgingKind = "receivables"
	Payables    AgingKind = "payables"
)

// Aging bucket labels, in order.
const (
	Bucket0To30  = "0-30"
	Bucket31To60 = "31-60"
	Bucket61To90 = "61-90"
	BucketOver90 = "90+"
)

// AgingBuckets lists the bucket labels in order.
var AgingBuckets = []string{Bucket0To30, Bucket31To60, Bucket61To90, BucketOver90}

// BucketFor returns the bucket label for a number of days past due.
// Items not yet due land in the first bucket.
func BucketFor(daysPastDue int) string {
	switch {
	case daysPastDue <= 30:
		return Bucket0To30
	case daysPastDue <= 60:
		return Bucket31To60
	case daysPastDue <= 90:
		return Bucket61To90
	default:
		return BucketOver90
	}
}

// AgingItem is one open item on a control account.
type AgingItem struct {
	DocumentRef string          `json:"documentRef"`
	EntryDate   time.Time       `json:"entryDate"`
	DueDate     time.Time       `json:"dueDate"`
	DaysPastDue int             `json:"daysPastDue"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Bucket      string          `json:"bucket"`
}

// AgingBucketTotal is the outstanding total of one bucket.
type AgingBucketTotal struct {
	Bucket string          `json:"bucket"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// AgingReport ages the open items of a receivables or payables control account.
// The bucket totals sum to the control account balance as of AsOf.
type AgingReport struct {
	Kind           AgingKind          `json:"kind"`
	AsOf           time.Time          `json:"asOf"`
	ControlAccount AccountAmount      `json:"controlAccount"`
	Items          []AgingItem        `json:"items"`
	Buckets        []AgingBucketTotal `json:"buckets"`
	Total          decimal.Decimal    `json:"total"`
}
