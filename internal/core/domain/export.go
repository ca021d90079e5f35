package domain

import "time"

// ReportKind names an exportable report.
type ReportKind string

const (
	ReportTrialBalance  ReportKind = "trial-balance"
	ReportProfitAndLoss ReportKind = "profit-and-loss"
	ReportBalanceSheet  ReportKind = "balance-sheet"
	ReportCashFlow      ReportKind = "cash-flow"
	ReportGeneralLedger ReportKind = "general-ledger"
	ReportAging         ReportKind = "aging"
)

// ExportRequest describes the report to build and the format to render it in.
type ExportRequest struct {
	Kind         ReportKind
	Format       string
	Range        DateRange
	AsOf         time.Time
	AccountID    string    // General ledger only
	AgingKind    AgingKind // Aging only
	TrialBalance TrialBalanceOptions
}

// ExportDocument is a rendered report.
type ExportDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}
