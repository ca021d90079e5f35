package export

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

const dateLayout = "2006-01-02"

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// TrialBalance builds the exportable form of a trial balance.
func TrialBalance(r *domain.TrialBalanceReport) Report {
	t := Table{
		Title:   "Trial Balance",
		Headers: []string{"Code", "Account", "Type", "Debit", "Credit"},
	}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{row.Code, row.AccountName, string(row.AccountType), money(row.Debit), money(row.Credit)})
	}
	t.Rows = append(t.Rows, []string{"", "Total", "", money(r.TotalDebit), money(r.TotalCredit)})
	return Report{Name: string(domain.ReportTrialBalance), Data: r, Table: t}
}

// ProfitAndLoss builds the exportable form of a profit and loss report.
func ProfitAndLoss(r *domain.ProfitAndLossReport) Report {
	t := Table{
		Title:   "Profit and Loss",
		Headers: []string{"Section", "Code", "Account", "Amount"},
	}
	for _, a := range r.Revenue {
		t.Rows = append(t.Rows, []string{"Revenue", a.Code, a.Name, money(a.Amount)})
	}
	t.Rows = append(t.Rows, []string{"Revenue", "", "Total Revenue", money(r.TotalRevenue)})
	for _, a := range r.Expenses {
		t.Rows = append(t.Rows, []string{"Expenses", a.Code, a.Name, money(a.Amount)})
	}
	t.Rows = append(t.Rows,
		[]string{"Expenses", "", "Total Expenses", money(r.TotalExpenses)},
		[]string{"", "", "Net Income", money(r.NetIncome)},
	)
	return Report{Name: string(domain.ReportProfitAndLoss), Data: r, Table: t}
}

// BalanceSheet builds the exportable form of a balance sheet.
func BalanceSheet(r *domain.BalanceSheetReport) Report {
	t := Table{
		Title:   "Balance Sheet as of " + date(r.AsOf),
		Headers: []string{"Section", "Code", "Account", "Amount"},
	}
	section := func(name string, lines []domain.AccountAmount) {
		for _, a := range lines {
			t.Rows = append(t.Rows, []string{name, a.Code, a.Name, money(a.Amount)})
		}
	}
	section("Assets", r.Assets)
	t.Rows = append(t.Rows, []string{"Assets", "", "Total Assets", money(r.TotalAssets)})
	section("Liabilities", r.Liabilities)
	t.Rows = append(t.Rows, []string{"Liabilities", "", "Total Liabilities", money(r.TotalLiabilities)})
	section("Equity", r.Equity)
	t.Rows = append(t.Rows,
		[]string{"Equity", "", "Current Earnings", money(r.CurrentEarnings)},
		[]string{"Equity", "", "Total Equity", money(r.TotalEquity)},
	)
	return Report{Name: string(domain.ReportBalanceSheet), Data: r, Table: t}
}

// CashFlow builds the exportable form of a cash flow statement.
func CashFlow(r *domain.CashFlowReport) Report {
	t := Table{
		Title:   "Cash Flow",
		Headers: []string{"Date", "Entry", "Source Type", "Source ID", "Memo", "Inflow", "Outflow"},
	}
	t.Rows = append(t.Rows, []string{date(r.Range.From), "", "", "", "Opening Balance", money(r.OpeningBalance), ""})
	for _, mv := range r.Movements {
		t.Rows = append(t.Rows, []string{date(mv.Date), mv.EntryNumber, mv.SourceType, mv.SourceID, mv.Memo, money(mv.Inflow), money(mv.Outflow)})
	}
	t.Rows = append(t.Rows,
		[]string{"", "", "", "", "Total", money(r.TotalInflow), money(r.TotalOutflow)},
		[]string{date(r.Range.To), "", "", "", "Closing Balance", money(r.ClosingBalance), ""},
	)
	return Report{Name: string(domain.ReportCashFlow), Data: r, Table: t}
}

// GeneralLedger builds the exportable form of an account's general ledger.
func GeneralLedger(r *domain.GeneralLedgerReport) Report {
	t := Table{
		Title:   "General Ledger " + r.Account.Code + " " + r.Account.Name,
		Headers: []string{"Date", "Entry", "Description", "Debit", "Credit", "Balance"},
	}
	t.Rows = append(t.Rows, []string{date(r.Range.From), "", "Opening Balance", "", "", money(r.OpeningBalance)})
	for _, l := range r.Lines {
		desc := l.Description
		if desc == "" {
			desc = l.Memo
		}
		t.Rows = append(t.Rows, []string{date(l.Date), l.EntryNumber, desc, money(l.Debit), money(l.Credit), money(l.RunningBalance)})
	}
	t.Rows = append(t.Rows, []string{date(r.Range.To), "", "Closing Balance", money(r.PeriodDebit), money(r.PeriodCredit), money(r.ClosingBalance)})
	return Report{Name: string(domain.ReportGeneralLedger), Data: r, Table: t}
}

// Aging builds the exportable form of an aging report.
func Aging(r *domain.AgingReport) Report {
	t := Table{
		Title:   "Aging " + string(r.Kind) + " as of " + date(r.AsOf),
		Headers: []string{"Document", "Entry Date", "Due Date", "Days Past Due", "Bucket", "Outstanding"},
	}
	for _, item := range r.Items {
		t.Rows = append(t.Rows, []string{
			item.DocumentRef, date(item.EntryDate), date(item.DueDate),
			strconv.Itoa(item.DaysPastDue), item.Bucket, money(item.Outstanding),
		})
	}
	for _, b := range r.Buckets {
		t.Rows = append(t.Rows, []string{"", "", "", "", b.Bucket, money(b.Amount)})
	}
	t.Rows = append(t.Rows, []string{"", "", "", "", "Total", money(r.Total)})
	return Report{Name: string(domain.ReportAging), Data: r, Table: t}
}
