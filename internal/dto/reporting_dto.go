package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// DateLayout is the calendar date format used by every report parameter.
const DateLayout = "2006-01-02"

// ReportRangeQuery holds the date range query parameters of period reports.
type ReportRangeQuery struct {
	From string `form:"fromDate"` // Empty means since inception
	To   string `form:"toDate"`   // Empty means today
}

// ToDateRange parses the query into a domain range.
func (q ReportRangeQuery) ToDateRange(now time.Time) (domain.DateRange, error) {
	return ParseDateRange(q.From, q.To, now)
}

// AsOfQuery holds the as-of date of point-in-time reports.
type AsOfQuery struct {
	AsOf string `form:"asOf"` // Empty means today
}

// ToAsOf parses the as-of date.
func (q AsOfQuery) ToAsOf(now time.Time) (time.Time, error) {
	if q.AsOf == "" {
		return domain.TruncateDate(now), nil
	}
	asOf, err := time.Parse(DateLayout, q.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid asOf %q: use YYYY-MM-DD", q.AsOf)
	}
	return asOf, nil
}

// TrialBalanceQuery holds the trial balance query parameters.
type TrialBalanceQuery struct {
	ReportRangeQuery
	IncludeZeroBalance bool     `form:"includeZeroBalance"`
	AccountTypes       []string `form:"accountType"`
	GroupByType        bool     `form:"groupByType"`
}

// ToOptions converts the query to trial balance options.
func (q TrialBalanceQuery) ToOptions() (domain.TrialBalanceOptions, error) {
	opts := domain.TrialBalanceOptions{
		IncludeZeroBalance: q.IncludeZeroBalance,
		GroupByType:        q.GroupByType,
	}
	for _, raw := range q.AccountTypes {
		for _, part := range strings.Split(raw, ",") {
			t := domain.AccountType(strings.ToUpper(strings.TrimSpace(part)))
			if t == "" {
				continue
			}
			if !t.IsValid() {
				return opts, fmt.Errorf("invalid accountType %q", part)
			}
			opts.AccountTypes = append(opts.AccountTypes, t)
		}
	}
	return opts, nil
}

// AgingQuery holds the aging report query parameters.
type AgingQuery struct {
	AsOfQuery
	Kind string `form:"kind" binding:"omitempty,oneof=receivables payables"`
}

// DefaultExportFormat is used when an export names no format.
const DefaultExportFormat = "csv"

// ExportReportQuery holds the query parameters of a report export: the document
// format plus whatever the chosen report reads.
type ExportReportQuery struct {
	TrialBalanceQuery
	AsOfQuery
	Format    string `form:"format"`
	AccountID string `form:"accountID"`
	AgingKind string `form:"agingKind" binding:"omitempty,oneof=receivables payables"`
}

// ToExportRequest builds the export request for a report kind.
func (q ExportReportQuery) ToExportRequest(kind domain.ReportKind, now time.Time) (domain.ExportRequest, error) {
	req := domain.ExportRequest{
		Kind:      kind,
		Format:    strings.ToLower(strings.TrimSpace(q.Format)),
		AccountID: q.AccountID,
		AgingKind: domain.AgingKind(q.AgingKind),
	}
	if req.Format == "" {
		req.Format = DefaultExportFormat
	}

	var err error
	if req.Range, err = q.ToDateRange(now); err != nil {
		return req, err
	}
	if req.AsOf, err = q.ToAsOf(now); err != nil {
		return req, err
	}
	if req.TrialBalance, err = q.ToOptions(); err != nil {
		return req, err
	}
	return req, nil
}

// ParseDateRange parses an optional YYYY-MM-DD range. An empty from means since
// inception and an empty to means today.
func ParseDateRange(from, to string, now time.Time) (domain.DateRange, error) {
	var r domain.DateRange
	if from != "" {
		f, err := time.Parse(DateLayout, from)
		if err != nil {
			return r, fmt.Errorf("invalid fromDate %q: use YYYY-MM-DD", from)
		}
		r.From = f
	}
	if to != "" {
		t, err := time.Parse(DateLayout, to)
		if err != nil {
			return r, fmt.Errorf("invalid toDate %q: use YYYY-MM-DD", to)
		}
		r.To = t
	} else {
		r.To = domain.TruncateDate(now)
	}
	if !r.From.IsZero() && r.From.After(r.To) {
		return r, fmt.Errorf("fromDate must be before or equal to toDate")
	}
	return r, nil
}
