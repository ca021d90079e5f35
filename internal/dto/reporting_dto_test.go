package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

var today = time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     domain.DateRange
		wantErr  bool
	}{
		{"defaults to inception through today", "", "", domain.DateRange{To: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}, false},
		{"explicit", "2024-01-01", "2024-03-31", domain.DateRange{From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)}, false},
		{"inverted", "2024-04-01", "2024-03-31", domain.DateRange{}, true},
		{"bad from", "01/04/2024", "", domain.DateRange{}, true},
		{"bad to", "", "tomorrow", domain.DateRange{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateRange(tt.from, tt.to, today)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrialBalanceQuery_ToOptions(t *testing.T) {
	q := TrialBalanceQuery{AccountTypes: []string{"asset,Revenue", " expense "}, GroupByType: true}
	opts, err := q.ToOptions()
	require.NoError(t, err)
	assert.Equal(t, []domain.AccountType{domain.Asset, domain.Revenue, domain.Expense}, opts.AccountTypes)
	assert.True(t, opts.GroupByType)

	_, err = TrialBalanceQuery{AccountTypes: []string{"INCOME"}}.ToOptions()
	assert.Error(t, err)
}

func TestExportReportQuery_ToExportRequest(t *testing.T) {
	q := ExportReportQuery{AccountID: "acc-1", Format: " JSON "}
	q.From = "2024-01-01"
	q.AsOf = "2024-05-31"

	req, err := q.ToExportRequest(domain.ReportGeneralLedger, today)
	require.NoError(t, err)
	assert.Equal(t, "json", req.Format)
	assert.Equal(t, "acc-1", req.AccountID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), req.Range.From)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), req.Range.To)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), req.AsOf)

	req, err = ExportReportQuery{}.ToExportRequest(domain.ReportTrialBalance, today)
	require.NoError(t, err)
	assert.Equal(t, DefaultExportFormat, req.Format)
}
