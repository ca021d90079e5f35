package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/core/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/handlers"
	"github.com/SscSPs/erp_ledger/internal/platform/config"
	"github.com/SscSPs/erp_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/erp_ledger/internal/utils"
)

type flowClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newFlowClient(t *testing.T) *flowClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, handlers.RegisterValidators())

	rules := config.DefaultPostingRules()
	container := services.NewContainer(memory.New().Provider(), services.ContainerOptions{Rules: rules})
	_, err := container.Account.EnsureAccounts(context.Background(), rules.Accounts, "system")
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: testJWTIssuer, IsProduction: true}
	router := gin.New()
	handlers.RegisterRoutes(router, cfg, container)

	token, err := utils.GenerateJWT(testUserID, cfg.JWTSecret, time.Hour, cfg.JWTIssuer)
	require.NoError(t, err)
	return &flowClient{t: t, router: router, token: token}
}

func (f *flowClient) do(method, path string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(f.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *flowClient) postEvent(kind, amount, sourceType, sourceID string) *httptest.ResponseRecorder {
	return f.do(http.MethodPost, "/api/v1/postings/events", map[string]any{
		"kind":       kind,
		"amount":     amount,
		"date":       "2024-02-10T00:00:00Z",
		"sourceType": sourceType,
		"sourceID":   sourceID,
	})
}

func TestLedgerFlow_PostReportAndExport(t *testing.T) {
	client := newFlowClient(t)

	w := client.postEvent(domain.EventCapitalContributed, "1000", "capital", "CAP-1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = client.postEvent(domain.EventCapitalContributed, "1000", "capital", "CAP-1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var again dto.PostingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, domain.StatusAlreadySynced, again.Status)

	w = client.postEvent(domain.EventInvoiceIssued, "400", "invoice", "INV-1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = client.do(http.MethodGet, "/api/v1/journals/by-source/capital/CAP-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entry dto.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "JE-2024-0001", entry.EntryNumber)
	assert.Equal(t, domain.Posted, entry.Status)

	w = client.do(http.MethodGet, "/api/v1/reports/trial-balance?fromDate=2024-01-01&toDate=2024-12-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tb domain.TrialBalanceReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tb))
	assert.True(t, tb.Balanced)
	assert.True(t, tb.TotalDebit.Equal(decimal.NewFromInt(1400)), tb.TotalDebit.String())

	w = client.do(http.MethodGet, "/api/v1/exports/trial-balance?format=csv&fromDate=2024-01-01&toDate=2024-12-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "trial-balance-2024-12-31.csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "Code,Account,Type,Debit,Credit"))
	assert.Contains(t, w.Body.String(), "Total,,1400.00,1400.00")
}

func TestLedgerFlow_VoidAndReverse(t *testing.T) {
	client := newFlowClient(t)

	w := client.postEvent(domain.EventCapitalContributed, "250", "capital", "CAP-9")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var posted dto.PostingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posted))
	require.NotNil(t, posted.Entry)
	entryID := posted.Entry.EntryID

	w = client.do(http.MethodPost, "/api/v1/journals/"+entryID+"/reverse", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reversal dto.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reversal))
	assert.Equal(t, domain.SourceTypeReversal, reversal.SourceType)
	assert.Equal(t, entryID, reversal.SourceID)

	// An entry with an active reversal cannot be voided.
	w = client.do(http.MethodPost, "/api/v1/journals/"+entryID+"/void", dto.VoidEntryRequest{Reason: "mistake"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = client.do(http.MethodGet, "/api/v1/accounts/by-code/1000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cash dto.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cash))

	w = client.do(http.MethodGet, "/api/v1/accounts/"+cash.AccountID+"/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var balance dto.AccountBalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.True(t, balance.Balance.IsZero(), balance.Balance.String())
}

func TestLedgerFlow_UnknownExportFormat(t *testing.T) {
	client := newFlowClient(t)

	w := client.do(http.MethodGet, "/api/v1/exports/trial-balance?format=xlsx", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
